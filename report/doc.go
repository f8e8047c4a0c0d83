// Package report serializes detection results: the heading-record array and
// the analysis-only font report. Output is UTF-8 JSON with human-readable
// indentation and non-ASCII text preserved unescaped; file writes are
// atomic (temp file plus rename).
package report
