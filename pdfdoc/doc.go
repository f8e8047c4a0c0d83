// Package pdfdoc is the document-resource boundary: it opens a PDF by path
// and decodes each page's text layer into [model.TextFragment] values for
// the detection pipeline.
//
// Decoding is delegated to github.com/ledongthuc/pdf, which parses the
// embedded text layer only; scanned (image-only) documents yield no
// fragments. The raw per-character output is merged into span-level
// fragments with synthesized word spacing, NFC-normalized text, and bold
// inference from font names.
//
// Errors fall into two kinds: [ErrNotFound] when the path does not exist,
// and [ErrDecode] wrapping any parse failure.
package pdfdoc
