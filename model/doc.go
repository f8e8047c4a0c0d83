// Package model provides the value types shared by the detection pipeline.
//
// The decoder produces [TextFragment] values, one per extracted text span,
// and the classifier turns them into [HeaderRecord] values. Everything here
// is scoped to a single detection run; nothing is shared or mutated across
// runs.
//
// # Geometry
//
// [BBox] is kept in corner form (x0, y0, x1, y1) with Y increasing downward,
// matching the wire format the decoder reports and the JSON output carries.
package model
