package model

// TextFragment is a positioned piece of extracted text with font metadata.
// Fragments are value-like: the decoder produces them once per span and the
// detection pipeline consumes them without mutation.
type TextFragment struct {
	// Text is the span content, already whitespace-trimmed and
	// NFC-normalized by the decoder.
	Text string

	// FontSize is the span's font size in points, rounded to 0.1pt.
	FontSize float64

	// FontName is the font family name as reported by the document.
	FontName string

	// Bold indicates a bold face, inferred from the font name when the
	// document carries no explicit style flag.
	Bold bool

	// Page is the 1-based page number the fragment appears on.
	Page int

	// BBox is the fragment's bounding box.
	BBox BBox

	// X and Y duplicate the box's top-left corner; grouping and within-line
	// ordering key off these.
	X float64
	Y float64
}
