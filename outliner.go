// Package outliner infers a PDF's heading structure from its font metadata.
// It classifies which text spans are headings, assigns each a hierarchy
// level (1 = most prominent), and returns a deduplicated, page-ordered list
// of heading records. It does not rely on bookmarks, tags, or any explicit
// style markup in the document.
//
// Basic usage:
//
//	headers, err := outliner.Open("document.pdf").Headers()
//	if err != nil {
//	    // handle error
//	}
//	for _, h := range headers {
//	    fmt.Printf("p%d %s: %s\n", h.Page, h.HeaderLevelName, h.Header)
//	}
//
// With options:
//
//	headers, err := outliner.Open("report.pdf").
//	    MinFontSize(14).
//	    Headers()
//
// When no minimum font size is supplied, the header threshold is
// auto-detected from the document's font-size distribution.
//
// For advanced use cases, the lower-level layout and pdfdoc packages are
// also available.
package outliner

// Open prepares the document at filename for heading detection and returns
// a Detector for fluent configuration. Nothing is read until a terminal
// operation like Headers() runs.
//
// Example:
//
//	headers, err := outliner.Open("document.pdf").Headers()
func Open(filename string) *Detector {
	return &Detector{
		filename: filename,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	headers := outliner.Must(outliner.Open("document.pdf").Headers())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
