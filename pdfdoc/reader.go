package pdfdoc

import (
	"errors"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/outliner/model"
)

// ErrNotFound is returned when the document path does not exist. It is
// reported before any decoding begins.
var ErrNotFound = errors.New("document not found")

// ErrDecode is returned when the document cannot be opened or parsed. It
// always wraps the underlying cause; a decode failure aborts the run with
// no partial results.
var ErrDecode = errors.New("document decode failed")

// letterHeight is the fallback page height when a page carries no readable
// MediaBox (US Letter, in points).
const letterHeight = 792.0

// Document is an open PDF resource. A Document is not safe for concurrent
// use; it is opened, read, and closed within a single detection run.
type Document struct {
	path   string
	file   *os.File
	reader *pdf.Reader
}

// Open opens the document at path. A missing path yields ErrNotFound; any
// parse failure yields an error wrapping ErrDecode.
func Open(path string) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &Document{path: path, file: file, reader: reader}, nil
}

// Close releases the underlying file. It is safe to call more than once.
func (d *Document) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}

// NumPages returns the page count.
func (d *Document) NumPages() int {
	return d.reader.NumPage()
}

// PageFragments decodes one page (1-based) into text fragments. The PDF
// content-stream parser panics on some malformed streams; those are
// recovered and surfaced as ErrDecode.
func (d *Document) PageFragments(pageNum int) (fragments []model.TextFragment, err error) {
	defer func() {
		if r := recover(); r != nil {
			fragments = nil
			err = fmt.Errorf("%w: page %d: %v", ErrDecode, pageNum, r)
		}
	}()

	page := d.reader.Page(pageNum)
	if page.V.IsNull() {
		return nil, nil
	}

	content := page.Content()
	return mergeRuns(content.Text, pageNum, pageTop(page)), nil
}

// Fragments decodes every page of the document in page order.
func (d *Document) Fragments() ([]model.TextFragment, error) {
	var all []model.TextFragment
	for i := 1; i <= d.NumPages(); i++ {
		fragments, err := d.PageFragments(i)
		if err != nil {
			return nil, err
		}
		all = append(all, fragments...)
	}
	return all, nil
}

// pageTop returns the page's top edge in PDF user space, walking up the
// page tree for an inherited MediaBox when the page has none of its own.
func pageTop(page pdf.Page) float64 {
	v := page.V
	for !v.IsNull() {
		if mb := v.Key("MediaBox"); !mb.IsNull() && mb.Len() == 4 {
			return mb.Index(3).Float64()
		}
		v = v.Key("Parent")
	}
	return letterHeight
}
