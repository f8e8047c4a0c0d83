package outliner

import (
	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/pdfdoc"
	"github.com/tsawler/outliner/report"
)

// Detector provides a fluent interface for heading detection. Each
// configuration method returns a new Detector instance, making a configured
// chain safe to reuse; each terminal operation opens, fully reads, and
// closes the document within a single call.
type Detector struct {
	filename string
	options  DetectOptions
}

// clone creates a copy of the Detector with copied options, so chain
// methods never mutate the receiver.
func (d *Detector) clone() *Detector {
	return &Detector{
		filename: d.filename,
		options:  d.options.clone(),
	}
}

// ============================================================================
// Configuration Methods (return new Detector instance)
// ============================================================================

// MinFontSize sets the minimum font size for header candidates, overriding
// auto-detection. Values <= 0 restore auto-detection.
//
// Example:
//
//	headers, err := outliner.Open("doc.pdf").MinFontSize(14).Headers()
func (d *Detector) MinFontSize(points float64) *Detector {
	c := d.clone()
	if points <= 0 {
		points = 0
	}
	c.options.minFontSize = points
	return c
}

// YTolerance sets the vertical tolerance for grouping fragments onto one
// line. The default of 1.0 suits most documents.
func (d *Detector) YTolerance(points float64) *Detector {
	c := d.clone()
	c.options.yTolerance = points
	return c
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Headers runs the detection pipeline and returns the heading records in
// page order. Zero detected headings yields an empty slice and a nil error.
// A missing file yields an error wrapping pdfdoc.ErrNotFound; a decode
// failure wraps pdfdoc.ErrDecode and produces no partial result.
func (d *Detector) Headers() ([]model.HeaderRecord, error) {
	fragments, err := d.fragments()
	if err != nil {
		return nil, err
	}
	classifier := layout.NewHeaderClassifierWithConfig(d.classifierConfig())
	return classifier.Classify(fragments, d.options.minFontSize), nil
}

// HeadersJSON runs detection and returns the records serialized as an
// indented UTF-8 JSON array.
func (d *Detector) HeadersJSON() (string, error) {
	headers, err := d.Headers()
	if err != nil {
		return "", err
	}
	data, err := report.MarshalHeaders(headers)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SaveHeaders runs detection and writes the serialized records to path.
// The destination is either fully written or left untouched.
func (d *Detector) SaveHeaders(path string) ([]model.HeaderRecord, error) {
	headers, err := d.Headers()
	if err != nil {
		return nil, err
	}
	if err := report.WriteHeaders(path, headers); err != nil {
		return nil, err
	}
	return headers, nil
}

// FontAnalysis returns the diagnostic font report for the document without
// extracting headings.
func (d *Detector) FontAnalysis() (*report.Analysis, error) {
	fragments, err := d.fragments()
	if err != nil {
		return nil, err
	}
	classifier := layout.NewHeaderClassifierWithConfig(d.classifierConfig())
	return report.NewAnalysis(classifier.Analyze(fragments, d.options.minFontSize)), nil
}

// fragments opens the document, decodes every page, and closes it.
func (d *Detector) fragments() ([]model.TextFragment, error) {
	doc, err := pdfdoc.Open(d.filename)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	return doc.Fragments()
}

// classifierConfig maps the fluent options onto the layout configuration.
func (d *Detector) classifierConfig() layout.ClassifierConfig {
	config := layout.DefaultClassifierConfig()
	config.Group.YTolerance = d.options.yTolerance
	return config
}
