package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
)

// FrequencyPair is one (size, count) entry of the font-frequency report.
type FrequencyPair struct {
	Size  float64 `json:"size"`
	Count int     `json:"count"`
}

// Analysis is the diagnostic font report: the hierarchy snapshot without
// any heading extraction.
type Analysis struct {
	AllSizes      []float64       `json:"all_sizes"`
	HeaderSizes   []float64       `json:"header_sizes"`
	BodyTextSize  float64         `json:"body_text_size"`
	TotalLevels   int             `json:"total_levels"`
	FontFrequency []FrequencyPair `json:"font_frequency"`
}

// topFrequencyCount is how many frequency pairs the report carries.
const topFrequencyCount = 5

// NewAnalysis builds the diagnostic report from a computed hierarchy.
func NewAnalysis(h *layout.Hierarchy) *Analysis {
	pairs := make([]FrequencyPair, 0, topFrequencyCount)
	for _, sc := range h.TopSizes(topFrequencyCount) {
		pairs = append(pairs, FrequencyPair{Size: sc.Size, Count: sc.Count})
	}

	return &Analysis{
		AllSizes:      h.AllSizes,
		HeaderSizes:   h.HeaderSizes,
		BodyTextSize:  h.BodyTextSize,
		TotalLevels:   h.TotalLevels(),
		FontFrequency: pairs,
	}
}

// MarshalHeaders serializes header records as a UTF-8 JSON array with
// two-space indentation. HTML escaping is disabled so non-ASCII heading
// text survives unescaped. A nil or empty slice marshals as [].
func MarshalHeaders(records []model.HeaderRecord) ([]byte, error) {
	if records == nil {
		records = []model.HeaderRecord{}
	}
	return marshalIndented(records)
}

// MarshalAnalysis serializes the diagnostic report the same way.
func MarshalAnalysis(analysis *Analysis) ([]byte, error) {
	return marshalIndented(analysis)
}

// WriteHeaders writes the serialized records to path. The destination is
// either fully written or left untouched.
func WriteHeaders(path string, records []model.HeaderRecord) error {
	data, err := MarshalHeaders(records)
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}

// WriteAnalysis writes the serialized diagnostic report to path, with the
// same all-or-nothing guarantee as WriteHeaders.
func WriteAnalysis(path string, analysis *Analysis) error {
	data, err := MarshalAnalysis(analysis)
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}

func marshalIndented(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeAtomic writes data via a temp file in the destination directory and
// renames it into place, so a failed write never leaves a partial file.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".outliner-*")
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write output file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close output file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace output file: %w", err)
	}
	return nil
}
