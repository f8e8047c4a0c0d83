package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/outliner/model"
)

// ClassifierConfig holds configuration for header classification.
type ClassifierConfig struct {
	// Group configures line grouping.
	Group GroupConfig

	// Size configures font-size hierarchy analysis.
	Size SizeConfig

	// BodyText configures the prose heuristic.
	BodyText BodyTextConfig

	// MinTextLength and MaxTextLength bound the accepted heading text
	// length in runes, exclusive on both ends (defaults: 2 and 300).
	MinTextLength int
	MaxTextLength int

	// SamplePages is how many leading pages feed threshold auto-detection
	// (default: 5).
	SamplePages int
}

// DefaultClassifierConfig returns the default classification configuration.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		Group:         DefaultGroupConfig(),
		Size:          DefaultSizeConfig(),
		BodyText:      DefaultBodyTextConfig(),
		MinTextLength: 2,
		MaxTextLength: 300,
		SamplePages:   5,
	}
}

// HeaderClassifier turns positioned text fragments into leveled, deduplicated
// heading records. A classifier is stateless across calls; every Classify
// call derives its hierarchy from scratch, so identical input yields
// identical output.
type HeaderClassifier struct {
	config    ClassifierConfig
	grouper   *LineGrouper
	analyzer  *SizeAnalyzer
	heuristic *BodyTextHeuristic
}

// NewHeaderClassifier creates a classifier with default configuration.
func NewHeaderClassifier() *HeaderClassifier {
	return NewHeaderClassifierWithConfig(DefaultClassifierConfig())
}

// NewHeaderClassifierWithConfig creates a classifier with custom
// configuration.
func NewHeaderClassifierWithConfig(config ClassifierConfig) *HeaderClassifier {
	return &HeaderClassifier{
		config:    config,
		grouper:   NewLineGrouperWithConfig(config.Group),
		analyzer:  NewSizeAnalyzerWithConfig(config.Size),
		heuristic: NewBodyTextHeuristicWithConfig(config.BodyText),
	}
}

// ResolveThreshold returns the effective header threshold: minSize when the
// caller supplied one (> 0), otherwise the auto-detected threshold over the
// leading-page sample.
func (c *HeaderClassifier) ResolveThreshold(fragments []model.TextFragment, minSize float64) float64 {
	if minSize > 0 {
		return minSize
	}
	var sample []float64
	for _, f := range fragments {
		if f.Page <= c.config.SamplePages {
			sample = append(sample, f.FontSize)
		}
	}
	return c.analyzer.AutoThreshold(sample)
}

// Analyze builds the font-size hierarchy for the fragments using the
// effective threshold. This is the diagnostic entry point; Classify calls
// it internally.
func (c *HeaderClassifier) Analyze(fragments []model.TextFragment, minSize float64) *Hierarchy {
	sizes := make([]float64, 0, len(fragments))
	for _, f := range fragments {
		sizes = append(sizes, f.FontSize)
	}
	return c.analyzer.Analyze(sizes, c.ResolveThreshold(fragments, minSize))
}

// Classify detects headings among the fragments. minSize <= 0 requests
// threshold auto-detection. The result is deduplicated by exact heading
// text (first occurrence in page order wins) and sorted by page ascending;
// zero detected headings is a valid empty result, not an error.
func (c *HeaderClassifier) Classify(fragments []model.TextFragment, minSize float64) []model.HeaderRecord {
	hierarchy := c.Analyze(fragments, minSize)
	groups := c.grouper.Group(fragments)

	var records []model.HeaderRecord
	for i := range groups {
		if record, ok := c.classifyGroup(&groups[i], hierarchy); ok {
			records = append(records, record)
		}
	}

	records = dedupeByText(records)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Page < records[j].Page
	})
	return records
}

// classifyGroup decides whether one line group is a heading and builds its
// record. Groups whose dominant size carries no hierarchy level are body
// text by hierarchy, regardless of what the prose heuristic would say.
func (c *HeaderClassifier) classifyGroup(group *LineGroup, hierarchy *Hierarchy) (model.HeaderRecord, bool) {
	maxSize := roundSize(group.MaxFontSize())
	level, ok := hierarchy.LevelFor(maxSize)
	if !ok {
		return model.HeaderRecord{}, false
	}

	text := assembleText(group.Fragments)
	length := len([]rune(text))
	if length <= c.config.MinTextLength || length >= c.config.MaxTextLength {
		return model.HeaderRecord{}, false
	}
	if c.heuristic.IsBodyText(text, maxSize) {
		return model.HeaderRecord{}, false
	}

	return model.HeaderRecord{
		Header:          text,
		HeaderLevelName: model.LevelName(level),
		Page:            dominantPage(group.Fragments),
		HeaderLevel:     level,
	}, true
}

// assembleText joins fragment texts left to right with single spaces.
func assembleText(fragments []model.TextFragment) string {
	ordered := make([]model.TextFragment, len(fragments))
	copy(ordered, fragments)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].X < ordered[j].X
	})

	parts := make([]string, 0, len(ordered))
	for _, f := range ordered {
		parts = append(parts, f.Text)
	}
	return strings.Join(parts, " ")
}

// dominantPage returns the page of the fragment with the largest font size.
func dominantPage(fragments []model.TextFragment) int {
	page := 0
	best := -1.0
	for _, f := range fragments {
		if f.FontSize > best {
			best = f.FontSize
			page = f.Page
		}
	}
	return page
}

// dedupeByText keeps the first record for each exact heading text.
func dedupeByText(records []model.HeaderRecord) []model.HeaderRecord {
	seen := make(map[string]bool, len(records))
	unique := records[:0]
	for _, r := range records {
		if seen[r.Header] {
			continue
		}
		seen[r.Header] = true
		unique = append(unique, r)
	}
	return unique
}
