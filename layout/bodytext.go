package layout

import "strings"

// BodyTextConfig holds the tunable thresholds of the body-text heuristic.
type BodyTextConfig struct {
	// LargeFontSize is the size above which text is never body text
	// (default: 20.0pt).
	LargeFontSize float64

	// MaxHeadingLength is the character count above which text is always
	// body text (default: 200).
	MaxHeadingLength int

	// MaxHeadingWords is the token count above which text is always body
	// text (default: 15).
	MaxHeadingWords int

	// LongLineWords is the token count above which the stricter stop-word
	// ratio applies (default: 8).
	LongLineWords int

	// RatioLong is the stop-word ratio threshold for lines longer than
	// LongLineWords (default: 0.5).
	RatioLong float64

	// RatioShort is the stop-word ratio threshold for shorter lines
	// (default: 0.6).
	RatioShort float64
}

// DefaultBodyTextConfig returns the default heuristic configuration.
func DefaultBodyTextConfig() BodyTextConfig {
	return BodyTextConfig{
		LargeFontSize:    20.0,
		MaxHeadingLength: 200,
		MaxHeadingWords:  15,
		LongLineWords:    8,
		RatioLong:        0.5,
		RatioShort:       0.6,
	}
}

// proseWords are tokens that read as running prose or document plumbing
// rather than heading content: articles, prepositions, demonstratives,
// modal verbs, and structure nouns.
var proseWords = map[string]bool{
	"the": true, "and": true, "of": true, "in": true, "to": true,
	"for": true, "with": true, "on": true, "at": true, "by": true,
	"this": true, "that": true, "these": true, "those": true, "such": true,
	"can": true, "will": true, "should": true,
	"figure": true, "table": true, "page": true, "section": true,
	"chapter": true, "appendix": true, "see": true,
}

// BodyTextHeuristic decides whether a line of text reads as prose rather
// than a heading. It is a textual heuristic, not a grammar: it trades
// precision for simplicity and will misclassify some short prose fragments
// as headings and vice versa.
type BodyTextHeuristic struct {
	config BodyTextConfig
}

// NewBodyTextHeuristic creates a heuristic with default configuration.
func NewBodyTextHeuristic() *BodyTextHeuristic {
	return &BodyTextHeuristic{config: DefaultBodyTextConfig()}
}

// NewBodyTextHeuristicWithConfig creates a heuristic with custom
// configuration.
func NewBodyTextHeuristicWithConfig(config BodyTextConfig) *BodyTextHeuristic {
	return &BodyTextHeuristic{config: config}
}

// IsBodyText reports whether text reads as body text. fontSize <= 0 means
// the font size is unknown. Rules apply in order, first match wins:
// large fonts are never body text; then very long text, very wordy text,
// and finally a stop-word ratio test.
func (h *BodyTextHeuristic) IsBodyText(text string, fontSize float64) bool {
	if fontSize > 0 && fontSize > h.config.LargeFontSize {
		return false
	}

	if len([]rune(text)) > h.config.MaxHeadingLength {
		return true
	}

	words := strings.Fields(strings.ToLower(text))
	if len(words) > h.config.MaxHeadingWords {
		return true
	}
	if len(words) == 0 {
		return false
	}

	matches := 0
	for _, w := range words {
		if proseWords[w] {
			matches++
		}
	}

	threshold := h.config.RatioShort
	if len(words) > h.config.LongLineWords {
		threshold = h.config.RatioLong
	}
	return float64(matches) > float64(len(words))*threshold
}
