package layout

import (
	"strings"
	"testing"
)

func TestBodyTextHeuristic_TypicalHeadings(t *testing.T) {
	h := NewBodyTextHeuristic()
	headings := []string{
		"Introduction",
		"4.2 Experimental Results",
		"Related Work",
		"Methodology and Approach",
	}
	for _, text := range headings {
		if h.IsBodyText(text, 14.0) {
			t.Errorf("IsBodyText(%q) = true, want false", text)
		}
	}
}

func TestBodyTextHeuristic_ProseSentence(t *testing.T) {
	h := NewBodyTextHeuristic()
	prose := "the results in this section can be seen in the table on the page"

	if !h.IsBodyText(prose, 12.0) {
		t.Errorf("IsBodyText(%q) = false, want true", prose)
	}
}

func TestBodyTextHeuristic_LargeFontNeverBodyText(t *testing.T) {
	h := NewBodyTextHeuristic()
	prose := "the results in this section can be seen in the table on the page"

	if h.IsBodyText(prose, 24.0) {
		t.Error("text above 20pt must never classify as body text")
	}
}

func TestBodyTextHeuristic_ExactlyLargeFontDoesNotBypass(t *testing.T) {
	// The bypass requires strictly greater than the large-font size.
	h := NewBodyTextHeuristic()
	prose := "the results in this section can be seen in the table on the page"

	if !h.IsBodyText(prose, 20.0) {
		t.Error("20.0pt is not above the cutoff and should not bypass the rules")
	}
}

func TestBodyTextHeuristic_LengthRule(t *testing.T) {
	h := NewBodyTextHeuristic()

	if !h.IsBodyText(strings.Repeat("A", 201), 12.0) {
		t.Error("201 runes should classify as body text")
	}
	if h.IsBodyText(strings.Repeat("A", 200), 12.0) {
		t.Error("200 runes is within the heading length bound")
	}
}

func TestBodyTextHeuristic_WordCountRule(t *testing.T) {
	h := NewBodyTextHeuristic()
	fifteen := "alpha beta gamma delta epsilon zeta eta theta iota kappa lambda mu nu xi omicron"
	sixteen := fifteen + " pi"

	if h.IsBodyText(fifteen, 12.0) {
		t.Error("15 words with no prose tokens should stay a heading")
	}
	if !h.IsBodyText(sixteen, 12.0) {
		t.Error("16 words should classify as body text regardless of content")
	}
}

func TestBodyTextHeuristic_RatioLongLine(t *testing.T) {
	h := NewBodyTextHeuristic()

	// Nine words, five prose tokens: 5 > 9*0.5.
	if !h.IsBodyText("the cat and the dog of the house ran", 12.0) {
		t.Error("long line with majority prose tokens should be body text")
	}
	// Nine words, four prose tokens: 4 is not > 4.5.
	if h.IsBodyText("cat and the dog of the house ran fast", 12.0) {
		t.Error("long line below the ratio threshold should stay a heading")
	}
}

func TestBodyTextHeuristic_RatioShortLine(t *testing.T) {
	h := NewBodyTextHeuristic()

	// Five words, four prose tokens: 4 > 5*0.6.
	if !h.IsBodyText("the of and in results", 12.0) {
		t.Error("short line dominated by prose tokens should be body text")
	}
	// Five words, three prose tokens: 3 is not > 3.
	if h.IsBodyText("the of and neural networks", 12.0) {
		t.Error("short line at the ratio boundary should stay a heading")
	}
}

func TestBodyTextHeuristic_CaseInsensitiveTokens(t *testing.T) {
	h := NewBodyTextHeuristic()

	if !h.IsBodyText("The Figure And", 12.0) {
		t.Error("prose tokens should match regardless of case")
	}
}

func TestBodyTextHeuristic_EmptyText(t *testing.T) {
	h := NewBodyTextHeuristic()

	if h.IsBodyText("", 12.0) {
		t.Error("empty text is not body text")
	}
	if h.IsBodyText("   ", 12.0) {
		t.Error("whitespace-only text is not body text")
	}
}

func TestBodyTextHeuristic_UnknownFontSize(t *testing.T) {
	// fontSize <= 0 means unknown: the large-font bypass never fires and the
	// textual rules decide alone.
	h := NewBodyTextHeuristic()
	prose := "the results in this section can be seen in the table on the page"

	if !h.IsBodyText(prose, 0) {
		t.Error("unknown font size should fall through to the textual rules")
	}
	if h.IsBodyText("Conclusion", 0) {
		t.Error("heading-like text stays a heading without a font size")
	}
}
