package pdfdoc

import (
	"errors"
	"testing"

	"github.com/ledongthuc/pdf"
)

// makeChar builds one raw decoder element. W approximates a character
// advance of 0.5em.
func makeChar(s string, x, y, size float64, font string) pdf.Text {
	return pdf.Text{S: s, X: x, Y: y, W: size * 0.5, Font: font, FontSize: size}
}

func TestMergeRuns_JoinsAdjacentChars(t *testing.T) {
	texts := []pdf.Text{
		makeChar("H", 100, 700, 12, "Times"),
		makeChar("i", 106, 700, 12, "Times"),
	}

	fragments := mergeRuns(texts, 1, 792)

	if len(fragments) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(fragments))
	}
	if fragments[0].Text != "Hi" {
		t.Errorf("Text = %q, want %q", fragments[0].Text, "Hi")
	}
	if fragments[0].Page != 1 {
		t.Errorf("Page = %d, want 1", fragments[0].Page)
	}
}

func TestMergeRuns_SynthesizesWordSpace(t *testing.T) {
	// Gap of 6pt at 12pt font is above the 0.3em word gap but below the
	// 2em break gap, so a single fragment with a space results.
	texts := []pdf.Text{
		makeChar("a", 100, 700, 12, "Times"),
		makeChar("b", 112, 700, 12, "Times"),
	}

	fragments := mergeRuns(texts, 1, 792)

	if len(fragments) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(fragments))
	}
	if fragments[0].Text != "a b" {
		t.Errorf("Text = %q, want %q", fragments[0].Text, "a b")
	}
}

func TestMergeRuns_BreaksOnFontChange(t *testing.T) {
	texts := []pdf.Text{
		makeChar("a", 100, 700, 12, "Times"),
		makeChar("b", 106, 700, 12, "Times-Bold"),
	}

	fragments := mergeRuns(texts, 1, 792)

	if len(fragments) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(fragments))
	}
	if fragments[0].Bold {
		t.Error("first fragment should not be bold")
	}
	if !fragments[1].Bold {
		t.Error("second fragment should be bold")
	}
}

func TestMergeRuns_BreaksOnBaselineShift(t *testing.T) {
	texts := []pdf.Text{
		makeChar("a", 100, 700, 12, "Times"),
		makeChar("b", 106, 685, 12, "Times"),
	}

	fragments := mergeRuns(texts, 1, 792)

	if len(fragments) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(fragments))
	}
}

func TestMergeRuns_BreaksOnWideGap(t *testing.T) {
	// 100pt gap at 12pt font exceeds the 2em break threshold.
	texts := []pdf.Text{
		makeChar("a", 100, 700, 12, "Times"),
		makeChar("b", 206, 700, 12, "Times"),
	}

	fragments := mergeRuns(texts, 1, 792)

	if len(fragments) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(fragments))
	}
}

func TestMergeRuns_FlipsToReadingOrder(t *testing.T) {
	// Baseline at 700 in bottom-up coordinates on a 792pt page puts the
	// fragment near the top of the page in reading order.
	high := mergeRuns([]pdf.Text{makeChar("a", 100, 700, 12, "Times")}, 1, 792)
	low := mergeRuns([]pdf.Text{makeChar("b", 100, 100, 12, "Times")}, 1, 792)

	if len(high) != 1 || len(low) != 1 {
		t.Fatal("expected one fragment each")
	}
	if high[0].Y >= low[0].Y {
		t.Errorf("top-of-page fragment should have smaller Y: got %v vs %v", high[0].Y, low[0].Y)
	}
	if !high[0].BBox.IsValid() {
		t.Errorf("invalid bbox: %+v", high[0].BBox)
	}
}

func TestMergeRuns_RoundsFontSize(t *testing.T) {
	texts := []pdf.Text{makeChar("abc", 100, 700, 11.96, "Times")}

	fragments := mergeRuns(texts, 1, 792)

	if len(fragments) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(fragments))
	}
	if fragments[0].FontSize != 12.0 {
		t.Errorf("FontSize = %v, want 12.0", fragments[0].FontSize)
	}
}

func TestMergeRuns_SkipsWhitespaceOnlyRuns(t *testing.T) {
	texts := []pdf.Text{
		makeChar(" ", 100, 700, 12, "Times"),
		makeChar("x", 300, 700, 12, "Times"),
	}

	fragments := mergeRuns(texts, 1, 792)

	if len(fragments) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(fragments))
	}
	if fragments[0].Text != "x" {
		t.Errorf("Text = %q, want %q", fragments[0].Text, "x")
	}
}

func TestFontName_StripsSubsetTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ABCDEF+Times-Roman", "Times-Roman"},
		{"Times-Roman", "Times-Roman"},
		{"Helvetica", "Helvetica"},
	}

	for _, tt := range tests {
		if got := fontName(tt.in); got != tt.want {
			t.Errorf("fontName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBoldFontName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Times-Bold", true},
		{"Helvetica-Black", true},
		{"OpenSans-SemiBold", true},
		{"Times-Roman", false},
		{"Helvetica", false},
	}

	for _, tt := range tests {
		if got := boldFontName(tt.name); got != tt.want {
			t.Errorf("boldFontName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open("testdata/does-not-exist.pdf")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
