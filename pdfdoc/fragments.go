package pdfdoc

import (
	"math"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/outliner/model"
)

// Run-merging thresholds, all expressed as multiples of the current font
// size unless noted.
const (
	// wordGapFactor is the horizontal gap at which a space is inserted
	// between characters of one run.
	wordGapFactor = 0.3

	// breakGapFactor is the horizontal gap at which a run ends and a new
	// fragment starts.
	breakGapFactor = 2.0

	// backtrackFactor is how far X may move backward before the run ends
	// (overlapping show operators are common in justified text).
	backtrackFactor = 0.5

	// baselineTolerance is the absolute Y drift tolerated within one run,
	// in points.
	baselineTolerance = 0.2
)

// mergeRuns assembles the page's raw positioned characters into span-level
// fragments. The decoder emits one element per shown string, usually a
// single character; consecutive elements sharing font, size, and baseline
// are merged, with spaces synthesized at word-sized gaps.
func mergeRuns(texts []pdf.Text, page int, top float64) []model.TextFragment {
	var fragments []model.TextFragment

	var (
		sb       strings.Builder
		font     string
		size     float64
		baseline float64
		startX   float64
		endX     float64
		open     bool
	)

	flush := func() {
		if !open {
			return
		}
		open = false
		if f, ok := buildFragment(sb.String(), font, size, baseline, startX, endX, page, top); ok {
			fragments = append(fragments, f)
		}
		sb.Reset()
	}

	for _, t := range texts {
		if t.S == "" {
			continue
		}

		if open {
			gap := t.X - endX
			sameRun := t.Font == font &&
				t.FontSize == size &&
				math.Abs(t.Y-baseline) <= baselineTolerance &&
				gap >= -size*backtrackFactor &&
				gap <= size*breakGapFactor
			if sameRun {
				if gap > size*wordGapFactor {
					sb.WriteByte(' ')
				}
				sb.WriteString(t.S)
				if right := t.X + t.W; right > endX {
					endX = right
				}
				continue
			}
			flush()
		}

		font = t.Font
		size = t.FontSize
		baseline = t.Y
		startX = t.X
		endX = t.X + t.W
		open = true
		sb.WriteString(t.S)
	}
	flush()

	return fragments
}

// buildFragment normalizes a finished run into a TextFragment, converting
// the PDF's bottom-up baseline coordinates into top-down reading order.
func buildFragment(raw, font string, size, baseline, startX, endX float64, page int, top float64) (model.TextFragment, bool) {
	text := norm.NFC.String(strings.TrimSpace(raw))
	if text == "" {
		return model.TextFragment{}, false
	}

	y0 := top - baseline - size
	y1 := top - baseline
	name := fontName(font)

	return model.TextFragment{
		Text:     text,
		FontSize: math.Round(size*10) / 10,
		FontName: name,
		Bold:     boldFontName(name),
		Page:     page,
		BBox:     model.NewBBox(startX, y0, endX, y1),
		X:        startX,
		Y:        y0,
	}, true
}

// fontName strips the subset tag ("ABCDEF+") embedded fonts carry.
func fontName(name string) string {
	if len(name) > 7 && name[6] == '+' {
		return name[7:]
	}
	return name
}

// boldFontName infers a bold face from the font name. PDF text spans carry
// no style flag, so the name is the only signal available.
func boldFontName(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "bold") ||
		strings.Contains(lower, "black") ||
		strings.Contains(lower, "heavy") ||
		strings.Contains(lower, "semibold") ||
		strings.Contains(lower, "demibold")
}
