package layout

import (
	"sort"

	"github.com/tsawler/outliner/model"
)

// LineGroup is an ordered run of fragments judged to lie on the same visual
// line. All members share the same page; members keep the order in which
// they were added (horizontal ordering happens at classification time).
type LineGroup struct {
	// Page is the 1-based page number shared by every member.
	Page int

	// Fragments are the member fragments in grouping order.
	Fragments []model.TextFragment
}

// MaxFontSize returns the largest font size among the group's fragments.
func (g *LineGroup) MaxFontSize() float64 {
	max := 0.0
	for _, f := range g.Fragments {
		if f.FontSize > max {
			max = f.FontSize
		}
	}
	return max
}

// GroupConfig holds configuration for line grouping.
type GroupConfig struct {
	// YTolerance is the maximum distance between a fragment's Y and the
	// group anchor Y for the fragment to join the group (default: 1.0).
	YTolerance float64
}

// DefaultGroupConfig returns the default line-grouping configuration.
func DefaultGroupConfig() GroupConfig {
	return GroupConfig{
		YTolerance: 1.0,
	}
}

// LineGrouper merges fragments that share a page and a vertical position
// into logical lines.
type LineGrouper struct {
	config GroupConfig
}

// NewLineGrouper creates a line grouper with default configuration.
func NewLineGrouper() *LineGrouper {
	return &LineGrouper{config: DefaultGroupConfig()}
}

// NewLineGrouperWithConfig creates a line grouper with custom configuration.
func NewLineGrouperWithConfig(config GroupConfig) *LineGrouper {
	return &LineGrouper{config: config}
}

// Group partitions fragments by page, sorts each page's fragments by Y, and
// scans them into line groups. A new group opens whenever a fragment's Y
// differs from the current group's anchor by more than the tolerance; the
// anchor is the Y of the first fragment placed into the group, not a running
// average. Groups come back in ascending page order, then in the order they
// were opened within the page. Empty input yields an empty result.
func (g *LineGrouper) Group(fragments []model.TextFragment) []LineGroup {
	if len(fragments) == 0 {
		return nil
	}

	byPage := make(map[int][]model.TextFragment)
	for _, f := range fragments {
		byPage[f.Page] = append(byPage[f.Page], f)
	}

	pageNums := make([]int, 0, len(byPage))
	for page := range byPage {
		pageNums = append(pageNums, page)
	}
	sort.Ints(pageNums)

	var groups []LineGroup
	for _, page := range pageNums {
		pageFragments := byPage[page]
		sort.SliceStable(pageFragments, func(i, j int) bool {
			return pageFragments[i].Y < pageFragments[j].Y
		})

		current := LineGroup{Page: page, Fragments: []model.TextFragment{pageFragments[0]}}
		anchorY := pageFragments[0].Y

		for _, f := range pageFragments[1:] {
			if absFloat(f.Y-anchorY) <= g.config.YTolerance {
				current.Fragments = append(current.Fragments, f)
				continue
			}
			groups = append(groups, current)
			current = LineGroup{Page: page, Fragments: []model.TextFragment{f}}
			anchorY = f.Y
		}
		groups = append(groups, current)
	}

	return groups
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
