package layout

import (
	"math"
	"sort"
)

// SizeConfig holds the tunable constants of font-size hierarchy analysis.
// The defaults reproduce the documented behavior; they are exposed as named
// configuration so their effect can be tested in isolation.
type SizeConfig struct {
	// ClusterTolerance is the maximum distance between two font sizes for
	// them to land in the same hierarchy level (default: 0.5pt).
	ClusterTolerance float64

	// AlwaysHeaderSize is the size above which text is always treated as a
	// header regardless of body-text proximity (default: 20.0pt).
	AlwaysHeaderSize float64

	// BodyTextGap is how much larger than the detected body text a size
	// must be to survive the demotion filter (default: 2.0pt).
	BodyTextGap float64

	// BodyCandidateMinCount is the minimum occurrence count for a size to
	// qualify as a body-text candidate (default: 5).
	BodyCandidateMinCount int

	// LargeHeaderSize marks documents with display-sized headers; when any
	// sampled size exceeds it, threshold auto-detection turns permissive
	// (default: 25.0pt).
	LargeHeaderSize float64

	// PermissiveThreshold is the low header threshold used when large
	// headers are present, relying on the demotion filter to weed out body
	// text (default: 12.0pt).
	PermissiveThreshold float64

	// TopFrequencyCount is how many of the most frequent sizes feed
	// body-text detection and the analysis report (default: 5).
	TopFrequencyCount int
}

// DefaultSizeConfig returns the default analysis configuration.
func DefaultSizeConfig() SizeConfig {
	return SizeConfig{
		ClusterTolerance:      0.5,
		AlwaysHeaderSize:      20.0,
		BodyTextGap:           2.0,
		BodyCandidateMinCount: 5,
		LargeHeaderSize:       25.0,
		PermissiveThreshold:   12.0,
		TopFrequencyCount:     5,
	}
}

// SizeCount pairs a font size with its occurrence count.
type SizeCount struct {
	Size  float64
	Count int
}

// Hierarchy is a read-only snapshot of a document's font-size structure,
// computed once per detection run.
type Hierarchy struct {
	// AllSizes are the unique rounded sizes in the document, descending.
	AllSizes []float64

	// HeaderSizes are the unique sizes above the initial threshold,
	// descending. Some of these may later be demoted to body text and
	// carry no level.
	HeaderSizes []float64

	// BodyTextSize is the detected body-text size, or the threshold when
	// no frequent body candidate was found.
	BodyTextSize float64

	// LevelSizes are the cluster representatives, descending; LevelSizes[i]
	// carries level i+1.
	LevelSizes []float64

	// Frequency maps each rounded size to its occurrence count.
	Frequency map[float64]int

	levels map[float64]int
}

// LevelFor returns the hierarchy level assigned to a font size. The second
// return is false for sizes that carry no level (body text by hierarchy).
func (h *Hierarchy) LevelFor(size float64) (int, bool) {
	level, ok := h.levels[roundSize(size)]
	return level, ok
}

// TotalLevels returns the number of hierarchy levels.
func (h *Hierarchy) TotalLevels() int {
	return len(h.LevelSizes)
}

// TopSizes returns the n most frequent sizes as ordered (size, count)
// pairs. Ties order by size descending so results are input-order
// independent.
func (h *Hierarchy) TopSizes(n int) []SizeCount {
	return topByCount(h.Frequency, n)
}

// SizeAnalyzer derives a font-size hierarchy from the global multiset of
// font sizes observed in a document.
type SizeAnalyzer struct {
	config SizeConfig
}

// NewSizeAnalyzer creates an analyzer with default configuration.
func NewSizeAnalyzer() *SizeAnalyzer {
	return &SizeAnalyzer{config: DefaultSizeConfig()}
}

// NewSizeAnalyzerWithConfig creates an analyzer with custom configuration.
func NewSizeAnalyzerWithConfig(config SizeConfig) *SizeAnalyzer {
	return &SizeAnalyzer{config: config}
}

// Analyze builds the hierarchy for the given font sizes. minSize is the
// initial header threshold: only sizes strictly greater than it are header
// candidates. Sizes are rounded to 0.1pt before any comparison.
func (a *SizeAnalyzer) Analyze(sizes []float64, minSize float64) *Hierarchy {
	frequency := make(map[float64]int, len(sizes))
	for _, s := range sizes {
		frequency[roundSize(s)]++
	}

	allSizes := make([]float64, 0, len(frequency))
	for s := range frequency {
		allSizes = append(allSizes, s)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(allSizes)))

	headerSizes := make([]float64, 0, len(allSizes))
	for _, s := range allSizes {
		if s > minSize {
			headerSizes = append(headerSizes, s)
		}
	}

	// Body text is the largest of the frequent small sizes. When nothing
	// is frequent enough the document has no identifiable body text and
	// the demotion filter below is skipped.
	bodyTextSize := minSize
	hasBody := false
	for _, sc := range topByCount(frequency, a.config.TopFrequencyCount) {
		if sc.Size <= a.config.AlwaysHeaderSize && sc.Count > a.config.BodyCandidateMinCount {
			if !hasBody || sc.Size > bodyTextSize {
				bodyTextSize = sc.Size
				hasBody = true
			}
		}
	}

	filtered := headerSizes
	if hasBody {
		filtered = make([]float64, 0, len(headerSizes))
		for _, s := range headerSizes {
			if s > a.config.AlwaysHeaderSize || s > bodyTextSize+a.config.BodyTextGap {
				filtered = append(filtered, s)
			}
		}
	}

	levelSizes := a.cluster(filtered)

	levels := make(map[float64]int, len(headerSizes))
	for _, s := range headerSizes {
		if level, ok := a.nearestLevel(s, levelSizes); ok {
			levels[s] = level
		}
	}

	return &Hierarchy{
		AllSizes:     allSizes,
		HeaderSizes:  headerSizes,
		BodyTextSize: bodyTextSize,
		LevelSizes:   levelSizes,
		Frequency:    frequency,
		levels:       levels,
	}
}

// AutoThreshold determines the initial header threshold from a sample of
// font sizes (typically the first few pages). Documents containing
// display-sized headers get a permissive threshold and rely on the demotion
// filter; otherwise the threshold sits just above the most frequent size.
func (a *SizeAnalyzer) AutoThreshold(sizes []float64) float64 {
	if len(sizes) == 0 {
		return a.config.PermissiveThreshold
	}

	frequency := make(map[float64]int, len(sizes))
	hasLarge := false
	for _, s := range sizes {
		r := roundSize(s)
		frequency[r]++
		if r > a.config.LargeHeaderSize {
			hasLarge = true
		}
	}

	if hasLarge {
		return a.config.PermissiveThreshold
	}

	top := topByCount(frequency, 1)
	return top[0].Size + 1.0
}

// cluster merges near-equal sizes into discrete levels: walk the sizes in
// descending order, and for each unused size claim every unused size within
// the cluster tolerance, represented by the cluster's maximum member.
func (a *SizeAnalyzer) cluster(sizes []float64) []float64 {
	var reps []float64
	used := make(map[float64]bool, len(sizes))

	for _, s := range sizes {
		if used[s] {
			continue
		}
		rep := s
		for _, other := range sizes {
			if used[other] || absFloat(other-s) > a.config.ClusterTolerance {
				continue
			}
			if other > rep {
				rep = other
			}
			used[other] = true
		}
		reps = append(reps, rep)
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(reps)))
	return reps
}

// nearestLevel maps a size to the level of the closest cluster
// representative within the tolerance. A size equidistant from two
// representatives goes to the larger one (the more prominent level).
func (a *SizeAnalyzer) nearestLevel(size float64, levelSizes []float64) (int, bool) {
	bestLevel := 0
	bestDist := math.MaxFloat64
	for i, rep := range levelSizes {
		dist := absFloat(size - rep)
		if dist > a.config.ClusterTolerance {
			continue
		}
		// levelSizes is descending, so on an exact tie the earlier
		// (larger) representative keeps the size.
		if dist < bestDist {
			bestDist = dist
			bestLevel = i + 1
		}
	}
	return bestLevel, bestLevel != 0
}

// topByCount returns the n highest-count entries, ordered by count
// descending, then size descending.
func topByCount(frequency map[float64]int, n int) []SizeCount {
	pairs := make([]SizeCount, 0, len(frequency))
	for s, c := range frequency {
		pairs = append(pairs, SizeCount{Size: s, Count: c})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		return pairs[i].Size > pairs[j].Size
	})
	if len(pairs) > n {
		pairs = pairs[:n]
	}
	return pairs
}

// roundSize rounds a font size to one decimal place, the resolution the
// whole pipeline works at.
func roundSize(s float64) float64 {
	return math.Round(s*10) / 10
}
