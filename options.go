package outliner

// DetectOptions holds configuration for a detection run.
type DetectOptions struct {
	// minFontSize is the minimum font size for header candidates;
	// 0 means auto-detect.
	minFontSize float64

	// yTolerance is the vertical distance within which fragments are
	// grouped onto one line.
	yTolerance float64
}

// defaultOptions returns the default detection options.
func defaultOptions() DetectOptions {
	return DetectOptions{
		minFontSize: 0, // auto-detect
		yTolerance:  1.0,
	}
}

// clone creates a copy of DetectOptions.
func (o DetectOptions) clone() DetectOptions {
	return DetectOptions{
		minFontSize: o.minFontSize,
		yTolerance:  o.yTolerance,
	}
}
