package model

// FontProfile summarizes font usage across a whole document. It is computed
// once and is read-only afterwards, so it can be shared between goroutines.
type FontProfile struct {
	// BodyFontSize is the most frequent rounded average line size among
	// lines with more than three characters; 12.0 when none qualify.
	BodyFontSize float64

	// SizeThreshold is BodyFontSize + 0.5
	SizeThreshold float64

	// UniqueSizes holds the distinct rounded sizes, largest first
	UniqueSizes []float64

	// QualifyingLines is the number of lines that fed the histogram
	QualifyingLines int
}
