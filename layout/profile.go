package layout

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/outline/model"
)

const (
	// minProfileTextLength excludes stray glyphs and page numbers from the
	// size histogram: only lines longer than this count.
	minProfileTextLength = 3

	// sizeThresholdDelta is added to the body size to get the emphasis threshold
	sizeThresholdDelta = 0.5
)

// BuildFontProfile scans every line of every page and derives the document's
// body font size. The body size is the mode of the rounded average line
// sizes; ties go to the size that was seen first. With no qualifying lines
// the body size defaults to 12.0.
func BuildFontProfile(pages []model.Page) *model.FontProfile {
	counts := make(map[float64]int)
	var order []float64 // first-seen order for tie breaking
	qualifying := 0

	for _, page := range pages {
		for _, line := range page.Lines {
			if utf8.RuneCountInString(strings.TrimSpace(line.Text)) <= minProfileTextLength {
				continue
			}
			size := RoundSize(line.AvgFontSize)
			if _, seen := counts[size]; !seen {
				order = append(order, size)
			}
			counts[size]++
			qualifying++
		}
	}

	body := model.DefaultFontSize
	best := 0
	for _, size := range order {
		if counts[size] > best {
			best = counts[size]
			body = size
		}
	}

	unique := make([]float64, len(order))
	copy(unique, order)
	sort.Sort(sort.Reverse(sort.Float64Slice(unique)))

	return &model.FontProfile{
		BodyFontSize:    body,
		SizeThreshold:   body + sizeThresholdDelta,
		UniqueSizes:     unique,
		QualifyingLines: qualifying,
	}
}

// RoundSize rounds a font size to one decimal place. Rounding works on the
// exact decimal value of size and sends exact halves to the even digit, so
// 10.25 becomes 10.2 and 10.35 (stored just below the half) becomes 10.3.
func RoundSize(size float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(size, 'f', 1, 64), 64)
	if err != nil {
		return size
	}
	return rounded
}
