package model

// FragmentGroup is one visual line as reported by the decoder, before any
// normalization. Fragments are in left-to-right order.
type FragmentGroup []StyledFragment

// TextLine is a normalized line of text with aggregated font metrics.
// Lines are built once per page and never modified afterwards.
type TextLine struct {
	// Fragments are the styled runs making up the line, in reading order
	Fragments []StyledFragment

	// Text is the concatenated fragment text with surrounding whitespace trimmed
	Text string

	// BBox is the union of the fragment boxes
	BBox BBox

	// AvgFontSize is the arithmetic mean of the fragment sizes
	AvgFontSize float64

	// MaxFontSize is the largest fragment size
	MaxFontSize float64

	// IsBold is true when any fragment carries the bold flag
	IsBold bool

	// IsItalic is true when any fragment carries the italic flag
	IsItalic bool
}

// FontFamilies returns the distinct font family names used on the line in
// first-seen order.
func (l *TextLine) FontFamilies() []string {
	if l == nil {
		return nil
	}
	seen := make(map[string]bool, len(l.Fragments))
	var names []string
	for _, f := range l.Fragments {
		if f.FontFamily == "" || seen[f.FontFamily] {
			continue
		}
		seen[f.FontFamily] = true
		names = append(names, f.FontFamily)
	}
	return names
}
