package model

// RawPage is the decoder's view of one page: fragment groups in stream order.
type RawPage struct {
	Number int     // 1-indexed page number
	Width  float64 // Page width in points
	Height float64 // Page height in points
	Groups []FragmentGroup
}

// Page is a normalized page: an ordered list of non-empty text lines.
type Page struct {
	Number int // 1-indexed page number
	Lines  []TextLine
}

// LineCount returns the number of lines on the page
func (p *Page) LineCount() int {
	if p == nil {
		return 0
	}
	return len(p.Lines)
}

// FirstLines returns at most n lines from the top of the page
func (p *Page) FirstLines(n int) []TextLine {
	if p == nil || n <= 0 {
		return nil
	}
	if n > len(p.Lines) {
		n = len(p.Lines)
	}
	return p.Lines[:n]
}
