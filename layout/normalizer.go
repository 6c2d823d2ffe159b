package layout

import (
	"strings"

	"github.com/tsawler/outline/model"
)

// Normalize builds normalized pages for every raw page of a document, in
// page order. A nil document yields nil.
func Normalize(doc *model.Document) []model.Page {
	if doc == nil {
		return nil
	}
	pages := make([]model.Page, 0, len(doc.Pages))
	for _, raw := range doc.Pages {
		if raw == nil {
			continue
		}
		pages = append(pages, NormalizePage(raw))
	}
	return pages
}

// NormalizePage turns a raw page's fragment groups into text lines
func NormalizePage(raw *model.RawPage) model.Page {
	if raw == nil {
		return model.Page{}
	}
	return model.Page{
		Number: raw.Number,
		Lines:  NormalizeGroups(raw.Groups),
	}
}

// NormalizeGroups converts fragment groups into text lines, skipping groups
// whose concatenated text is blank. Malformed or empty input yields an empty
// slice, never an error.
func NormalizeGroups(groups []model.FragmentGroup) []model.TextLine {
	lines := make([]model.TextLine, 0, len(groups))
	for _, group := range groups {
		if line, ok := buildLine(group); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

// buildLine aggregates one fragment group into a TextLine
func buildLine(group model.FragmentGroup) (model.TextLine, bool) {
	if len(group) == 0 {
		return model.TextLine{}, false
	}

	var sb strings.Builder
	for _, frag := range group {
		sb.WriteString(frag.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return model.TextLine{}, false
	}

	line := model.TextLine{
		Fragments: group,
		Text:      text,
	}

	total := 0.0
	for i, frag := range group {
		size := frag.FontSize()
		total += size
		if i == 0 || size > line.MaxFontSize {
			line.MaxFontSize = size
		}
		if frag.IsBold() {
			line.IsBold = true
		}
		if frag.IsItalic() {
			line.IsItalic = true
		}
		line.BBox = line.BBox.Union(frag.BBox)
	}
	line.AvgFontSize = total / float64(len(group))

	return line, true
}
