package model

// Document is the decoded form of a source file: one RawPage per page, in
// page order. It lives only for the duration of one extraction call.
type Document struct {
	// Source is the path or name the document was decoded from, if any
	Source string

	// Metadata holds the document information dictionary values that the
	// decoder could read. It is informational only.
	Metadata Metadata

	Pages []*RawPage
}

// Metadata contains document-level information
type Metadata struct {
	Title    string
	Author   string
	Producer string
}

// NewDocument creates a new empty document
func NewDocument(source string) *Document {
	return &Document{
		Source: source,
		Pages:  make([]*RawPage, 0),
	}
}

// AddPage appends a page and assigns its 1-indexed number
func (d *Document) AddPage(page *RawPage) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by number (1-indexed)
func (d *Document) GetPage(number int) *RawPage {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	if d == nil {
		return 0
	}
	return len(d.Pages)
}
