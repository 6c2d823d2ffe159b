package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Literal titles used at the result boundary.
const (
	// FallbackTitle is returned when no first-page line qualifies as a title.
	FallbackTitle = "Document Title"

	// ErrorTitle marks a failed extraction. Callers must treat it as a
	// sentinel rather than a real title.
	ErrorTitle = "Error extracting title"
)

// HeadingLevel represents the hierarchical level of a heading (H1-H6).
// The classifier currently emits H1 and H2 only.
type HeadingLevel int

const (
	HeadingLevelUnknown HeadingLevel = iota
	HeadingLevel1                    // H1 - Main section
	HeadingLevel2                    // H2 - Subsection
	HeadingLevel3                    // H3
	HeadingLevel4                    // H4
	HeadingLevel5                    // H5
	HeadingLevel6                    // H6
)

// String returns the outline form of the level ("H1".."H6")
func (l HeadingLevel) String() string {
	if l >= HeadingLevel1 && l <= HeadingLevel6 {
		return fmt.Sprintf("H%d", int(l))
	}
	return "unknown"
}

// ParseHeadingLevel parses "H1".."H6" (case-insensitive).
func ParseHeadingLevel(s string) (HeadingLevel, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) == 2 && s[0] == 'H' && s[1] >= '1' && s[1] <= '6' {
		return HeadingLevel(s[1] - '0'), nil
	}
	return HeadingLevelUnknown, fmt.Errorf("invalid heading level %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (l HeadingLevel) MarshalText() ([]byte, error) {
	if l < HeadingLevel1 || l > HeadingLevel6 {
		return nil, fmt.Errorf("cannot marshal heading level %d", int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *HeadingLevel) UnmarshalText(b []byte) error {
	lvl, err := ParseHeadingLevel(string(b))
	if err != nil {
		return err
	}
	*l = lvl
	return nil
}

// HeadingEntry is one outline item. Text is cleaned, longer than two
// characters and unique within its outline.
type HeadingEntry struct {
	Level HeadingLevel `json:"level"`
	Text  string       `json:"text"`
	Page  int          `json:"page"`
}

// Result is the extraction output for one document.
type Result struct {
	Title   string         `json:"title"`
	Outline []HeadingEntry `json:"outline"`
}

// NewResult packages a title and outline. A nil outline becomes an empty
// one so the JSON form is always an array.
func NewResult(title string, outline []HeadingEntry) *Result {
	if outline == nil {
		outline = []HeadingEntry{}
	}
	return &Result{Title: title, Outline: outline}
}

// ErrorResult returns the sentinel failure result.
func ErrorResult() *Result {
	return NewResult(ErrorTitle, nil)
}

// IsError reports whether r is the sentinel failure result
func (r *Result) IsError() bool {
	return r == nil || r.Title == ErrorTitle
}

// MarshalJSON keeps the outline an array even if the slice was cleared.
// HTML-significant characters are left unescaped; an outer encoder may
// still escape them.
func (r Result) MarshalJSON() ([]byte, error) {
	type plain Result
	if r.Outline == nil {
		r.Outline = []HeadingEntry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(plain(r)); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
