package layout

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tsawler/outline/lexicon"
	"github.com/tsawler/outline/model"
)

// HeadingConfig holds configuration for heading classification
type HeadingConfig struct {
	// MinLength and MaxLength bound candidate length in characters
	// Default: 3 and 150
	MinLength int
	MaxLength int

	// MaxWords rejects longer lines as prose
	// Default: 15
	MaxWords int

	// Exclusions reject a candidate when any of them matches anywhere
	// Default: bare numbers, "page N", copyright, URLs, "version N", email
	Exclusions []*regexp.Regexp

	// MaxArticleCount rejects lines containing "the " more often than this
	// Default: 2
	MaxArticleCount int

	// MaxConjunctionCount rejects lines containing " and " more often than this
	// Default: 1
	MaxConjunctionCount int

	// SentenceMaxWords rejects lines ending in "." with more words than this
	// Default: 8
	SentenceMaxWords int

	// Rules is the ordered pattern table; the first match wins
	Rules []PatternRule

	// LargeFontDelta makes a line a heading when its size exceeds body + delta
	// Default: 2
	LargeFontDelta float64

	// H1FontDelta promotes a large-font heading to H1 above body + delta
	// Default: 4
	H1FontDelta float64

	// BoldFontDelta is the size margin a bold line needs to be an H2
	// Default: 0.5
	BoldFontDelta float64

	// BoldMaxWords is the word limit for bold H2 headings
	// Default: 10
	BoldMaxWords int

	// BoldConnectives reject a bold line when found (lower-case substring)
	// Default: the, and, or, but, with, from
	BoldConnectives []string

	// CleanMaxWords is the word limit for stripping a trailing period
	// Default: 8
	CleanMaxWords int

	// MinHeadingLength rejects cleaned headings of this length or shorter
	// Default: 2
	MinHeadingLength int

	// StopWords is made available to classification; the default rules do not consult it.
	StopWords lexicon.Set
}

// DefaultExclusions returns the candidate exclusion patterns
func DefaultExclusions() []*regexp.Regexp {
	return []*regexp.Regexp{
		mustCompile(`(?i)^\d+$`),
		mustCompile(`(?i)page\s+\d+`),
		regexp.MustCompile(`(?i)©.*copyright`),
		regexp.MustCompile(`(?i)www\.`),
		mustCompile(`(?i)version\s+\d+`),
		regexp.MustCompile(`(?i)email|@`),
		regexp.MustCompile(`(?i)https?://`),
	}
}

// DefaultHeadingConfig returns sensible default configuration
func DefaultHeadingConfig() HeadingConfig {
	return HeadingConfig{
		MinLength:           3,
		MaxLength:           150,
		MaxWords:            15,
		Exclusions:          DefaultExclusions(),
		MaxArticleCount:     2,
		MaxConjunctionCount: 1,
		SentenceMaxWords:    8,
		Rules:               DefaultPatternRules(),
		LargeFontDelta:      2,
		H1FontDelta:         4,
		BoldFontDelta:       0.5,
		BoldMaxWords:        10,
		BoldConnectives:     []string{"the", "and", "or", "but", "with", "from"},
		CleanMaxWords:       8,
		MinHeadingLength:    2,
	}
}

// Classification records why a line was classified as a heading
type Classification struct {
	Level model.HeadingLevel

	// Rule is the matching pattern name, or "font" / "bold" for the fallbacks
	Rule string
}

// HeadingClassifier classifies document lines as headings
type HeadingClassifier struct {
	config HeadingConfig
}

// NewHeadingClassifier creates a heading classifier with default configuration
func NewHeadingClassifier() *HeadingClassifier {
	return &HeadingClassifier{config: DefaultHeadingConfig()}
}

// NewHeadingClassifierWithConfig creates a heading classifier with custom configuration
func NewHeadingClassifierWithConfig(config HeadingConfig) *HeadingClassifier {
	return &HeadingClassifier{config: config}
}

// Config returns the classifier's configuration
func (c *HeadingClassifier) Config() HeadingConfig {
	return c.config
}

// Classify walks all pages and returns the deduplicated outline sorted by
// page, then by heading text. Within a page the order is alphabetical, not
// vertical.
func (c *HeadingClassifier) Classify(pages []model.Page, profile *model.FontProfile) []model.HeadingEntry {
	body := model.DefaultFontSize
	if profile != nil {
		body = profile.BodyFontSize
	}

	headings := make([]model.HeadingEntry, 0)
	seen := make(map[string]bool)

	for _, page := range pages {
		for _, line := range page.Lines {
			class, ok := c.ClassifyLine(line, body)
			if !ok {
				continue
			}

			clean := CleanHeadingText(strings.TrimSpace(line.Text), c.config.CleanMaxWords)
			if clean == "" || textLength(clean) <= c.config.MinHeadingLength || seen[clean] {
				continue
			}
			seen[clean] = true

			headings = append(headings, model.HeadingEntry{
				Level: class.Level,
				Text:  clean,
				Page:  page.Number,
			})
		}
	}

	SortOutline(headings)
	return headings
}

// SortOutline orders entries by page ascending, then text ascending
func SortOutline(entries []model.HeadingEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Page != entries[j].Page {
			return entries[i].Page < entries[j].Page
		}
		return entries[i].Text < entries[j].Text
	})
}

// ClassifyLine decides whether a single line is a heading. Pattern rules
// are tried first; font metrics are only consulted when no pattern matches.
func (c *HeadingClassifier) ClassifyLine(line model.TextLine, bodySize float64) (Classification, bool) {
	text := strings.TrimSpace(line.Text)
	if !c.IsCandidate(text) {
		return Classification{}, false
	}

	if level, name, ok := MatchPattern(c.config.Rules, text); ok {
		return Classification{Level: level, Rule: name}, true
	}

	size := line.AvgFontSize
	if size > bodySize+c.config.LargeFontDelta {
		level := model.HeadingLevel2
		if size > bodySize+c.config.H1FontDelta {
			level = model.HeadingLevel1
		}
		return Classification{Level: level, Rule: "font"}, true
	}

	if line.IsBold && size > bodySize+c.config.BoldFontDelta {
		if wordCount(text) <= c.config.BoldMaxWords &&
			!containsAny(strings.ToLower(text), c.config.BoldConnectives) &&
			startsUpper(text) {
			return Classification{Level: model.HeadingLevel2, Rule: "bold"}, true
		}
	}

	return Classification{}, false
}

// IsCandidate applies the exclusion filters: length bounds, the exclusion
// patterns, and the prose checks (too many words, repeated articles or
// conjunctions, or a long sentence ending in a period).
func (c *HeadingClassifier) IsCandidate(text string) bool {
	n := textLength(text)
	if n < c.config.MinLength || n > c.config.MaxLength {
		return false
	}

	for _, exclusion := range c.config.Exclusions {
		if exclusion.MatchString(text) {
			return false
		}
	}

	words := wordCount(text)
	if words > c.config.MaxWords {
		return false
	}

	lower := strings.ToLower(text)
	if strings.Count(lower, "the ") > c.config.MaxArticleCount ||
		strings.Count(lower, " and ") > c.config.MaxConjunctionCount ||
		(strings.HasSuffix(text, ".") && words > c.config.SentenceMaxWords) {
		return false
	}

	return true
}
