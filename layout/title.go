package layout

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/outline/lexicon"
	"github.com/tsawler/outline/model"
)

// TitleWeights holds the named weights of the title scoring function.
type TitleWeights struct {
	// SizeFactor multiplies the number of points a line exceeds the body size
	// Default: 5
	SizeFactor float64

	// Bold is added for bold lines
	// Default: 10
	Bold float64

	// PositionBase and PositionStep give the positional bonus
	// PositionBase - PositionStep*index for index <= PositionMaxIndex.
	// Default: 15, 2, 5
	PositionBase     float64
	PositionStep     float64
	PositionMaxIndex int

	// ShortPhrase is added for lines of ShortPhraseMinWords..ShortPhraseMaxWords words
	// Default: 15 for 2..6 words
	ShortPhrase         float64
	ShortPhraseMinWords int
	ShortPhraseMaxWords int

	// SingleWord is added for one-word lines
	// Default: 5
	SingleWord float64

	// Keyword is added when the line contains one of the title keywords
	// Default: 20
	Keyword float64
}

// DefaultTitleWeights returns the standard scoring weights
func DefaultTitleWeights() TitleWeights {
	return TitleWeights{
		SizeFactor:          5,
		Bold:                10,
		PositionBase:        15,
		PositionStep:        2,
		PositionMaxIndex:    5,
		ShortPhrase:         15,
		ShortPhraseMinWords: 2,
		ShortPhraseMaxWords: 6,
		SingleWord:          5,
		Keyword:             20,
	}
}

// SizeBonus scores how far the line's average size exceeds the body size
func (w TitleWeights) SizeBonus(avgSize, bodySize float64) float64 {
	if avgSize > bodySize {
		return (avgSize - bodySize) * w.SizeFactor
	}
	return 0
}

// BoldBonus scores bold lines
func (w TitleWeights) BoldBonus(bold bool) float64 {
	if bold {
		return w.Bold
	}
	return 0
}

// PositionBonus favors lines near the top of the page
func (w TitleWeights) PositionBonus(index int) float64 {
	if index >= 0 && index <= w.PositionMaxIndex {
		return w.PositionBase - float64(index)*w.PositionStep
	}
	return 0
}

// LengthBonus favors short phrases over single words and long lines
func (w TitleWeights) LengthBonus(words int) float64 {
	switch {
	case words >= w.ShortPhraseMinWords && words <= w.ShortPhraseMaxWords:
		return w.ShortPhrase
	case words == 1:
		return w.SingleWord
	default:
		return 0
	}
}

// KeywordBonus scores lines that contain a title keyword
func (w TitleWeights) KeywordBonus(hasKeyword bool) float64 {
	if hasKeyword {
		return w.Keyword
	}
	return 0
}

// TitleConfig holds configuration for title selection
type TitleConfig struct {
	// MaxCandidates is how many lines from the top of page 1 are considered
	// Default: 10
	MaxCandidates int

	// MinLength is the minimum candidate length in characters
	// Default: 3
	MinLength int

	// ExcludedTerms disqualify a candidate when found (case-insensitive substring)
	// Default: "copyright", "version", "page", "©"
	ExcludedTerms []string

	// Keywords are title-like phrases (lower-case, substring match)
	// Default: overview, foundation, extension, level, introduction, guide, manual
	Keywords []string

	// MergeSizeTolerance is the maximum size difference for absorbing a neighbor line
	// Default: 2.0
	MergeSizeTolerance float64

	// MergeMaxWords is the maximum word count of an absorbed neighbor line
	// Default: 8
	MergeMaxWords int

	// Fallback is returned when no line qualifies
	// Default: model.FallbackTitle
	Fallback string

	// Weights are the scoring weights
	Weights TitleWeights

	// StopWords is made available to scoring; the default rules do not consult it.
	StopWords lexicon.Set
}

// DefaultTitleKeywords returns the keyword set shared by scoring and merging
func DefaultTitleKeywords() []string {
	return []string{"overview", "foundation", "extension", "level", "introduction", "guide", "manual"}
}

// DefaultTitleConfig returns sensible default configuration
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		MaxCandidates:      10,
		MinLength:          3,
		ExcludedTerms:      []string{"copyright", "version", "page", "©"},
		Keywords:           DefaultTitleKeywords(),
		MergeSizeTolerance: 2.0,
		MergeMaxWords:      8,
		Fallback:           model.FallbackTitle,
		Weights:            DefaultTitleWeights(),
	}
}

// TitleScore is the score breakdown for one candidate line
type TitleScore struct {
	Index    int
	Text     string
	Size     float64
	Bold     float64
	Position float64
	Length   float64
	Keyword  float64
}

// Total returns the sum of all components
func (s TitleScore) Total() float64 {
	return s.Size + s.Bold + s.Position + s.Length + s.Keyword
}

// TitleSelector chooses a document title from the first page
type TitleSelector struct {
	config TitleConfig
}

// NewTitleSelector creates a title selector with default configuration
func NewTitleSelector() *TitleSelector {
	return &TitleSelector{config: DefaultTitleConfig()}
}

// NewTitleSelectorWithConfig creates a title selector with custom configuration
func NewTitleSelectorWithConfig(config TitleConfig) *TitleSelector {
	return &TitleSelector{config: config}
}

// Config returns the selector's configuration
func (s *TitleSelector) Config() TitleConfig {
	return s.config
}

// Select returns the title for a document given its first page. The best
// scoring line is extended with an adjacent line when that line looks like
// part of the same title. The result is never empty.
func (s *TitleSelector) Select(first *model.Page, profile *model.FontProfile) string {
	if first == nil || profile == nil {
		return s.fallback()
	}

	candidates := s.Candidates(first, profile)
	if len(candidates) == 0 {
		return s.fallback()
	}

	best := candidates[0]
	parts := []string{best.Text}
	anchor := first.Lines[best.Index]

	if prev, ok := s.mergeable(first.Lines, best.Index-1, anchor); ok {
		parts = append([]string{prev}, parts...)
	}
	if next, ok := s.mergeable(first.Lines, best.Index+1, anchor); ok {
		parts = append(parts, next)
	}

	title := strings.TrimSpace(strings.Join(parts, " "))
	if title == "" {
		return s.fallback()
	}
	return title
}

// Candidates scores the eligible lines among the first MaxCandidates lines
// and returns them best first. Equal scores keep their page order.
func (s *TitleSelector) Candidates(first *model.Page, profile *model.FontProfile) []TitleScore {
	if first == nil || profile == nil {
		return nil
	}

	var scores []TitleScore
	for i, line := range first.FirstLines(s.config.MaxCandidates) {
		text := strings.TrimSpace(line.Text)
		if s.excluded(text) {
			continue
		}
		scores = append(scores, s.Score(line, i, profile.BodyFontSize))
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Total() > scores[j].Total()
	})
	return scores
}

// Score computes the score breakdown for a line at the given page index
func (s *TitleSelector) Score(line model.TextLine, index int, bodySize float64) TitleScore {
	w := s.config.Weights
	text := strings.TrimSpace(line.Text)

	return TitleScore{
		Index:    index,
		Text:     text,
		Size:     w.SizeBonus(line.AvgFontSize, bodySize),
		Bold:     w.BoldBonus(line.IsBold),
		Position: w.PositionBonus(index),
		Length:   w.LengthBonus(wordCount(text)),
		Keyword:  w.KeywordBonus(containsAny(strings.ToLower(text), s.config.Keywords)),
	}
}

// excluded reports whether a line can never be a title
func (s *TitleSelector) excluded(text string) bool {
	if text == "" || textLength(text) < s.config.MinLength || isAllDigits(text) {
		return true
	}
	return containsAny(strings.ToLower(text), s.config.ExcludedTerms)
}

// mergeable checks whether the line at idx continues the anchor title line
func (s *TitleSelector) mergeable(lines []model.TextLine, idx int, anchor model.TextLine) (string, bool) {
	if idx < 0 || idx >= len(lines) {
		return "", false
	}
	neighbor := lines[idx]
	text := strings.TrimSpace(neighbor.Text)
	if text == "" {
		return "", false
	}
	if math.Abs(neighbor.AvgFontSize-anchor.AvgFontSize) >= s.config.MergeSizeTolerance {
		return "", false
	}
	if !containsAny(strings.ToLower(text), s.config.Keywords) {
		return "", false
	}
	if wordCount(text) > s.config.MergeMaxWords {
		return "", false
	}
	return text, true
}

func (s *TitleSelector) fallback() string {
	if s.config.Fallback == "" {
		return model.FallbackTitle
	}
	return s.config.Fallback
}
