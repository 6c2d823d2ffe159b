package layout

import (
	"regexp"
	"strings"

	"github.com/tsawler/outline/model"
)

// LevelResolver picks a heading level for text that matched a pattern
type LevelResolver func(text string) model.HeadingLevel

// PatternRule pairs a heading pattern with the resolver for its level.
// Rules are evaluated in order and the first match wins.
type PatternRule struct {
	Name    string
	Pattern *regexp.Regexp
	Level   LevelResolver
}

// unicodeClasses widens \d to every decimal digit (so "１.２" numbers a
// section like "1.2") and \s to every Unicode space, including U+00A0,
// U+3000 and the C0 separators.
var unicodeClasses = strings.NewReplacer(
	`\d`, `\p{Nd}`,
	`\s`, `[\s\x0b\x1c-\x1f\x85\p{Z}]`,
)

// mustCompile compiles expr with \d and \s read as Unicode classes. expr
// must not use either class inside brackets.
func mustCompile(expr string) *regexp.Regexp {
	return regexp.MustCompile(unicodeClasses.Replace(expr))
}

var (
	subNumberedPrefix = mustCompile(`^\d+\.\d+`)
	numberedPrefix    = mustCompile(`^\d+\.`)
)

// FixedLevel returns a resolver that always yields level
func FixedLevel(level model.HeadingLevel) LevelResolver {
	return func(string) model.HeadingLevel { return level }
}

// NumberedLevel resolves "1.2 ..." to H2 and "1. ..." or anything else to H1.
// The sub-numbered prefix is tested first.
func NumberedLevel(text string) model.HeadingLevel {
	switch {
	case subNumberedPrefix.MatchString(text):
		return model.HeadingLevel2
	case numberedPrefix.MatchString(text):
		return model.HeadingLevel1
	default:
		return model.HeadingLevel1
	}
}

// sectionTitles are matched as whole lines
var sectionTitles = []string{
	"Revision History",
	"Table of Contents",
	"Acknowledgements",
	"Abstract",
	"Introduction",
	"Conclusion",
	"Summary",
	"References",
	"Bibliography",
	"Appendix",
}

// DefaultPatternRules returns the ordered heading pattern table. All
// patterns are case-insensitive, and their digit and space classes are
// Unicode-wide, so full-width numbering such as "１. Scope" matches.
func DefaultPatternRules() []PatternRule {
	rules := make([]PatternRule, 0, len(sectionTitles)+5)
	for _, title := range sectionTitles {
		rules = append(rules, PatternRule{
			Name:    title,
			Pattern: mustCompile(`(?i)^(` + regexp.QuoteMeta(title) + `)\s*$`),
			Level:   FixedLevel(model.HeadingLevel1),
		})
	}

	rules = append(rules,
		PatternRule{
			Name:    "sub-numbered section",
			Pattern: mustCompile(`(?i)^\d+\.\d+\s+[A-Z][^.]*$`),
			Level:   NumberedLevel,
		},
		PatternRule{
			Name:    "numbered section",
			Pattern: mustCompile(`(?i)^\d+\.\s+[A-Z][^.]*$`),
			Level:   NumberedLevel,
		},
		PatternRule{
			Name:    "numbered references",
			Pattern: mustCompile(`(?i)^\d+\s+(References)\s*$`),
			Level:   NumberedLevel,
		},
		PatternRule{
			Name:    "chapter",
			Pattern: mustCompile(`(?i)^Chapter\s+\d+`),
			Level:   NumberedLevel,
		},
		PatternRule{
			Name:    "section",
			Pattern: mustCompile(`(?i)^Section\s+\d+`),
			Level:   NumberedLevel,
		},
	)

	return rules
}

// MatchPattern evaluates rules in order against text and returns the level
// and rule name of the first match.
func MatchPattern(rules []PatternRule, text string) (model.HeadingLevel, string, bool) {
	for _, rule := range rules {
		if rule.Pattern != nil && rule.Pattern.MatchString(text) {
			level := model.HeadingLevel1
			if rule.Level != nil {
				level = rule.Level(text)
			}
			return level, rule.Name, true
		}
	}
	return model.HeadingLevelUnknown, "", false
}
