package layout

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// wordCount counts whitespace-separated words
func wordCount(s string) int {
	return len(strings.Fields(s))
}

// textLength counts characters, not bytes
func textLength(s string) int {
	return utf8.RuneCountInString(s)
}

// containsAny reports whether the lower-cased text contains any of the
// (lower-case) needles as a substring.
func containsAny(lower string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}

// isAllDigits reports whether s is non-empty and made only of digits
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// startsUpper reports whether the first character of s is an upper-case letter
func startsUpper(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && unicode.IsUpper(r)
}

// abbreviationPattern finds "letter.letter" runs such as "e.g" or "U.S".
var abbreviationPattern = regexp.MustCompile(`[\p{L}\p{N}_]\.[\p{L}\p{N}_]`)

// CleanHeadingText collapses whitespace runs to single spaces and removes
// one trailing period from short headings. The period is kept when the
// heading has more than maxWords words, ends in an ellipsis, or contains an
// abbreviation-like "x.y" sequence.
func CleanHeadingText(text string, maxWords int) string {
	text = strings.Join(strings.Fields(text), " ")

	if wordCount(text) <= maxWords &&
		!strings.HasSuffix(text, "...") &&
		!strings.HasSuffix(text, "…") &&
		strings.HasSuffix(text, ".") &&
		!abbreviationPattern.MatchString(text) {
		text = strings.TrimSuffix(text, ".")
	}

	return strings.TrimSpace(text)
}
