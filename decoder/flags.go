package decoder

import (
	"strings"

	"github.com/tsawler/outline/model"
)

var boldMarkers = []string{"bold", "black", "heavy", "semibold", "demibold"}

var italicMarkers = []string{"italic", "oblique"}

// FontFlags derives style flag bits from a font name such as
// "ABCDEF+Helvetica-BoldOblique".
func FontFlags(fontName string) int {
	lower := strings.ToLower(fontName)
	flags := 0
	for _, m := range boldMarkers {
		if strings.Contains(lower, m) {
			flags |= model.FlagBold
			break
		}
	}
	for _, m := range italicMarkers {
		if strings.Contains(lower, m) {
			flags |= model.FlagItalic
			break
		}
	}
	return flags
}

// FontFamily strips the subset prefix ("ABCDEF+") from a font name
func FontFamily(fontName string) string {
	if i := strings.IndexByte(fontName, '+'); i == 6 {
		return fontName[i+1:]
	}
	return fontName
}
