package helpers

import (
	"strings"
	"unicode"
)

// turkishReplacer folds Turkish characters to their ASCII counterparts
// before slugging so that "Satranç" becomes "satranc".
var turkishReplacer = strings.NewReplacer(
	"ç", "c", "Ç", "c",
	"ğ", "g", "Ğ", "g",
	"ı", "i", "I", "i",
	"İ", "i",
	"ö", "o", "Ö", "o",
	"ş", "s", "Ş", "s",
	"ü", "u", "Ü", "u",
)

// Slugify converts a title to a URL-safe slug: Turkish characters folded,
// lowercased, non-alphanumerics collapsed into single dashes.
func Slugify(title string) string {
	folded := turkishReplacer.Replace(strings.TrimSpace(title))
	folded = strings.ToLower(folded)

	var b strings.Builder
	lastDash := true // suppress leading dash
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
