package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s and removes combining marks, so "Tōkyō" and "Tôkyô" both become "tokyo".
// Compatibility decomposition also maps full-width Latin ("ＴＯＫＹＯ") to ASCII.
func Fold(s string) string {
	// transform.Chain keeps state, so each call gets its own chain.
	stripMarks := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(stripMarks, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}
