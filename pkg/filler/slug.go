package filler

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccenter = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify derives the filler table's canonical show slug from a series
// name: diacritics stripped, lowercased, runs of non-alphanumerics collapsed
// to single dashes.
func Slugify(name string) string {
	ascii, _, err := transform.String(deaccenter, name)
	if err != nil {
		ascii = name
	}

	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(ascii) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			dash = false
		default:
			if !dash && sb.Len() > 0 {
				sb.WriteByte('-')
				dash = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
