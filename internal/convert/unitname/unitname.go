// Package unitname folds user-typed unit names into lookup keys.
package unitname

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Key lowercases s, strips diacritics and turns spaces and dashes into
// underscores, so "Fracción Masa" and "fraccion_masa" share a key.
func Key(s string) string {
	s = strings.TrimSpace(s)

	// Chains keep state between calls; build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	folded = strings.ToLower(folded)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '\t':
			return '_'
		}
		return r
	}, folded)
}
