package allocation

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SortKey strips diacritics so names sort the same with and without
// accents ("Álvaro" next to "Alvaro").
func SortKey(name string) string {
	folded, _, err := transform.String(foldTransformer, name)
	if err != nil {
		return name
	}
	return folded
}
