package glossary

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Letters that carry no combining mark after NFD and need an explicit fold.
var foldReplacer = strings.NewReplacer("ł", "l", "Ł", "l", "ß", "ss", "æ", "ae", "ø", "o")

// Slugify derives a URL slug from a term: lowercase ASCII letters and digits
// separated by single hyphens. "Księgowość (FK)" becomes "ksiegowosc-fk".
func Slugify(term string) string {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, foldReplacer.Replace(term))
	if err != nil {
		folded = term
	}

	var b strings.Builder
	b.Grow(len(folded))
	dash := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
