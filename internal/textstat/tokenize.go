// Package textstat splits chat message text into word tokens and emoji.
package textstat

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TokenizeWords lower-cases text and returns every maximal run of ASCII
// letters, digits and apostrophes that begins and ends on a word boundary.
// Word boundaries follow Unicode word characters, so "café" yields nothing
// and "'quoted'" yields "quoted".
func TokenizeWords(text string) []string {
	if text == "" {
		return nil
	}
	runes := []rune(cases.Lower(language.Und).String(text))

	var words []string
	i := 0
	for i < len(runes) {
		if !isTokenRune(runes[i]) || !boundaryAt(runes, i) {
			i++
			continue
		}
		end := i
		for end < len(runes) && isTokenRune(runes[end]) {
			end++
		}
		// give back trailing runes until the match ends on a boundary
		for end > i && !boundaryAt(runes, end) {
			end--
		}
		if end == i {
			i++
			continue
		}
		words = append(words, string(runes[i:end]))
		i = end
	}
	return words
}

func isTokenRune(r rune) bool {
	return r == '\'' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// boundaryAt reports whether position pos (between runes[pos-1] and runes[pos])
// separates a word rune from a non-word rune.
func boundaryAt(runes []rune, pos int) bool {
	before := pos > 0 && isWordRune(runes[pos-1])
	after := pos < len(runes) && isWordRune(runes[pos])
	return before != after
}
