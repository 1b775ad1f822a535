package analyzer

import (
	"strings"
	"unicode"
)

// Tokenize lowercases text and splits it on runs of non-alphanumeric
// characters. Matching downstream is exact-token equality with no
// stemming: "apis" and "api" are distinct tokens and do not match each
// other.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// TokenSet returns the distinct tokens of text.
func TokenSet(text string) map[string]struct{} {
	tokens := Tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}
