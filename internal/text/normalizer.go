// Package text normalizes catalog and query strings into the canonical
// token form shared by index build and query time. Both sides must run the
// exact same pipeline or the vocabulary lookup silently degrades.
package text

import (
	"regexp"
	"strings"
	"unicode"
)

// minTokenRunes drops one-letter leftovers ("a", "s" from possessives).
const minTokenRunes = 2

// bracketed matches editorial fragments like "[Remastered]" or "[2 seasons]"
// that show up in scraped synopsis fields.
var bracketed = regexp.MustCompile(`\[[^\]]*\]`)

// Normalizer tokenizes free text. The zero value is not usable; construct
// with NewNormalizer or NewNormalizerWith.
type Normalizer struct {
	stopwords stopwordSet
}

// NewNormalizer creates a normalizer with the fixed English stopword set.
func NewNormalizer() *Normalizer {
	return &Normalizer{stopwords: englishStopwords}
}

// NewNormalizerWith creates a normalizer with a caller-supplied stopword
// list (matched case-insensitively) instead of the default English set.
func NewNormalizerWith(stopwords []string) *Normalizer {
	return &Normalizer{stopwords: newStopwordSet(stopwords)}
}

// Normalize lowercases s, drops bracketed fragments, splits on every rune
// that is not a letter or number (so punctuation never fuses neighboring
// words), then drops digit-bearing tokens, tokens shorter than two runes
// and stopwords. It is pure and returns no error; empty or all-stopword
// input yields an empty token list.
func (n *Normalizer) Normalize(s string) []string {
	s = strings.ToLower(s)
	s = bracketed.ReplaceAllString(s, " ")

	fields := strings.FieldsFunc(s, func(c rune) bool {
		return !unicode.IsLetter(c) && !unicode.IsNumber(c)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if containsDigit(f) {
			continue
		}
		if len([]rune(f)) < minTokenRunes {
			continue
		}
		if n.stopwords.contains(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func containsDigit(s string) bool {
	for _, c := range s {
		if unicode.IsDigit(c) {
			return true
		}
	}
	return false
}
