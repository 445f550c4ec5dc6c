// Package similarity estimates how close two text bodies are. It blends a word-level token set overlap
// with a character n-gram overlap, both measured as |intersection| / |union| of the element sets.
//
// Token overlap catches paraphrased or reordered copy, n-grams catch copy-paste spam mangled with
// punctuation, emojis or misspellings.
package similarity

import (
	"regexp"
	"strings"
)

// DefaultNGramSize is the n-gram length used by Combined.
const DefaultNGramSize = 3

// blend weights for Combined, word-level vs character-level
const (
	tokenWeight = 0.6
	ngramWeight = 0.4
)

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// Combined returns the blended similarity of a and b in [0, 1].
// It is symmetric, 1 for identical non-empty inputs, 1 for two empty inputs and 0 if only one is empty.
func Combined(a, b string) float64 {
	return tokenWeight*Jaccard(a, b) + ngramWeight*NGram(a, b, DefaultNGramSize)
}

// Jaccard returns the token set similarity of a and b. Tokens are lower-cased words longer than 2 characters,
// with non-word characters treated as separators.
func Jaccard(a, b string) float64 {
	return overlap(tokens(a), tokens(b))
}

// NGram returns the character n-gram set similarity of a and b.
// Text is lower-cased and whitespace runs collapsed to a single space before slicing. Non-positive n is treated as 1.
func NGram(a, b string, n int) float64 {
	if n < 1 {
		n = 1
	}
	return overlap(ngrams(a, n), ngrams(b, n))
}

// overlap is |a ∩ b| / |a ∪ b|, 1 if both sets are empty and 0 if only one is.
func overlap(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}
	intersection := 0
	for k := range small {
		if _, ok := large[k]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

func tokens(text string) map[string]struct{} {
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(text), " ")
	res := make(map[string]struct{})
	for _, w := range strings.Fields(cleaned) {
		if len(w) <= 2 {
			continue
		}
		res[w] = struct{}{}
	}
	return res
}

func ngrams(text string, n int) map[string]struct{} {
	runes := []rune(strings.Join(strings.Fields(strings.ToLower(text)), " "))
	res := make(map[string]struct{})
	for i := 0; i+n <= len(runes); i++ {
		res[string(runes[i:i+n])] = struct{}{}
	}
	return res
}
