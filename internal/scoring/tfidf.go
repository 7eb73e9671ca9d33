// Package scoring computes composite relevance scores for keyword candidates.
package scoring

import (
	"math"
	"regexp"
	"strings"
)

// maxNGram bounds vocabulary entries to 1..3 token phrases.
const maxNGram = 3

var tokenRe = regexp.MustCompile(`\w\w+`)

// Tokenize lowercases text and returns word tokens of two or more
// characters with English stop words removed.
func Tokenize(text string) []string {
	raw := tokenRe.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if !IsStopWord(tok) {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// TermScores computes the normalized term frequency of each keyword over
// the document token stream. Each keyword is analyzed with the same
// tokenizer as the document and counted as an exact n-gram; the resulting
// count vector is L2-normalized across the whole vocabulary.
//
// Keywords reducing to zero tokens or to more than maxNGram tokens score 0.
func TermScores(docTokens []string, keywords []string) ([]float64, error) {
	if len(docTokens) == 0 {
		return nil, ErrEmptyDocument
	}

	counts := make([]float64, len(keywords))
	usable := 0
	for i, kw := range keywords {
		gram := Tokenize(kw)
		if len(gram) == 0 || len(gram) > maxNGram {
			continue
		}
		usable++
		counts[i] = float64(countNGram(docTokens, gram))
	}
	if usable == 0 {
		return nil, ErrEmptyVocabulary
	}

	var sumSq float64
	for _, c := range counts {
		sumSq += c * c
	}
	if sumSq > 0 {
		norm := math.Sqrt(sumSq)
		for i := range counts {
			counts[i] /= norm
		}
	}

	return counts, nil
}

// countNGram counts consecutive occurrences of gram in tokens.
func countNGram(tokens, gram []string) int {
	if len(gram) == 0 || len(gram) > len(tokens) {
		return 0
	}
	count := 0
	for i := 0; i+len(gram) <= len(tokens); i++ {
		match := true
		for j, g := range gram {
			if tokens[i+j] != g {
				match = false
				break
			}
		}
		if match {
			count++
		}
	}
	return count
}

// FallbackScores estimates relevance by raw substring frequency when
// vectorization fails. Counts are scaled by divisor and capped at 1.0.
func FallbackScores(docText string, keywords []string, divisor float64) []float64 {
	docLower := strings.ToLower(docText)
	scores := make([]float64, len(keywords))
	for i, kw := range keywords {
		count := strings.Count(docLower, strings.ToLower(kw))
		score := float64(count) / divisor
		if score > 1.0 {
			score = 1.0
		}
		scores[i] = score
	}
	return scores
}
