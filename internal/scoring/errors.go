// Package scoring computes composite relevance scores for keyword candidates.
package scoring

import "errors"

var (
	// ErrEmptyDocument means the posting produced no usable tokens.
	ErrEmptyDocument = errors.New("scoring: job posting produced no tokens")

	// ErrEmptyVocabulary means no keyword reduced to a countable n-gram.
	ErrEmptyVocabulary = errors.New("scoring: no keyword produced a vocabulary entry")
)
