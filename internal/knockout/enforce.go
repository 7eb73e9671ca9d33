// Package knockout classifies scored keywords into hard requirements and skills.
package knockout

import (
	"sort"

	"go.uber.org/zap"

	"github.com/jonathan/keyword-ranker/internal/types"
)

// EnforceLimit caps the number of surviving knockouts at max_knockouts.
// Required knockouts outrank preferred ones, then higher confidence, then
// higher score; the overflow is demoted back to skills in place.
func (c *Classifier) EnforceLimit(keywords []types.Keyword) []types.Keyword {
	idx := make([]int, 0, len(keywords))
	for i := range keywords {
		if keywords[i].IsKnockout() {
			idx = append(idx, i)
		}
	}

	limit := c.cfg.Knockouts.MaxKnockouts
	if len(idx) <= limit {
		return keywords
	}

	sort.SliceStable(idx, func(a, b int) bool {
		return knockoutLess(keywords[idx[a]], keywords[idx[b]])
	})

	for _, i := range idx[limit:] {
		keywords[i].Category = types.CategorySkill
		keywords[i].KnockoutType = types.KnockoutNone
		keywords[i].Confidence = 0
	}

	c.logger.Info("knockout limit enforced",
		zap.Int("kept", limit),
		zap.Int("demoted", len(idx)-limit))

	return keywords
}

// SortKnockouts orders knockouts for display: required before preferred,
// then descending confidence, then descending score.
func SortKnockouts(keywords []types.Keyword) {
	sort.SliceStable(keywords, func(i, j int) bool {
		return knockoutLess(keywords[i], keywords[j])
	})
}

func knockoutLess(a, b types.Keyword) bool {
	if a.KnockoutType != b.KnockoutType {
		return a.KnockoutType == types.KnockoutRequired
	}
	if a.Confidence != b.Confidence {
		return a.Confidence > b.Confidence
	}
	return a.Score > b.Score
}
