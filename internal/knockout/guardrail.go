// Package knockout classifies scored keywords into hard requirements and skills.
package knockout

import (
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/keyword-ranker/internal/types"
)

// ApplyDegreeGuardrail demotes knockouts that mention a degree but never
// appear in the posting (tfidf of zero). Runs after EnforceLimit so a
// demotion here cannot be backfilled by an overflow knockout.
func (c *Classifier) ApplyDegreeGuardrail(keywords []types.Keyword) []types.Keyword {
	for i := range keywords {
		kw := &keywords[i]
		if !kw.IsKnockout() || kw.TFIDF != 0 {
			continue
		}
		if !c.cfg.GuardrailRe.MatchString(strings.ToLower(kw.Text)) {
			continue
		}

		kw.Category = types.CategorySkill
		kw.KnockoutType = types.KnockoutNone
		kw.Confidence = 0
		c.logger.Debug("degree guardrail demoted keyword", zap.String("keyword", kw.Text))
	}
	return keywords
}
