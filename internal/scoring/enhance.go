// Package scoring computes composite relevance scores for keyword candidates.
package scoring

import "strings"

// compoundBoost rewards domain compounds and multi-word phrases. Configured
// compound terms are checked in order and the first containment wins;
// otherwise the multiplier falls back to word count.
func (r *Ranker) compoundBoost(keyword string) float64 {
	kw := strings.ToLower(keyword)

	for _, cm := range r.cfg.Output.CompoundMultipliers {
		if strings.Contains(kw, cm.Term) {
			return cm.Multiplier
		}
	}

	switch len(strings.Fields(kw)) {
	case 0, 1:
		return 1.0
	case 2:
		return r.cfg.Output.TwoWordMultiplier
	default:
		return r.cfg.Output.ThreeWordMultiplier
	}
}

// executiveAdjustment boosts executive vocabulary and penalizes executive
// buzzwords. Both checks are exact matches on the lowercased keyword, and
// the vocabulary boost takes precedence when a term sits in both lists.
func (r *Ranker) executiveAdjustment(keyword string) float64 {
	kw := strings.ToLower(keyword)

	if r.cfg.IsExecutiveVocabulary(kw) {
		return r.cfg.Buzzwords.ExecutiveBoost
	}
	if r.cfg.IsExecutiveBuzzword(kw) {
		return r.cfg.Buzzwords.ExecutivePenalty
	}
	return 1.0
}
