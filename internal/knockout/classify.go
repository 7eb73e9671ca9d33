// Package knockout classifies scored keywords into hard requirements and skills.
package knockout

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/keyword-ranker/internal/config"
	"github.com/jonathan/keyword-ranker/internal/types"
)

// Years-based detection is unambiguous enough to carry a fixed confidence.
const yearsConfidence = 0.8

// Classifier sorts scored keywords into knockout requirements and plain
// skills using the configured pattern lexicons.
type Classifier struct {
	cfg    *config.Compiled
	logger *zap.Logger
}

// NewClassifier returns a Classifier. A nil logger disables logging.
func NewClassifier(cfg *config.Compiled, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{cfg: cfg, logger: logger}
}

// Classify categorizes every keyword in place and returns the slice.
func (c *Classifier) Classify(keywords []types.Keyword) []types.Keyword {
	for i := range keywords {
		keywords[i] = c.categorize(keywords[i])
	}
	return keywords
}

func (c *Classifier) categorize(kw types.Keyword) types.Keyword {
	lower := strings.ToLower(kw.Text)

	// Soft skills never become knockouts
	if anyMatch(c.cfg.SoftSkillRes, lower) {
		kw.Category = types.CategorySkill
		return kw
	}

	// An explicit years-of-experience mention short-circuits the
	// confidence accumulation
	for _, re := range c.cfg.YearsRes {
		loc := re.FindStringIndex(lower)
		if loc == nil {
			continue
		}
		kw.Category = types.CategoryKnockout
		kw.KnockoutType = c.knockoutType(lower)
		kw.Confidence = yearsConfidence
		kw.Method = types.DetectionYearsBased
		kw.Context = c.yearsContext(kw.Text, loc[0], loc[1])
		kw.YearsMatch = lower[loc[0]:loc[1]]
		return kw
	}

	if conf := c.confidence(lower, kw.Role); conf >= c.cfg.Knockouts.ConfidenceThreshold {
		kw.Category = types.CategoryKnockout
		kw.KnockoutType = c.knockoutType(lower)
		kw.Confidence = conf
		kw.Method = types.DetectionPatternBased
		return kw
	}

	kw.Category = types.CategorySkill
	return kw
}

// confidence accumulates evidence that a keyword is a hard requirement.
// Each signal family contributes at most once.
func (c *Classifier) confidence(lower string, roleWeight float64) float64 {
	k := c.cfg.Knockouts
	conf := 0.0

	if anyMatch(c.cfg.HardRes, lower) {
		conf += k.HardPatternWeight
	}
	if anyMatch(c.cfg.MediumRes, lower) {
		conf += k.MediumPatternWeight
	}

	highRole := roleWeight >= k.HighRoleThreshold
	if highRole && c.cfg.YearsSignalRe.MatchString(lower) {
		conf += k.YearsHighRoleWeight
	}
	if highRole && c.cfg.DegreeSignalRe.MatchString(lower) {
		conf += k.DegreeHighRoleWeight
	}
	if containsAny(lower, k.RequiredIndicators) {
		conf += k.RequiredLanguageWeight
	}

	return conf
}

func (c *Classifier) knockoutType(lower string) string {
	if containsAny(lower, c.cfg.Knockouts.PreferredIndicators) {
		return types.KnockoutPreferred
	}
	return types.KnockoutRequired
}

// yearsContext extracts the text surrounding a years mention, trimming
// partial words cut off at the window edges.
func (c *Classifier) yearsContext(text string, start, end int) string {
	w := c.cfg.Knockouts.ContextWindow
	lo := start - w
	if lo < 0 {
		lo = 0
	}
	hi := end + w
	if hi > len(text) {
		hi = len(text)
	}

	words := strings.Fields(strings.TrimSpace(text[lo:hi]))
	if lo > 0 && len(words) > 1 {
		words = words[1:]
	}
	if hi < len(text) && len(words) > 1 {
		words = words[:len(words)-1]
	}

	return strings.Join(words, " ")
}

func anyMatch(res []*regexp.Regexp, s string) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
