// Package config provides configuration defaults, loading, and validation for the keyword ranking pipeline.
package config

import (
	"fmt"
	"math"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validate checks structural constraints, the score weight sum, and that
// every configured regex compiles. It is called by Load after overlaying
// file values, and should be called again after programmatic mutation.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	sum := c.Scoring.TFIDFWeight + c.Scoring.SectionWeight + c.Scoring.RoleWeight
	if math.Abs(sum-1.0) > 0.001 {
		return fmt.Errorf("config error: scoring weights must sum to 1.0, got %.3f", sum)
	}

	if c.Injection.SimilarityThreshold > c.Injection.HighSimilarityThreshold {
		return fmt.Errorf("config error: injection similarity_threshold %.2f exceeds high_similarity_threshold %.2f",
			c.Injection.SimilarityThreshold, c.Injection.HighSimilarityThreshold)
	}

	for name, patterns := range map[string][]string{
		"scoring.title_patterns":          c.Scoring.TitlePatterns,
		"knockouts.hard_patterns":         c.Knockouts.HardPatterns,
		"knockouts.medium_patterns":       c.Knockouts.MediumPatterns,
		"knockouts.soft_skill_exclusions": c.Knockouts.SoftSkillExclusions,
		"knockouts.years_patterns":        c.Knockouts.YearsPatterns,
		"knockouts.years_signal_pattern":  {c.Knockouts.YearsSignalPattern},
		"knockouts.degree_signal_pattern": {c.Knockouts.DegreeSignalPattern},
		"knockouts.guardrail_degree":      {c.Knockouts.GuardrailDegreePattern},
		"clustering.experience_pattern":   {c.Clustering.ExperiencePattern},
		"extraction.patterns":             c.Extraction.Patterns,
	} {
		for _, p := range patterns {
			if _, err := regexp.Compile(p); err != nil {
				return fmt.Errorf("config error: invalid regex in %s: %w", name, err)
			}
		}
	}

	for _, rule := range c.Sections.Rules {
		if _, err := regexp.Compile(rule.Pattern); err != nil {
			return fmt.Errorf("config error: invalid regex in sections rule %q: %w", rule.Name, err)
		}
	}

	if c.Sections.BoostFor(c.Sections.DefaultSection) == 0 && c.Sections.DefaultSection != "" {
		found := false
		for _, rule := range c.Sections.Rules {
			if rule.Name == c.Sections.DefaultSection {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("config error: default_section %q has no matching section rule", c.Sections.DefaultSection)
		}
	}

	return nil
}
