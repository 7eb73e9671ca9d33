// Package config provides configuration defaults, loading, and validation for the keyword ranking pipeline.
package config

import (
	"fmt"
	"regexp"
)

// CompiledSectionRule is a section rule with its pattern compiled.
type CompiledSectionRule struct {
	Name  string
	Re    *regexp.Regexp
	Boost float64
}

// Compiled wraps a Config with every regex pattern compiled and every
// lexicon converted to a lookup set. The pipeline works with Compiled so
// patterns are built once per run instead of per keyword.
type Compiled struct {
	*Config

	TitleRes     []*regexp.Regexp
	SectionRules []CompiledSectionRule

	HardRes        []*regexp.Regexp
	MediumRes      []*regexp.Regexp
	SoftSkillRes   []*regexp.Regexp
	YearsRes       []*regexp.Regexp
	YearsSignalRe  *regexp.Regexp
	DegreeSignalRe *regexp.Regexp
	GuardrailRe    *regexp.Regexp

	ExperienceRe  *regexp.Regexp
	ExtractionRes []*regexp.Regexp

	buzzwords     map[string]struct{}
	execBuzzwords map[string]struct{}
	execVocab     map[string]struct{}
}

// Compile validates the configuration and builds its compiled form.
func (c *Config) Compile() (*Compiled, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cp := &Compiled{
		Config:        c,
		buzzwords:     toSet(c.Buzzwords.Buzzwords),
		execBuzzwords: toSet(c.Buzzwords.ExecutiveBuzzwords),
		execVocab:     toSet(c.Buzzwords.ExecutiveVocabulary),
	}

	var err error
	if cp.TitleRes, err = compileAll(c.Scoring.TitlePatterns); err != nil {
		return nil, fmt.Errorf("failed to compile title patterns: %w", err)
	}
	if cp.HardRes, err = compileAll(c.Knockouts.HardPatterns); err != nil {
		return nil, fmt.Errorf("failed to compile hard patterns: %w", err)
	}
	if cp.MediumRes, err = compileAll(c.Knockouts.MediumPatterns); err != nil {
		return nil, fmt.Errorf("failed to compile medium patterns: %w", err)
	}
	if cp.SoftSkillRes, err = compileAll(c.Knockouts.SoftSkillExclusions); err != nil {
		return nil, fmt.Errorf("failed to compile soft skill exclusions: %w", err)
	}
	if cp.YearsRes, err = compileAll(c.Knockouts.YearsPatterns); err != nil {
		return nil, fmt.Errorf("failed to compile years patterns: %w", err)
	}
	if cp.YearsSignalRe, err = regexp.Compile(c.Knockouts.YearsSignalPattern); err != nil {
		return nil, fmt.Errorf("failed to compile years signal pattern: %w", err)
	}
	if cp.DegreeSignalRe, err = regexp.Compile(c.Knockouts.DegreeSignalPattern); err != nil {
		return nil, fmt.Errorf("failed to compile degree signal pattern: %w", err)
	}
	if cp.GuardrailRe, err = regexp.Compile(c.Knockouts.GuardrailDegreePattern); err != nil {
		return nil, fmt.Errorf("failed to compile guardrail pattern: %w", err)
	}
	if cp.ExperienceRe, err = regexp.Compile(c.Clustering.ExperiencePattern); err != nil {
		return nil, fmt.Errorf("failed to compile experience pattern: %w", err)
	}
	if cp.ExtractionRes, err = compileAll(c.Extraction.Patterns); err != nil {
		return nil, fmt.Errorf("failed to compile extraction patterns: %w", err)
	}

	for _, rule := range c.Sections.Rules {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to compile section rule %q: %w", rule.Name, err)
		}
		cp.SectionRules = append(cp.SectionRules, CompiledSectionRule{Name: rule.Name, Re: re, Boost: rule.Boost})
	}

	return cp, nil
}

// IsBuzzword reports whether text is an exact buzzword match.
func (cp *Compiled) IsBuzzword(text string) bool {
	_, ok := cp.buzzwords[text]
	return ok
}

// IsExecutiveBuzzword reports whether text is an exact executive buzzword match.
func (cp *Compiled) IsExecutiveBuzzword(text string) bool {
	_, ok := cp.execBuzzwords[text]
	return ok
}

// IsExecutiveVocabulary reports whether text is an exact executive vocabulary match.
func (cp *Compiled) IsExecutiveVocabulary(text string) bool {
	_, ok := cp.execVocab[text]
	return ok
}

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, err
		}
		res = append(res, re)
	}
	return res, nil
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[s] = struct{}{}
	}
	return set
}
