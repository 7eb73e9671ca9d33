// Package config provides configuration defaults, loading, and validation for the keyword ranking pipeline.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the full configuration tree. Every weight, threshold, lexicon,
// and pattern the pipeline consults lives here so behavior can be tuned from
// a JSON file without touching code.
type Config struct {
	Scoring    ScoringConfig    `json:"scoring"`
	Roles      RolesConfig      `json:"roles"`
	Buzzwords  BuzzwordConfig   `json:"buzzwords"`
	Sections   SectionConfig    `json:"sections"`
	Knockouts  KnockoutConfig   `json:"knockouts"`
	Clustering ClusteringConfig `json:"clustering"`
	Injection  InjectionConfig  `json:"injection"`
	Extraction ExtractionConfig `json:"extraction"`
	Output     OutputConfig     `json:"output"`
	Embedding  EmbeddingConfig  `json:"embedding"`
}

// ScoringConfig holds composite score weights and enhancement settings.
// The three weights must sum to 1.0.
type ScoringConfig struct {
	TFIDFWeight   float64 `json:"tfidf_weight" validate:"gt=0,lte=1"`
	SectionWeight float64 `json:"section_weight" validate:"gt=0,lte=1"`
	RoleWeight    float64 `json:"role_weight" validate:"gt=0,lte=1"`

	JobTitleBoost   float64 `json:"job_title_boost" validate:"gte=1"`
	ExperienceBoost float64 `json:"experience_boost" validate:"gte=0,lte=1"`
	TitleScanWords  int     `json:"title_scan_words" validate:"gt=0"`
	TitleScanLines  int     `json:"title_scan_lines" validate:"gt=0"`

	// Regexes used to locate the job title near the top of the posting
	TitlePatterns []string `json:"title_patterns" validate:"min=1"`

	// Divisor for the raw-frequency fallback when vectorization fails
	FrequencyFallbackDivisor float64 `json:"frequency_fallback_divisor" validate:"gt=0"`
}

// RolesConfig maps candidate roles to importance weights.
type RolesConfig struct {
	Core      float64 `json:"core" validate:"gt=0"`
	Important float64 `json:"important" validate:"gt=0"`
	Culture   float64 `json:"culture" validate:"gt=0"`
}

// Weight returns the weight for a role name. Unknown roles get the culture weight.
func (r RolesConfig) Weight(role string) float64 {
	switch role {
	case "core":
		return r.Core
	case "important":
		return r.Important
	default:
		return r.Culture
	}
}

// BuzzwordConfig holds buzzword lexicons and their score adjustments.
type BuzzwordConfig struct {
	Penalty          float64 `json:"penalty" validate:"gt=0,lte=1"`
	ExecutivePenalty float64 `json:"executive_penalty" validate:"gt=0,lte=1"`
	ExecutiveBoost   float64 `json:"executive_boost" validate:"gte=1"`

	Buzzwords           []string `json:"buzzwords"`
	ExecutiveBuzzwords  []string `json:"executive_buzzwords"`
	ExecutiveVocabulary []string `json:"executive_vocabulary"`
}

// SectionRule pairs a section heading pattern with its boost. Rules are
// evaluated in order; the first matching pattern decides the section.
type SectionRule struct {
	Name    string  `json:"name" validate:"required"`
	Pattern string  `json:"pattern" validate:"required"`
	Boost   float64 `json:"boost" validate:"gte=0,lte=1"`
}

// SectionConfig drives the line-scanning section boost.
type SectionConfig struct {
	Rules          []SectionRule `json:"rules" validate:"min=1,dive"`
	DefaultSection string        `json:"default_section" validate:"required"`
}

// BoostFor returns the boost for a section name, or 0 if the name is unknown.
func (s SectionConfig) BoostFor(name string) float64 {
	for _, rule := range s.Rules {
		if rule.Name == name {
			return rule.Boost
		}
	}
	return 0.0
}

// KnockoutConfig holds knockout detection patterns, confidence weights, and limits.
type KnockoutConfig struct {
	MaxKnockouts        int     `json:"max_knockouts" validate:"gt=0"`
	ConfidenceThreshold float64 `json:"confidence_threshold" validate:"gt=0,lte=1"`

	HardPatternWeight      float64 `json:"hard_pattern_weight" validate:"gte=0,lte=1"`
	MediumPatternWeight    float64 `json:"medium_pattern_weight" validate:"gte=0,lte=1"`
	YearsHighRoleWeight    float64 `json:"years_high_role_weight" validate:"gte=0,lte=1"`
	DegreeHighRoleWeight   float64 `json:"degree_high_role_weight" validate:"gte=0,lte=1"`
	RequiredLanguageWeight float64 `json:"required_language_weight" validate:"gte=0,lte=1"`
	HighRoleThreshold      float64 `json:"high_role_threshold" validate:"gt=0"`

	HardPatterns        []string `json:"hard_patterns" validate:"min=1"`
	MediumPatterns      []string `json:"medium_patterns" validate:"min=1"`
	SoftSkillExclusions []string `json:"soft_skill_exclusions" validate:"min=1"`
	YearsPatterns       []string `json:"years_patterns" validate:"min=1"`

	// Signal patterns used by the confidence accumulator
	YearsSignalPattern  string `json:"years_signal_pattern" validate:"required"`
	DegreeSignalPattern string `json:"degree_signal_pattern" validate:"required"`

	// Degree-shaped knockouts with no posting evidence are demoted to skills
	GuardrailDegreePattern string `json:"guardrail_degree_pattern" validate:"required"`

	PreferredIndicators []string `json:"preferred_indicators" validate:"min=1"`
	RequiredIndicators  []string `json:"required_indicators" validate:"min=1"`

	// Characters of surrounding text captured around a years match
	ContextWindow int `json:"context_window" validate:"gt=0"`
}

// ClusteringConfig drives semantic alias clustering and median trimming.
type ClusteringConfig struct {
	DistanceThreshold float64 `json:"distance_threshold" validate:"gt=0,lte=1"`
	MedianMultiplier  float64 `json:"median_multiplier" validate:"gt=0"`
	MinKeywords       int     `json:"min_keywords" validate:"gt=0"`

	// Keywords matching this pattern win canonical selection within a cluster
	ExperiencePattern string `json:"experience_pattern" validate:"required"`

	// Keywords containing any scale term get ScaleContext appended before embedding
	ScaleTerms   []string `json:"scale_terms"`
	ScaleContext string   `json:"scale_context"`
}

// InjectionConfig holds thresholds for resume injection-point analysis.
type InjectionConfig struct {
	SimilarityThreshold     float64 `json:"similarity_threshold" validate:"gt=0,lte=1"`
	HighSimilarityThreshold float64 `json:"high_similarity_threshold" validate:"gt=0,lte=1"`
	MinWordLength           int     `json:"min_word_length" validate:"gt=0"`
	WordMatchRatio          float64 `json:"word_match_ratio" validate:"gt=0,lte=1"`
	MaxMatches              int     `json:"max_matches" validate:"gt=0"`
	MinSentenceLength       int     `json:"min_sentence_length" validate:"gte=0"`
	DisplayLength           int     `json:"display_length" validate:"gt=0"`
}

// ExtractionConfig drives direct mining of experience requirements from
// posting text, used when the candidate list may be missing them.
type ExtractionConfig struct {
	// Patterns that capture a years figure plus the skill phrase it applies to
	Patterns []string `json:"patterns" validate:"min=1"`

	// Requirements mentioning any of these get the core role weight
	SeniorTerms []string `json:"senior_terms"`

	// A match must contain one of these words to count as a requirement
	RequirementTerms []string `json:"requirement_terms" validate:"min=1"`

	MinLength        int     `json:"min_length" validate:"gt=0"`
	OverlapThreshold float64 `json:"overlap_threshold" validate:"gt=0,lte=1"`

	// Characters of surrounding posting text kept with each requirement
	ContextBefore int `json:"context_before" validate:"gte=0"`
	ContextAfter  int `json:"context_after" validate:"gte=0"`
}

// CompoundMultiplier binds a substring term to a score multiplier.
// Entries are checked in order; the first containment wins.
type CompoundMultiplier struct {
	Term       string  `json:"term" validate:"required"`
	Multiplier float64 `json:"multiplier" validate:"gt=0"`
}

// OutputConfig holds result-shaping settings.
type OutputConfig struct {
	MaxTopKeywords int `json:"max_top_keywords" validate:"gt=0"`

	CompoundMultipliers []CompoundMultiplier `json:"compound_multipliers" validate:"dive"`
	TwoWordMultiplier   float64              `json:"two_word_multiplier" validate:"gte=1"`
	ThreeWordMultiplier float64              `json:"three_word_multiplier" validate:"gte=1"`
}

// EmbeddingConfig selects the embedding model and the per-call timeout.
type EmbeddingConfig struct {
	Model          string `json:"model" validate:"required"`
	TimeoutSeconds int    `json:"timeout_seconds" validate:"gt=0"`
}

// Load reads a JSON config file and overlays it on the defaults.
// Fields absent from the file keep their default values; lists present in
// the file replace the default lists wholesale.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Scoring: ScoringConfig{
			TFIDFWeight:     0.55,
			SectionWeight:   0.25,
			RoleWeight:      0.20,
			JobTitleBoost:   1.2,
			ExperienceBoost: 0.9,
			TitleScanWords:  150,
			TitleScanLines:  10,
			TitlePatterns: []string{
				`(director|vp|vice president|head of|lead|manager|senior|principal)\s+.*?(product|engineering|growth)`,
				`(product|engineering|growth)\s+.*?(director|vp|vice president|head of|lead|manager)`,
			},
			FrequencyFallbackDivisor: 10.0,
		},
		Roles: RolesConfig{
			Core:      1.2,
			Important: 0.6,
			Culture:   0.3,
		},
		Buzzwords: BuzzwordConfig{
			Penalty:          0.7,
			ExecutivePenalty: 0.8,
			ExecutiveBoost:   1.15,
			Buzzwords: []string{
				"vision", "strategy", "strategic", "roadmap", "delivery", "execution",
				"discovery", "innovation", "data-driven", "metrics", "kpis", "scalable",
				"alignment", "ownership", "stakeholders", "go-to-market", "collaboration",
				"agile", "sprint", "backlog", "prioritization", "user-centric",
				"customer-centric", "outcomes", "best practices", "cross-functional",
				"communication", "leadership", "fast-paced", "results-oriented",
				"growth hacking", "roi", "north star", "market research", "ecosystem",
			},
			ExecutiveBuzzwords: []string{
				"thought leadership", "best-in-class", "world-class", "cutting-edge", "bleeding-edge",
				"paradigm shift", "game-changer", "disruptive", "revolutionary", "transformational",
				"synergies", "low-hanging fruit", "move the needle", "boil the ocean", "circle back",
				"touch base", "drill down", "deep dive", "take offline", "leverage synergies",
				"actionable insights", "holistic approach", "end-to-end solution", "turn-key",
				"enterprise-grade", "mission-critical", "scalable solution", "robust framework",
				"seamless integration", "optimize efficiency", "maximize roi", "drive value",
			},
			ExecutiveVocabulary: []string{
				"p&l", "p&l responsibility", "revenue ownership", "business outcomes",
				"portfolio management", "cross-functional leadership", "organizational design",
				"board reporting", "investor relations", "market expansion", "acquisition integration",
				"team scaling", "hiring plans", "culture building", "succession planning",
				"executive presence", "strategic partnerships", "competitive positioning",
				"go-to-market execution", "budget ownership", "headcount planning",
				"performance management", "talent development", "executive coaching",
				"vp of product", "director of product", "head of product", "chief product officer",
				"product portfolio", "platform strategy", "product vision", "product leadership",
				"executive team", "leadership team", "senior leadership", "c-suite",
			},
		},
		Sections: SectionConfig{
			Rules: []SectionRule{
				{Name: "title", Pattern: `^.*?(director|vp|vice president|head of|lead|manager).*$`, Boost: 1.0},
				{Name: "requirements", Pattern: `(what you.ll need|what we.re looking for|what you bring|requirements|qualifications|must have|experience|skills)`, Boost: 0.8},
				{Name: "responsibilities", Pattern: `(what you.ll do|what you.ll be doing|responsibilities|role|opportunity|day to day)`, Boost: 0.8},
				{Name: "company", Pattern: `(about|why join|benefits|culture|perks|our mission)`, Boost: 0.3},
			},
			DefaultSection: "company",
		},
		Knockouts: KnockoutConfig{
			MaxKnockouts:           5,
			ConfidenceThreshold:    0.6,
			HardPatternWeight:      0.6,
			MediumPatternWeight:    0.3,
			YearsHighRoleWeight:    0.4,
			DegreeHighRoleWeight:   0.4,
			RequiredLanguageWeight: 0.2,
			HighRoleThreshold:      1.0,
			HardPatterns: []string{
				`bachelor'?s?\s*degree`,
				`master'?s?\s*degree`,
				`\bmba\b`,
				`\bphd\b`,
				`\b(bs|ms|ba|ma)\s+(degree|in)`,
				`degree\s+in\s+\w+`,
				`bachelor'?s?(?:[\s/]|in|degree)`,
				`master'?s?(?:[\s/]|in|degree)`,
				`bachelor'?s?/master'?s?`,
				`(bachelor'?s?|master'?s?)\s+in\s+\w+`,
				`(extensive|significant|frequent).*travel`,
				`travel.*required`,
				`willing to travel`,
				`travel.*\d+%`,
				`up to \d+%.*travel`,
				`(director|vp|vice\s+president|chief|head)\s+(of\s+)?(product|marketing)`,
			},
			MediumPatterns: []string{
				`(required|preferred|must\s+have).*\b(degree|education|bachelor|master|mba)`,
				`\b(degree|bachelor|master|mba).*(required|preferred)`,
			},
			SoftSkillExclusions: []string{
				`leadership\s+style`,
				`communication\s+skills`,
				`strategic\s+thinking`,
				`problem\s+solving`,
				`team\s+player`,
				`passion`,
				`enthusiasm`,
				`mindset`,
				`empathy`,
				`collaborative`,
				`innovative`,
				`customer-obsessed`,
				`results-oriented`,
				`data-driven`,
				`fast-paced`,
			},
			YearsPatterns: []string{
				`\d+\+?\s*years?`,
				`\d+\s*[-–]\s*\d+\s*years?`,
				`minimum\s+\d+\s*years?`,
				`\d+\s*years?\s*minimum`,
				`(one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|twenty)\+?\s*years?`,
				`(one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|twenty)\s*[-–]\s*(one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|twenty)\s*years?`,
				`minimum\s+(one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|twenty)\s*years?`,
				`(one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|twenty)\s*years?\s*minimum`,
			},
			YearsSignalPattern:     `\d+\+?\s*years?`,
			DegreeSignalPattern:    `\b(degree|bachelor|master|mba|phd)\b`,
			GuardrailDegreePattern: `\b(degree|bachelor|master|mba|phd|computer\s+science)\b`,
			PreferredIndicators: []string{
				"preferred", "plus", "bonus", "nice to have", "advantage",
				"desirable", "beneficial", "would be great", "a plus but not required",
			},
			RequiredIndicators: []string{"required", "must have", "minimum"},
			ContextWindow:      30,
		},
		Clustering: ClusteringConfig{
			DistanceThreshold: 0.5,
			MedianMultiplier:  1.2,
			MinKeywords:       10,
			ExperiencePattern: `\d+\+?\s*years?\s+(in|of|experience|leading|managing)`,
			ScaleTerms:        []string{"scale", "scaling", "growth", "expansion"},
			ScaleContext:      "business growth scaling products",
		},
		Injection: InjectionConfig{
			SimilarityThreshold:     0.7,
			HighSimilarityThreshold: 0.8,
			MinWordLength:           3,
			WordMatchRatio:          0.7,
			MaxMatches:              3,
			MinSentenceLength:       10,
			DisplayLength:           60,
		},
		Extraction: ExtractionConfig{
			Patterns: []string{
				`(?i)(\d+)\+?\s*years?\s+(in|of|with|as|managing|leading|doing|performing|working|experience)\s+([^.]{10,100})`,
				`(?i)(\d+)\s*[-–]\s*(\d+)\s*years?\s+(in|of|with|as|managing|leading|doing|performing|working|experience)\s+([^.]{10,100})`,
				`(?i)(minimum|at least|minimum of)\s+(\d+)\+?\s*years?\s+(in|of|with|as|managing|leading|doing|performing|working|experience)\s+([^.]{10,100})`,
				`(?i)experience\s+(in|with|as|managing|leading|doing|performing|working)\s+([^,]{5,50})[,.]?\s*for\s+(\d+)\+?\s*years?`,
				`(?i)([^.]{5,100})\s+(?:with|including|having)\s+(?:at least\s+)?(\d+)\+?\s*years?\s+(in|of|with|as|managing|leading)`,
			},
			SeniorTerms: []string{
				"product management", "product-led growth", "product strategy",
				"cross-functional", "leadership", "managing teams", "leading teams",
				"product development", "product marketing", "growth teams",
			},
			RequirementTerms: []string{"years", "experience", "background", "managing", "leading", "working"},
			MinLength:        15,
			OverlapThreshold: 0.6,
			ContextBefore:    20,
			ContextAfter:     50,
		},
		Output: OutputConfig{
			MaxTopKeywords: 5,
			CompoundMultipliers: []CompoundMultiplier{
				{Term: "saas", Multiplier: 1.5},
				{Term: "product management", Multiplier: 1.3},
				{Term: "b2b", Multiplier: 1.2},
				{Term: "api", Multiplier: 1.2},
				{Term: "platform", Multiplier: 1.2},
				{Term: "growth", Multiplier: 1.1},
				{Term: "leadership", Multiplier: 1.1},
				{Term: "strategy", Multiplier: 1.1},
				{Term: "data", Multiplier: 1.1},
				{Term: "analytics", Multiplier: 1.1},
			},
			TwoWordMultiplier:   1.3,
			ThreeWordMultiplier: 1.5,
		},
		Embedding: EmbeddingConfig{
			Model:          "text-embedding-004",
			TimeoutSeconds: 30,
		},
	}
}
