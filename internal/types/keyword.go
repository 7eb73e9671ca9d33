// Package types provides type definitions for structured data used throughout the keyword-ranker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Role constants for keyword candidates
const (
	RoleCore      = "core"
	RoleImportant = "important"
	RoleCulture   = "culture"
)

// Category values for classified keywords
const (
	CategoryKnockout = "knockout"
	CategorySkill    = "skill"
)

// KnockoutType values. Empty means the keyword was never classified as a
// knockout; KnockoutNone marks one demoted back to a skill.
const (
	KnockoutRequired  = "required"
	KnockoutPreferred = "preferred"
	KnockoutNone      = "none"
)

// Detection method values recorded on classified knockouts
const (
	DetectionYearsBased   = "years_based"
	DetectionPatternBased = "pattern_based"
)

// SourceExperienceExtractor marks candidates mined from the posting itself
// rather than supplied in the input keyword file.
const SourceExperienceExtractor = "experience_extractor"

// Candidate represents a raw keyword candidate before scoring
type Candidate struct {
	Text   string `json:"text" validate:"required"`
	Role   string `json:"role" validate:"required,oneof=core important culture"`
	Source string `json:"source,omitempty"`
}

// Keyword represents a fully processed keyword: component scores, composite
// score, classification, and (after clustering) absorbed aliases.
type Keyword struct {
	Text       string  `json:"kw"`
	TFIDF      float64 `json:"tfidf"`
	Section    float64 `json:"section"`
	Role       float64 `json:"role"`
	Score      float64 `json:"score"`
	IsBuzzword bool    `json:"is_buzzword"`

	Category     string  `json:"category"`
	KnockoutType string  `json:"knockout_type,omitempty"`
	Confidence   float64 `json:"knockout_confidence"`
	Method       string  `json:"detection_method,omitempty"`
	Context      string  `json:"context,omitempty"`
	YearsMatch   string  `json:"years_match,omitempty"`

	Source          string           `json:"source,omitempty"`
	Aliases         []string         `json:"aliases,omitempty"`
	InjectionPoints []InjectionPoint `json:"injection_points,omitempty"`
}

// IsKnockout reports whether the keyword is classified as a knockout requirement.
func (k *Keyword) IsKnockout() bool {
	return k.Category == CategoryKnockout
}

// InjectionPoint represents a candidate resume location for a keyword,
// found by semantic similarity against resume content units.
type InjectionPoint struct {
	Text       string  `json:"text"`      // Display text, truncated to 60 chars
	FullText   string  `json:"full_text"` // Untruncated content unit text
	Similarity float64 `json:"similarity"`
	Location   string  `json:"location"` // e.g. "work[2].highlights[0]", "basics.summary (sentence 3)"
	Context    string  `json:"context"`  // e.g. "Acme - Director of Product"
	Section    string  `json:"section"`  // Content unit section id
	Icon       string  `json:"icon"`
	Action     string  `json:"action"`
}
