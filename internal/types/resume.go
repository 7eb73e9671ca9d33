// Package types provides type definitions for structured data used throughout the keyword-ranker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Resume represents a JSON-Resume-shaped document used for injection analysis.
// Only the sections the injection locator reads are modeled; unknown fields
// in the source document are ignored.
type Resume struct {
	Basics    Basics      `json:"basics"`
	Work      []Work      `json:"work"`
	Education []Education `json:"education"`
	Skills    []SkillItem `json:"skills"`
}

// Basics holds the resume header section
type Basics struct {
	Name    string `json:"name,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// Work represents a single work experience entry
type Work struct {
	Company    string   `json:"company,omitempty"`
	Position   string   `json:"position,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// Education represents a single education entry
type Education struct {
	Institution string `json:"institution,omitempty"`
	StudyType   string `json:"studyType,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

// SkillItem represents a named skill with an optional prose summary
type SkillItem struct {
	Name    string `json:"name,omitempty"`
	Summary string `json:"summary,omitempty"`
}
