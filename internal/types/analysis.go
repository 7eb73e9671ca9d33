// Package types provides type definitions for structured data used throughout the keyword-ranker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Analysis is the primary output artifact of a ranking run
type Analysis struct {
	KnockoutRequirements []Keyword        `json:"knockout_requirements"`
	SkillsRanked         []Keyword        `json:"skills_ranked"`
	Metadata             AnalysisMetadata `json:"metadata"`
}

// AnalysisMetadata describes the run that produced an Analysis
type AnalysisMetadata struct {
	AnalysisID             string  `json:"analysis_id"`
	GeneratedAt            string  `json:"generated_at"` // RFC3339
	TotalKeywordsProcessed int     `json:"total_keywords_processed"`
	KnockoutCount          int     `json:"knockout_count"`
	SkillsCount            int     `json:"skills_count"`
	EmbeddingModel         string  `json:"embedding_model,omitempty"`
	TFIDFWeight            float64 `json:"tfidf_weight"`
	SectionWeight          float64 `json:"section_weight"`
	RoleWeight             float64 `json:"role_weight"`
}
