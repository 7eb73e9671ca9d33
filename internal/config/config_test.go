package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_PassesValidation(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestDefault_Weights(t *testing.T) {
	cfg := Default()

	assert.InDelta(t, 0.55, cfg.Scoring.TFIDFWeight, 0.001)
	assert.InDelta(t, 0.25, cfg.Scoring.SectionWeight, 0.001)
	assert.InDelta(t, 0.20, cfg.Scoring.RoleWeight, 0.001)

	assert.InDelta(t, 1.2, cfg.Roles.Weight("core"), 0.001)
	assert.InDelta(t, 0.6, cfg.Roles.Weight("important"), 0.001)
	assert.InDelta(t, 0.3, cfg.Roles.Weight("culture"), 0.001)
}

func TestRoles_UnknownRoleGetsCultureWeight(t *testing.T) {
	cfg := Default()
	assert.InDelta(t, cfg.Roles.Culture, cfg.Roles.Weight("mystery"), 0.001)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	content := `{
		"clustering": {"distance_threshold": 0.35},
		"output": {"max_top_keywords": 8}
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Overridden values
	assert.InDelta(t, 0.35, cfg.Clustering.DistanceThreshold, 0.001)
	assert.Equal(t, 8, cfg.Output.MaxTopKeywords)

	// Untouched values keep defaults
	assert.InDelta(t, 0.55, cfg.Scoring.TFIDFWeight, 0.001)
	assert.Equal(t, 5, cfg.Knockouts.MaxKnockouts)
	assert.NotEmpty(t, cfg.Buzzwords.Buzzwords)
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := Load(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_WeightsMustSumToOne(t *testing.T) {
	cfg := Default()
	cfg.Scoring.TFIDFWeight = 0.9

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must sum to 1.0")
}

func TestValidate_RejectsBadRegex(t *testing.T) {
	cfg := Default()
	cfg.Knockouts.HardPatterns = append(cfg.Knockouts.HardPatterns, `(unclosed`)

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid regex")
}

func TestValidate_RejectsUnknownDefaultSection(t *testing.T) {
	cfg := Default()
	cfg.Sections.DefaultSection = "preamble"

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "default_section")
}

func TestValidate_RejectsInvertedInjectionThresholds(t *testing.T) {
	cfg := Default()
	cfg.Injection.SimilarityThreshold = 0.9
	cfg.Injection.HighSimilarityThreshold = 0.8

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "similarity_threshold")
}

func TestCompile_BuildsAllPatternSets(t *testing.T) {
	cp, err := Default().Compile()
	require.NoError(t, err)

	assert.Len(t, cp.TitleRes, 2)
	assert.Len(t, cp.SectionRules, 4)
	assert.Equal(t, "title", cp.SectionRules[0].Name)
	assert.Len(t, cp.HardRes, len(cp.Knockouts.HardPatterns))
	assert.Len(t, cp.YearsRes, len(cp.Knockouts.YearsPatterns))
	assert.Len(t, cp.ExtractionRes, len(cp.Extraction.Patterns))
	assert.NotNil(t, cp.GuardrailRe)
	assert.NotNil(t, cp.ExperienceRe)
}

func TestCompile_LexiconLookups(t *testing.T) {
	cp, err := Default().Compile()
	require.NoError(t, err)

	assert.True(t, cp.IsBuzzword("leadership"))
	assert.False(t, cp.IsBuzzword("product strategy execution"))

	assert.True(t, cp.IsExecutiveBuzzword("move the needle"))
	assert.False(t, cp.IsExecutiveBuzzword("p&l"))

	assert.True(t, cp.IsExecutiveVocabulary("p&l"))
	assert.True(t, cp.IsExecutiveVocabulary("head of product"))
	assert.False(t, cp.IsExecutiveVocabulary("synergies"))
}

func TestSectionConfig_BoostFor(t *testing.T) {
	cfg := Default()

	assert.InDelta(t, 1.0, cfg.Sections.BoostFor("title"), 0.001)
	assert.InDelta(t, 0.8, cfg.Sections.BoostFor("requirements"), 0.001)
	assert.InDelta(t, 0.3, cfg.Sections.BoostFor("company"), 0.001)
	assert.InDelta(t, 0.0, cfg.Sections.BoostFor("nonexistent"), 0.001)
}
