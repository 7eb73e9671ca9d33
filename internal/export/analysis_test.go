package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/keyword-ranker/internal/config"
	"github.com/jonathan/keyword-ranker/internal/types"
)

func testCompiled(t *testing.T) *config.Compiled {
	t.Helper()
	compiled, err := config.Default().Compile()
	require.NoError(t, err)
	return compiled
}

func TestNewAnalysis_PopulatesMetadata(t *testing.T) {
	cfg := testCompiled(t)
	knockouts := []types.Keyword{
		{Text: "7+ years of experience", Score: 2.1, Category: types.CategoryKnockout},
		{Text: "bachelor's degree", Score: 1.4, Category: types.CategoryKnockout},
	}
	skills := []types.Keyword{
		{Text: "product strategy", Score: 0.91, Category: types.CategorySkill},
	}

	analysis := NewAnalysis(knockouts, skills, 12, cfg)

	_, err := uuid.Parse(analysis.Metadata.AnalysisID)
	assert.NoError(t, err)
	_, err = time.Parse(time.RFC3339, analysis.Metadata.GeneratedAt)
	assert.NoError(t, err)
	assert.Equal(t, 12, analysis.Metadata.TotalKeywordsProcessed)
	assert.Equal(t, 2, analysis.Metadata.KnockoutCount)
	assert.Equal(t, 1, analysis.Metadata.SkillsCount)
	assert.Equal(t, "text-embedding-004", analysis.Metadata.EmbeddingModel)
	assert.InDelta(t, 0.55, analysis.Metadata.TFIDFWeight, 0.001)
	assert.InDelta(t, 0.25, analysis.Metadata.SectionWeight, 0.001)
	assert.InDelta(t, 0.20, analysis.Metadata.RoleWeight, 0.001)
}

func TestNewAnalysis_NilSlicesMarshalAsEmptyArrays(t *testing.T) {
	analysis := NewAnalysis(nil, nil, 0, testCompiled(t))

	data, err := json.Marshal(analysis)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"knockout_requirements":[]`)
	assert.Contains(t, string(data), `"skills_ranked":[]`)
}

func TestWriteAnalysis_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	analysis := NewAnalysis(
		[]types.Keyword{{
			Text:         "mba",
			Score:        1.2,
			Category:     types.CategoryKnockout,
			KnockoutType: types.KnockoutPreferred,
			Confidence:   0.6,
			Method:       types.DetectionPatternBased,
		}},
		[]types.Keyword{{Text: "sql", Score: 0.8, Category: types.CategorySkill}},
		7,
		testCompiled(t),
	)

	path, err := WriteAnalysis(analysis, dir, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, AnalysisFileName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got types.Analysis
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got.KnockoutRequirements, 1)
	assert.Equal(t, "mba", got.KnockoutRequirements[0].Text)
	assert.Equal(t, types.KnockoutPreferred, got.KnockoutRequirements[0].KnockoutType)
	require.Len(t, got.SkillsRanked, 1)
	assert.Equal(t, "sql", got.SkillsRanked[0].Text)
	assert.Equal(t, 7, got.Metadata.TotalKeywordsProcessed)
}

func TestResolveOutputDir_DefaultsToWorkingSibling(t *testing.T) {
	base := t.TempDir()
	keywordsPath := filepath.Join(base, "inputs", "keywords.json")

	dir, err := ResolveOutputDir(keywordsPath, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "working"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestResolveOutputDir_OverrideWins(t *testing.T) {
	override := filepath.Join(t.TempDir(), "custom", "out")

	dir, err := ResolveOutputDir("ignored/keywords.json", override)
	require.NoError(t, err)
	assert.Equal(t, override, dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
