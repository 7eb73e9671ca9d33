package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/keyword-ranker/internal/types"
)

func writeKeywords(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keywords.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadKeywords_BareArray(t *testing.T) {
	path := writeKeywords(t, `[
		{"text": "product management", "role": "core"},
		{"text": "saas", "role": "important"},
		{"text": "collaboration", "role": "culture"}
	]`)

	candidates, err := LoadKeywords(path)
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	assert.Equal(t, "product management", candidates[0].Text)
	assert.Equal(t, types.RoleCore, candidates[0].Role)
	assert.Equal(t, types.RoleImportant, candidates[1].Role)
	assert.Equal(t, types.RoleCulture, candidates[2].Role)
}

func TestLoadKeywords_WrappedObject(t *testing.T) {
	path := writeKeywords(t, `{"keywords": [{"text": "b2b", "role": "core"}]}`)

	candidates, err := LoadKeywords(path)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "b2b", candidates[0].Text)
}

func TestLoadKeywords_KwAliasAccepted(t *testing.T) {
	path := writeKeywords(t, `[{"kw": "platform strategy", "role": "core"}]`)

	candidates, err := LoadKeywords(path)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "platform strategy", candidates[0].Text)
}

func TestLoadKeywords_TextWinsOverKw(t *testing.T) {
	path := writeKeywords(t, `[{"text": "primary", "kw": "ignored", "role": "core"}]`)

	candidates, err := LoadKeywords(path)
	require.NoError(t, err)
	assert.Equal(t, "primary", candidates[0].Text)
}

func TestLoadKeywords_RoleAliasesNormalized(t *testing.T) {
	path := writeKeywords(t, `[
		{"text": "fintech", "role": "industry_experience"},
		{"text": "roadmapping", "role": "functional_skills"}
	]`)

	candidates, err := LoadKeywords(path)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, types.RoleImportant, candidates[0].Role)
	assert.Equal(t, types.RoleCore, candidates[1].Role)
}

func TestLoadKeywords_RoleCaseInsensitive(t *testing.T) {
	path := writeKeywords(t, `[{"text": "saas", "role": "Core"}]`)

	candidates, err := LoadKeywords(path)
	require.NoError(t, err)
	assert.Equal(t, types.RoleCore, candidates[0].Role)
}

func TestLoadKeywords_InvalidRoleRejected(t *testing.T) {
	path := writeKeywords(t, `[{"text": "saas", "role": "critical"}]`)

	_, err := LoadKeywords(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 0")
}

func TestLoadKeywords_MissingTextRejected(t *testing.T) {
	path := writeKeywords(t, `[{"role": "core"}]`)

	_, err := LoadKeywords(path)
	assert.Error(t, err)
}

func TestLoadKeywords_EmptyListRejected(t *testing.T) {
	path := writeKeywords(t, `[]`)

	_, err := LoadKeywords(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contains no keywords")
}

func TestLoadKeywords_WrongShapeRejected(t *testing.T) {
	path := writeKeywords(t, `{"items": []}`)

	_, err := LoadKeywords(path)
	assert.Error(t, err)
}

func TestLoadKeywords_MalformedJSON(t *testing.T) {
	path := writeKeywords(t, `{ not json`)

	_, err := LoadKeywords(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse keywords JSON")
}

func TestLoadKeywords_FileNotFound(t *testing.T) {
	_, err := LoadKeywords("/nonexistent/keywords.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read keywords file")
}

func TestLoadKeywords_SourcePreserved(t *testing.T) {
	path := writeKeywords(t, `[{"text": "8+ years leading teams", "role": "core", "source": "experience_extractor"}]`)

	candidates, err := LoadKeywords(path)
	require.NoError(t, err)
	assert.Equal(t, types.SourceExperienceExtractor, candidates[0].Source)
}
