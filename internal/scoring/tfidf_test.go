package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_LowercasesAndFilters(t *testing.T) {
	tokens := Tokenize("The Product Manager owns the SaaS roadmap")

	assert.Equal(t, []string{"product", "manager", "owns", "saas", "roadmap"}, tokens)
}

func TestTokenize_DropsShortTokens(t *testing.T) {
	tokens := Tokenize("5 B2B a x API")

	// Single-character tokens never survive; "b2b" and "api" do
	assert.Equal(t, []string{"b2b", "api"}, tokens)
}

func TestTokenize_EmptyInput(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("a I of the"))
}

func TestTermScores_SingleKeywordNormalizesToOne(t *testing.T) {
	docTokens := Tokenize("We need kubernetes and more kubernetes")

	scores, err := TermScores(docTokens, []string{"kubernetes"})
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.InDelta(t, 1.0, scores[0], 0.001)
}

func TestTermScores_RelativeMagnitudes(t *testing.T) {
	doc := "saas saas saas growth"
	scores, err := TermScores(Tokenize(doc), []string{"saas", "growth", "platform"})
	require.NoError(t, err)

	// counts are [3,1,0], L2 norm sqrt(10)
	assert.InDelta(t, 0.9487, scores[0], 0.001)
	assert.InDelta(t, 0.3162, scores[1], 0.001)
	assert.InDelta(t, 0.0, scores[2], 0.001)
}

func TestTermScores_StopWordsBridgePhrases(t *testing.T) {
	doc := "She was Head of Product at a startup"
	scores, err := TermScores(Tokenize(doc), []string{"head of product"})
	require.NoError(t, err)

	// "of" drops from both keyword and document, leaving the bigram
	assert.InDelta(t, 1.0, scores[0], 0.001)
}

func TestTermScores_TooLongPhraseScoresZero(t *testing.T) {
	doc := "enterprise platform growth strategy execution delivery"
	scores, err := TermScores(Tokenize(doc), []string{
		"enterprise platform growth strategy",
		"growth",
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.0, scores[0], 0.001)
	assert.Greater(t, scores[1], 0.0)
}

func TestTermScores_EmptyDocument(t *testing.T) {
	_, err := TermScores(nil, []string{"saas"})
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestTermScores_EmptyVocabulary(t *testing.T) {
	docTokens := Tokenize("plenty of product words here")

	// Every keyword reduces to zero usable tokens
	_, err := TermScores(docTokens, []string{"of the", "a"})
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}

func TestTermScores_NoMatchesStaysZeroVector(t *testing.T) {
	scores, err := TermScores(Tokenize("unrelated posting text"), []string{"saas", "b2b"})
	require.NoError(t, err)

	assert.InDelta(t, 0.0, scores[0], 0.001)
	assert.InDelta(t, 0.0, scores[1], 0.001)
}

func TestCountNGram_Bigram(t *testing.T) {
	tokens := []string{"product", "management", "experience", "product", "management"}

	assert.Equal(t, 2, countNGram(tokens, []string{"product", "management"}))
	assert.Equal(t, 1, countNGram(tokens, []string{"management", "experience"}))
	assert.Equal(t, 0, countNGram(tokens, []string{"experience", "management"}))
}

func TestFallbackScores_CountsAndCaps(t *testing.T) {
	doc := "saas saas saas saas saas saas saas saas saas saas saas saas"

	scores := FallbackScores(doc, []string{"saas", "growth"}, 10.0)

	assert.InDelta(t, 1.0, scores[0], 0.001) // 12 occurrences capped
	assert.InDelta(t, 0.0, scores[1], 0.001)
}

func TestFallbackScores_CaseInsensitive(t *testing.T) {
	scores := FallbackScores("SaaS products need saas thinking", []string{"saas"}, 10.0)

	assert.InDelta(t, 0.2, scores[0], 0.001)
}
