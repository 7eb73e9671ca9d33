package injection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/keyword-ranker/internal/config"
	"github.com/jonathan/keyword-ranker/internal/types"
)

func newTestLocator(t *testing.T, fake *fakeEmbedder) *Locator {
	t.Helper()
	compiled, err := config.Default().Compile()
	require.NoError(t, err)
	return NewLocator(compiled, fake, nil)
}

func TestSplitSentences_CapitalBoundary(t *testing.T) {
	l := newTestLocator(t, nil)

	sentences := l.splitSentences(
		"Led product teams across three regions. Shipped the platform to GA. someone lowercase continues")

	require.Len(t, sentences, 2)
	assert.Equal(t, "Led product teams across three regions", sentences[0])
	assert.Equal(t, "Shipped the platform to GA. someone lowercase continues", sentences[1])
}

func TestSplitSentences_DropsShortFragments(t *testing.T) {
	l := newTestLocator(t, nil)

	sentences := l.splitSentences("U.S. Army veteran with leadership experience. Led teams.")

	// "U.S" and the ten-character "Led teams." both fall under the minimum
	assert.Equal(t, []string{"Army veteran with leadership experience"}, sentences)
}

func TestSplitSentences_Blank(t *testing.T) {
	l := newTestLocator(t, nil)

	assert.Nil(t, l.splitSentences(""))
	assert.Nil(t, l.splitSentences("   "))
}

func TestSplitSentences_NoBoundary(t *testing.T) {
	l := newTestLocator(t, nil)

	sentences := l.splitSentences("One long sentence without any boundary")

	assert.Equal(t, []string{"One long sentence without any boundary"}, sentences)
}

func TestExtractContent_FullResume(t *testing.T) {
	l := newTestLocator(t, nil)

	resume := &types.Resume{
		Basics: types.Basics{
			Summary: "Veteran product executive driving growth. Scaled three platform teams worldwide.",
		},
		Work: []types.Work{{
			Company:  "Acme",
			Position: "Director of Product",
			Summary:  "Owned the roadmap for enterprise billing. Grew revenue by forty percent.",
			Highlights: []string{
				"Launched self-serve onboarding used by 2k teams",
				"Cut churn by 12% in two quarters",
			},
		}},
		Education: []types.Education{{
			Institution: "State University",
			StudyType:   "MBA",
			Summary:     "Graduate coursework in statistics and operations research",
		}},
		Skills: []types.SkillItem{{
			Name:    "Analytics",
			Summary: "Deep experience with SQL and dashboarding tools",
		}},
	}

	content := l.ExtractContent(resume)
	require.Len(t, content, 8)

	assert.Equal(t, "basics.summary (sentence 1)", content[0].Location)
	assert.Equal(t, "Executive Summary", content[0].Context)
	assert.Equal(t, "basics_summary", content[0].Section)
	assert.Equal(t, "Veteran product executive driving growth", content[0].Text)
	assert.Equal(t, "basics.summary (sentence 2)", content[1].Location)

	assert.Equal(t, "work[0].summary (sentence 1)", content[2].Location)
	assert.Equal(t, "Acme - Director of Product", content[2].Context)
	assert.Equal(t, "work_summary", content[2].Section)
	assert.Equal(t, "work[0].summary (sentence 2)", content[3].Location)

	assert.Equal(t, "work[0].highlights[0]", content[4].Location)
	assert.Equal(t, "highlights", content[4].Section)
	assert.Equal(t, "work[0].highlights[1]", content[5].Location)

	assert.Equal(t, "education[0].summary", content[6].Location)
	assert.Equal(t, "State University - MBA", content[6].Context)
	assert.Equal(t, "education", content[6].Section)

	assert.Equal(t, "skills[0].summary", content[7].Location)
	assert.Equal(t, "Analytics", content[7].Context)
	assert.Equal(t, "skills", content[7].Section)
}

func TestExtractContent_MissingNamesFallBack(t *testing.T) {
	l := newTestLocator(t, nil)

	resume := &types.Resume{
		Work: []types.Work{{
			Highlights: []string{"Shipped the first mobile app"},
		}},
		Education: []types.Education{{
			Summary: "Focus on distributed systems",
		}},
		Skills: []types.SkillItem{{
			Summary: "Queue tuning and capacity planning",
		}},
	}

	content := l.ExtractContent(resume)
	require.Len(t, content, 3)

	assert.Equal(t, "Company 1 - Position", content[0].Context)
	assert.Equal(t, "Institution 1 - Degree", content[1].Context)
	assert.Equal(t, "Skill 1", content[2].Context)
}

func TestExtractContent_SkipsBlankEntries(t *testing.T) {
	l := newTestLocator(t, nil)

	resume := &types.Resume{
		Work: []types.Work{{
			Company:    "Acme",
			Highlights: []string{"", "   ", "Real highlight about platforms"},
		}},
	}

	content := l.ExtractContent(resume)
	require.Len(t, content, 1)
	assert.Equal(t, "work[0].highlights[2]", content[0].Location)
}

func TestExtractContent_EmptyResume(t *testing.T) {
	l := newTestLocator(t, nil)

	assert.Empty(t, l.ExtractContent(&types.Resume{}))
}
