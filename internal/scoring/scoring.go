// Package scoring computes composite relevance scores for keyword candidates.
package scoring

import (
	"context"
	"errors"
	"math"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/keyword-ranker/internal/config"
	"github.com/jonathan/keyword-ranker/internal/types"
)

// Ranker scores keyword candidates against a prepared job posting.
type Ranker struct {
	cfg    *config.Compiled
	logger *zap.Logger
}

// NewRanker builds a Ranker. A nil logger disables diagnostics.
func NewRanker(cfg *config.Compiled, logger *zap.Logger) *Ranker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ranker{cfg: cfg, logger: logger}
}

// ScoreAll scores every candidate against the document and returns keywords
// in candidate order. When dropBuzzwords is set, buzzword keywords are
// removed and their texts returned separately; otherwise they are kept with
// a score penalty and flagged.
func (r *Ranker) ScoreAll(ctx context.Context, doc *Document, candidates []types.Candidate, dropBuzzwords bool) ([]types.Keyword, []string, error) {
	texts := make([]string, len(candidates))
	for i, c := range candidates {
		texts[i] = c.Text
	}

	tfidf, err := TermScores(doc.tokens, texts)
	if err != nil {
		if !errors.Is(err, ErrEmptyDocument) && !errors.Is(err, ErrEmptyVocabulary) {
			return nil, nil, err
		}
		r.logger.Warn("vectorization failed, falling back to frequency counting", zap.Error(err))
		tfidf = FallbackScores(doc.Text, texts, r.cfg.Scoring.FrequencyFallbackDivisor)
	}

	keywords := make([]types.Keyword, len(candidates))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range candidates {
		g.Go(func() error {
			keywords[i] = r.scoreCandidate(doc, candidates[i], tfidf[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	result := make([]types.Keyword, 0, len(keywords))
	var dropped []string
	for _, kw := range keywords {
		if r.cfg.IsBuzzword(strings.ToLower(kw.Text)) {
			if dropBuzzwords {
				dropped = append(dropped, kw.Text)
				continue
			}
			kw.Score *= r.cfg.Buzzwords.Penalty
			kw.IsBuzzword = true
		}
		result = append(result, kw)
	}

	return result, dropped, nil
}

// scoreCandidate combines the weighted component scores with the
// enhancement multipliers for a single keyword.
func (r *Ranker) scoreCandidate(doc *Document, c types.Candidate, tfidf float64) types.Keyword {
	section := r.sectionBoost(doc, c.Text)
	role := r.cfg.Roles.Weight(c.Role)

	score := r.cfg.Scoring.TFIDFWeight*tfidf +
		r.cfg.Scoring.SectionWeight*section +
		r.cfg.Scoring.RoleWeight*role

	if titleMatch(doc.title, c.Text) {
		score *= r.cfg.Scoring.JobTitleBoost
	}
	score *= r.compoundBoost(c.Text)
	score *= r.executiveAdjustment(c.Text)

	// Component scores are stored at artifact precision. Downstream checks
	// (degree guardrail, trim threshold) operate on the rounded values.
	return types.Keyword{
		Text:     c.Text,
		TFIDF:    round3(tfidf),
		Section:  round3(section),
		Role:     round3(role),
		Score:    round3(score),
		Category: types.CategorySkill,
		Source:   c.Source,
	}
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
