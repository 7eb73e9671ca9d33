// Package injection locates resume placements for ranked keywords.
package injection

import (
	"context"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/keyword-ranker/internal/config"
	"github.com/jonathan/keyword-ranker/internal/embedding"
	"github.com/jonathan/keyword-ranker/internal/types"
)

// Match icons and action labels attached to injection points
const (
	IconPresent = "✅"
	IconPhrase  = "🟠"
	IconBullet  = "💡"

	ActionAlreadyContains = "already contains keyword"
	ActionShortPhrase     = "may need short phrase"
	ActionNewBullet       = "suggest adding new bullet"
)

// Locator ranks resume content units against keywords and annotates each
// keyword with its best placement spots.
type Locator struct {
	cfg      *config.Compiled
	embedder embedding.Embedder
	logger   *zap.Logger
}

// NewLocator returns a Locator. A nil logger disables logging.
func NewLocator(cfg *config.Compiled, embedder embedding.Embedder, logger *zap.Logger) *Locator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Locator{cfg: cfg, embedder: embedder, logger: logger}
}

// FindInjectionPoints annotates every keyword with its top content matches.
// A resume without matchable content or an embedding failure returns the
// keywords unannotated.
func (l *Locator) FindInjectionPoints(ctx context.Context, resume *types.Resume, keywords []types.Keyword) []types.Keyword {
	content := l.ExtractContent(resume)
	if len(content) == 0 {
		l.logger.Warn("no matchable content found in resume")
		return keywords
	}

	texts := make([]string, len(content))
	for i, unit := range content {
		texts[i] = unit.Text
	}
	contentVecs, err := l.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		l.logger.Warn("embedding failed, skipping injection analysis", zap.Error(err))
		return keywords
	}

	kwTexts := make([]string, len(keywords))
	for i, kw := range keywords {
		kwTexts[i] = kw.Text
	}
	kwVecs, err := l.embedder.EmbedBatch(ctx, kwTexts)
	if err != nil {
		l.logger.Warn("embedding failed, skipping injection analysis", zap.Error(err))
		return keywords
	}

	for i := range keywords {
		if len(kwVecs[i]) == 0 {
			l.logger.Warn("no embedding for keyword, leaving it unannotated",
				zap.String("keyword", keywords[i].Text))
			continue
		}
		keywords[i].InjectionPoints = l.topMatches(content, contentVecs, kwVecs[i], keywords[i].Text)
	}

	l.logger.Info("injection points located",
		zap.Int("keywords", len(keywords)),
		zap.Int("content_units", len(content)))

	return keywords
}

// topMatches returns the best-matching content units for one keyword,
// similarity descending.
func (l *Locator) topMatches(content []ContentUnit, contentVecs [][]float32, kwVec []float32, keyword string) []types.InjectionPoint {
	sims := make([]float64, len(content))
	for i, vec := range contentVecs {
		sims[i] = embedding.Cosine(kwVec, vec)
	}

	idx := make([]int, len(content))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return sims[idx[a]] > sims[idx[b]]
	})

	limit := l.cfg.Injection.MaxMatches
	if len(idx) < limit {
		limit = len(idx)
	}

	points := make([]types.InjectionPoint, 0, limit)
	for _, i := range idx[:limit] {
		points = append(points, l.injectionPoint(content[i], sims[i], keyword))
	}
	return points
}

func (l *Locator) injectionPoint(unit ContentUnit, similarity float64, keyword string) types.InjectionPoint {
	icon, action := l.classifyMatch(unit.Text, keyword, similarity)

	display := unit.Text
	if len(display) > l.cfg.Injection.DisplayLength {
		display = display[:l.cfg.Injection.DisplayLength-3] + "..."
	}

	return types.InjectionPoint{
		Text:       display,
		FullText:   unit.Text,
		Similarity: math.Round(similarity*1000) / 1000,
		Location:   unit.Location,
		Context:    unit.Context,
		Section:    unit.Section,
		Icon:       icon,
		Action:     action,
	}
}

// classifyMatch grades how well a content unit already covers a keyword.
// Textual containment wins over the similarity ladder.
func (l *Locator) classifyMatch(content, keyword string, similarity float64) (string, string) {
	contentLower := strings.ToLower(content)
	keywordLower := strings.ToLower(keyword)

	if strings.Contains(contentLower, keywordLower) {
		return IconPresent, ActionAlreadyContains
	}

	var words []string
	for _, word := range strings.Fields(keywordLower) {
		if len(word) >= l.cfg.Injection.MinWordLength {
			words = append(words, word)
		}
	}
	if len(words) > 0 {
		matched := 0
		for _, word := range words {
			if strings.Contains(contentLower, word) {
				matched++
			}
		}
		if float64(matched)/float64(len(words)) >= l.cfg.Injection.WordMatchRatio {
			return IconPresent, ActionAlreadyContains
		}
	}

	switch {
	case similarity >= l.cfg.Injection.HighSimilarityThreshold:
		return IconPresent, ActionAlreadyContains
	case similarity >= l.cfg.Injection.SimilarityThreshold:
		return IconPhrase, ActionShortPhrase
	default:
		return IconBullet, ActionNewBullet
	}
}
