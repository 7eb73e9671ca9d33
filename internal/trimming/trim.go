// Package trimming prunes low-scoring canonical keywords around the median.
package trimming

import (
	"sort"

	"go.uber.org/zap"

	"github.com/jonathan/keyword-ranker/internal/config"
	"github.com/jonathan/keyword-ranker/internal/types"
)

// Trimmer drops canonical skills scoring at or below a median-derived
// threshold.
type Trimmer struct {
	cfg    *config.Compiled
	logger *zap.Logger
}

// NewTrimmer returns a Trimmer. A nil logger disables logging.
func NewTrimmer(cfg *config.Compiled, logger *zap.Logger) *Trimmer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Trimmer{cfg: cfg, logger: logger}
}

// Trim keeps keywords scoring strictly above multiplier × median. Inputs at
// or under the floor pass through untouched. If the threshold would keep
// fewer than the floor, the top floor keywords by score survive instead.
// Returns the survivors and the threshold applied.
func (t *Trimmer) Trim(keywords []types.Keyword) ([]types.Keyword, float64) {
	floor := t.cfg.Clustering.MinKeywords
	if len(keywords) <= floor {
		return keywords, 0
	}

	scores := make([]float64, len(keywords))
	for i, kw := range keywords {
		scores[i] = kw.Score
	}
	threshold := t.cfg.Clustering.MedianMultiplier * median(scores)

	kept := make([]types.Keyword, 0, len(keywords))
	for _, kw := range keywords {
		if kw.Score > threshold {
			kept = append(kept, kw)
		}
	}

	if len(kept) < floor {
		top := make([]types.Keyword, len(keywords))
		copy(top, keywords)
		sort.SliceStable(top, func(i, j int) bool {
			return top[i].Score > top[j].Score
		})
		kept = top[:floor]
	}

	t.logger.Info("trimmed skills by median score",
		zap.Int("before", len(keywords)),
		zap.Int("after", len(kept)),
		zap.Float64("threshold", threshold))

	return kept, threshold
}

// median of the scores; the mean of the two middle values for even counts.
func median(scores []float64) float64 {
	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
