// Package clustering groups semantically similar keywords under canonical representatives.
package clustering

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/keyword-ranker/internal/config"
	"github.com/jonathan/keyword-ranker/internal/embedding"
	"github.com/jonathan/keyword-ranker/internal/types"
)

// Clusterer folds semantically similar keywords into canonical entries
// carrying the rest as aliases.
type Clusterer struct {
	cfg      *config.Compiled
	embedder embedding.Embedder
	logger   *zap.Logger
}

// NewClusterer returns a Clusterer. A nil logger disables logging.
func NewClusterer(cfg *config.Compiled, embedder embedding.Embedder, logger *zap.Logger) *Clusterer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Clusterer{cfg: cfg, embedder: embedder, logger: logger}
}

// ClusterAliases groups similar keywords by embedding distance and keeps
// one canonical entry per group. An embedding failure skips clustering
// entirely and returns the input unchanged.
func (c *Clusterer) ClusterAliases(ctx context.Context, keywords []types.Keyword, threshold float64) []types.Keyword {
	if len(keywords) <= 1 {
		return keywords
	}

	texts := make([]string, len(keywords))
	for i, kw := range keywords {
		texts[i] = c.enhanceText(kw.Text)
	}

	vectors, err := c.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		c.logger.Warn("embedding failed, skipping alias clustering", zap.Error(err))
		return keywords
	}

	labels := agglomerate(vectors, threshold)

	// Group members per label in first-appearance order
	order := make([]int, 0, len(keywords))
	groups := make(map[int][]types.Keyword, len(keywords))
	for i, label := range labels {
		if _, seen := groups[label]; !seen {
			order = append(order, label)
		}
		groups[label] = append(groups[label], keywords[i])
	}

	canonical := make([]types.Keyword, 0, len(order))
	for _, label := range order {
		canonical = append(canonical, c.fold(groups[label]))
	}

	c.logger.Info("clustered keywords",
		zap.Int("input", len(keywords)),
		zap.Int("canonical", len(canonical)))

	return canonical
}

// enhanceText appends business-growth context to phrases containing a scale
// term before embedding.
func (c *Clusterer) enhanceText(text string) string {
	lower := strings.ToLower(text)
	for _, term := range c.cfg.Clustering.ScaleTerms {
		if strings.Contains(lower, term) {
			return text + " " + c.cfg.Clustering.ScaleContext
		}
	}
	return text
}
