// Package embedding produces vector embeddings for keyword texts.
package embedding

import "context"

// Embedder is an abstraction over embedding providers
type Embedder interface {
	// EmbedBatch embeds every text in one request, preserving input order
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	// Close releases any resources held by the embedder
	Close() error
}
