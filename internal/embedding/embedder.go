// Package embedding generates fixed-dimension vectors for chunks and queries.
package embedding

import "context"

// Embedder turns texts into fixed-dimension vectors. Implementations batch
// provider calls; an empty input returns an empty output without a call.
type Embedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Dimensions() int
}
