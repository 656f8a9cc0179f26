package embedding

import (
	"context"
	"log/slog"
	"time"
)

// VectorCache stores vectors for frequently embedded text. The broker's
// Redis client implements it.
type VectorCache interface {
	CacheEmbedding(ctx context.Context, text string, embedding []float32, ttl time.Duration) error
	CachedEmbedding(ctx context.Context, text string) ([]float32, error)
}

// CachedEmbedder wraps an Embedder with a read-through vector cache. Cache
// failures are logged and ignored: the provider call is the fallback path.
type CachedEmbedder struct {
	inner  Embedder
	cache  VectorCache
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedEmbedder wraps inner with cache.
func NewCachedEmbedder(inner Embedder, cache VectorCache, ttl time.Duration, logger *slog.Logger) *CachedEmbedder {
	if logger == nil {
		logger = slog.Default()
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CachedEmbedder{inner: inner, cache: cache, ttl: ttl, logger: logger}
}

func (c *CachedEmbedder) Dimensions() int { return c.inner.Dimensions() }

// EmbedBatch serves hits from the cache and embeds only the misses, in one
// provider batch, preserving input order.
func (c *CachedEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	vectors := make([][]float32, len(texts))
	var missTexts []string
	var missIdx []int

	for i, text := range texts {
		vec, err := c.cache.CachedEmbedding(ctx, text)
		if err != nil {
			c.logger.Warn("embedding cache read failed", "error", err)
		}
		if vec != nil {
			vectors[i] = vec
			continue
		}
		missTexts = append(missTexts, text)
		missIdx = append(missIdx, i)
	}

	if len(missTexts) == 0 {
		return vectors, nil
	}

	fresh, err := c.inner.EmbedBatch(ctx, missTexts)
	if err != nil {
		return nil, err
	}
	for j, vec := range fresh {
		vectors[missIdx[j]] = vec
		if err := c.cache.CacheEmbedding(ctx, missTexts[j], vec, c.ttl); err != nil {
			c.logger.Warn("embedding cache write failed", "error", err)
		}
	}
	return vectors, nil
}
