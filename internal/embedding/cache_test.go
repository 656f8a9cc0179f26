package embedding

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notesos/ingest/internal/broker"
)

type countingEmbedder struct {
	calls int
	texts int
}

func (c *countingEmbedder) Dimensions() int { return 3 }

func (c *countingEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	c.calls++
	c.texts += len(texts)
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = []float32{float32(len(t)), 0, 1}
	}
	return out, nil
}

func newCacheBackend(t *testing.T) *broker.RedisBroker {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return broker.NewRedisBrokerFromClient(client, 0, nil)
}

func TestCachedEmbedderEmptyInput(t *testing.T) {
	inner := &countingEmbedder{}
	c := NewCachedEmbedder(inner, newCacheBackend(t), time.Hour, nil)

	got, err := c.EmbedBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Zero(t, inner.calls, "empty input must not call the provider")
}

func TestCachedEmbedderServesHits(t *testing.T) {
	inner := &countingEmbedder{}
	c := NewCachedEmbedder(inner, newCacheBackend(t), time.Hour, nil)
	ctx := context.Background()

	first, err := c.EmbedBatch(ctx, []string{"alpha", "beta"})
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, 1, inner.calls)

	second, err := c.EmbedBatch(ctx, []string{"alpha", "beta"})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls, "repeat batch must be served from cache")
}

func TestCachedEmbedderPartialMiss(t *testing.T) {
	inner := &countingEmbedder{}
	c := NewCachedEmbedder(inner, newCacheBackend(t), time.Hour, nil)
	ctx := context.Background()

	_, err := c.EmbedBatch(ctx, []string{"alpha"})
	require.NoError(t, err)

	got, err := c.EmbedBatch(ctx, []string{"alpha", "gamma"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, 2, inner.calls)
	assert.Equal(t, 2, inner.texts, "only the miss goes to the provider")
	assert.Equal(t, []float32{5, 0, 1}, got[0])
	assert.Equal(t, []float32{5, 0, 1}, got[1])
}
