package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	name   string
	result Result
	err    error
	calls  int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Extract(_ context.Context, _ []byte) (Result, error) {
	f.calls++
	if f.err != nil {
		return Result{}, f.err
	}
	return f.result, nil
}

func newEngine(primary, fallback *fakeProvider, enabled bool) *Engine {
	var fb Provider
	if fallback != nil {
		fb = fallback
	}
	return NewEngine(primary, fb, EngineConfig{
		FallbackThreshold:      0.65,
		LowConfidenceThreshold: 0.40,
		FallbackEnabled:        enabled,
	}, nil)
}

func TestEngineFallbackTriggered(t *testing.T) {
	primary := &fakeProvider{name: "tesseract", result: Result{Text: "blurry", Confidence: 0.40}}
	fallback := &fakeProvider{name: "vision", result: Result{Text: "clear", Confidence: 0.90}}

	res, err := newEngine(primary, fallback, true).Process(context.Background(), []byte("img"), Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, fallback.calls, "fallback must run when primary confidence is below threshold")
	assert.Equal(t, "vision", res.Provider)
	assert.Equal(t, "clear", res.Text)
}

func TestEngineFallbackNotTriggered(t *testing.T) {
	primary := &fakeProvider{name: "tesseract", result: Result{Text: "sharp", Confidence: 0.80}}
	fallback := &fakeProvider{name: "vision", result: Result{Text: "unused", Confidence: 0.95}}

	res, err := newEngine(primary, fallback, true).Process(context.Background(), []byte("img"), Options{})
	require.NoError(t, err)

	assert.Zero(t, fallback.calls, "fallback must not run when primary confidence clears the threshold")
	assert.Equal(t, "tesseract", res.Provider)
}

func TestEngineHigherConfidenceWins(t *testing.T) {
	primary := &fakeProvider{name: "tesseract", result: Result{Text: "ok-ish", Confidence: 0.50}}
	fallback := &fakeProvider{name: "vision", result: Result{Text: "worse", Confidence: 0.30}}

	res, err := newEngine(primary, fallback, true).Process(context.Background(), []byte("img"), Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, fallback.calls)
	assert.Equal(t, "tesseract", res.Provider, "primary keeps winning when fallback scores lower")
}

func TestEngineProviderErrorScoresZero(t *testing.T) {
	primary := &fakeProvider{name: "tesseract", err: errors.New("binary not found")}
	fallback := &fakeProvider{name: "vision", result: Result{Text: "rescued", Confidence: 0.70}}

	res, err := newEngine(primary, fallback, true).Process(context.Background(), []byte("img"), Options{})
	require.NoError(t, err)

	assert.Equal(t, "vision", res.Provider)
	assert.Equal(t, "rescued", res.Text)
}

func TestEngineBothFailStillReturnsResult(t *testing.T) {
	primary := &fakeProvider{name: "tesseract", err: errors.New("boom")}
	fallback := &fakeProvider{name: "vision", err: errors.New("also boom")}

	res, err := newEngine(primary, fallback, true).Process(context.Background(), []byte("img"), Options{})
	require.NoError(t, err)

	assert.Empty(t, res.Text)
	assert.Equal(t, float32(0.0), res.Confidence)
	assert.True(t, res.NeedsAggressiveCleanup)
}

func TestEngineFallbackDisabled(t *testing.T) {
	primary := &fakeProvider{name: "tesseract", result: Result{Text: "blurry", Confidence: 0.20}}
	fallback := &fakeProvider{name: "vision", result: Result{Text: "unused", Confidence: 0.90}}

	res, err := newEngine(primary, fallback, false).Process(context.Background(), []byte("img"), Options{})
	require.NoError(t, err)

	assert.Zero(t, fallback.calls)
	assert.Equal(t, "tesseract", res.Provider)
	assert.True(t, res.NeedsAggressiveCleanup)
}

func TestEngineAlwaysFallback(t *testing.T) {
	primary := &fakeProvider{name: "tesseract", result: Result{Text: "unused", Confidence: 0.99}}
	fallback := &fakeProvider{name: "vision", result: Result{Text: "premium", Confidence: 0.85}}

	res, err := newEngine(primary, fallback, true).Process(context.Background(), []byte("img"), Options{AlwaysFallback: true})
	require.NoError(t, err)

	assert.Zero(t, primary.calls, "premium path skips the primary provider")
	assert.Equal(t, "vision", res.Provider)
}

func TestEngineLowConfidenceFlag(t *testing.T) {
	for _, tc := range []struct {
		conf float32
		want bool
	}{
		{0.39, true},
		{0.40, false},
		{0.80, false},
	} {
		primary := &fakeProvider{name: "tesseract", result: Result{Text: "t", Confidence: tc.conf}}
		res, err := newEngine(primary, nil, false).Process(context.Background(), []byte("img"), Options{})
		require.NoError(t, err)
		assert.Equal(t, tc.want, res.NeedsAggressiveCleanup, "confidence %v", tc.conf)
	}
}
