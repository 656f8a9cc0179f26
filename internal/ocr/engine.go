package ocr

import (
	"context"
	"log/slog"
)

// EngineConfig holds the hybrid selection thresholds.
type EngineConfig struct {
	FallbackThreshold      float32 // below this, try the fallback provider
	LowConfidenceThreshold float32 // below this, flag for aggressive cleanup
	FallbackEnabled        bool
}

// Options are per-call extraction options.
type Options struct {
	// AlwaysFallback skips the primary provider entirely (premium callers).
	AlwaysFallback bool
}

// Engine runs the hybrid pipeline: preprocess, primary extraction with
// confidence scoring, conditional fallback, best-of-two selection.
type Engine struct {
	primary  Provider
	fallback Provider
	cfg      EngineConfig
	logger   *slog.Logger
}

// NewEngine wires the providers. fallback may be nil when no fallback
// provider is configured.
func NewEngine(primary, fallback Provider, cfg EngineConfig, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.FallbackThreshold == 0 {
		cfg.FallbackThreshold = 0.65
	}
	if cfg.LowConfidenceThreshold == 0 {
		cfg.LowConfidenceThreshold = 0.40
	}
	return &Engine{primary: primary, fallback: fallback, cfg: cfg, logger: logger}
}

// Process extracts text from an image-sourced document. Empty or near-empty
// extracted text still yields a valid low-confidence result; per-provider
// failures count as confidence 0 for that provider.
func (e *Engine) Process(ctx context.Context, image []byte, opts Options) (Result, error) {
	processed, err := Preprocess(image)
	if err != nil {
		// Preprocessing is best-effort; recognition still gets the raw bytes.
		e.logger.Warn("image preprocessing failed; using raw image", "error", err)
		processed = image
	}

	fallbackReady := e.fallback != nil && e.cfg.FallbackEnabled

	if opts.AlwaysFallback && fallbackReady {
		res := e.extract(ctx, e.fallback, processed)
		return e.finish(res), nil
	}

	primary := e.extract(ctx, e.primary, processed)

	if primary.Confidence < e.cfg.FallbackThreshold && fallbackReady {
		e.logger.Info("primary confidence below threshold; trying fallback",
			"provider", primary.Provider,
			"confidence", primary.Confidence,
			"threshold", e.cfg.FallbackThreshold,
		)
		secondary := e.extract(ctx, e.fallback, processed)
		if secondary.Confidence > primary.Confidence {
			return e.finish(secondary), nil
		}
	}

	return e.finish(primary), nil
}

// extract runs one provider, mapping failure to a confidence-0 result so the
// other provider can still win the selection.
func (e *Engine) extract(ctx context.Context, p Provider, image []byte) Result {
	res, err := p.Extract(ctx, image)
	if err != nil {
		e.logger.Warn("extraction provider failed", "provider", p.Name(), "error", err)
		return Result{Provider: p.Name(), Confidence: 0.0}
	}
	res.Provider = p.Name()
	return res
}

func (e *Engine) finish(res Result) Result {
	res.NeedsAggressiveCleanup = res.Confidence < e.cfg.LowConfidenceThreshold
	return res
}
