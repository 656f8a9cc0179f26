// Package ocr implements the confidence-driven hybrid text extraction engine
// for image-sourced documents.
package ocr

import "context"

// WordConfidence is a recognized word with its per-word confidence in [0,1].
type WordConfidence struct {
	Word       string
	Confidence float32
}

// Result is the outcome of one extraction attempt.
type Result struct {
	Text                   string
	Confidence             float32
	Provider               string
	WordConfidences        []WordConfidence
	NeedsAggressiveCleanup bool
}

// Provider extracts text from a preprocessed image. Implementations report a
// confidence in [0,1]; a failed call is treated by the engine as confidence 0
// so the other provider can still win.
type Provider interface {
	Name() string
	Extract(ctx context.Context, image []byte) (Result, error)
}
