package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/notesos/ingest/constants"
	"github.com/notesos/ingest/internal/common"
	"github.com/notesos/ingest/internal/ocr"
)

// Result is the outcome of pulling text out of an uploaded document.
type Result struct {
	Text                   string
	Confidence             float32
	Provider               string
	SourceFormat           constants.SourceFormat
	Pages                  int
	Duration               time.Duration
	NeedsAggressiveCleanup bool
}

// Extractor routes a document to the right text extraction path based on its
// source format. Images go through the OCR engine; digital formats are read
// directly and carry full confidence.
type Extractor struct {
	engine *ocr.Engine
	logger *slog.Logger
}

func NewExtractor(engine *ocr.Engine, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{engine: engine, logger: logger}
}

// Extract produces text from raw document content. Premium routes image
// sources straight to the fallback provider.
func (e *Extractor) Extract(ctx context.Context, content []byte, format constants.SourceFormat, opts ocr.Options) (Result, error) {
	start := time.Now()

	var res Result
	var err error
	switch format {
	case constants.IMAGE:
		res, err = e.extractImage(ctx, content, opts)
	case constants.PDF:
		res, err = extractPDF(content)
	case constants.DOCX:
		res, err = extractDOCX(content)
	case constants.TEXT:
		res = Result{Text: string(content), Confidence: 1.0, Provider: constants.ProviderDirect, Pages: 1}
	default:
		return Result{}, fmt.Errorf("%w: unsupported source format %q", common.ErrInvalidInput, format)
	}
	if err != nil {
		return Result{}, err
	}

	res.SourceFormat = format
	res.Duration = time.Since(start)
	e.logger.Info("text extracted",
		"format", format,
		"provider", res.Provider,
		"confidence", res.Confidence,
		"chars", len(res.Text),
		"duration_ms", res.Duration.Milliseconds())
	return res, nil
}

func (e *Extractor) extractImage(ctx context.Context, content []byte, opts ocr.Options) (Result, error) {
	if e.engine == nil {
		return Result{}, fmt.Errorf("%w: no OCR engine configured for image sources", common.ErrInternal)
	}
	ocrRes, err := e.engine.Process(ctx, content, opts)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Text:                   ocrRes.Text,
		Confidence:             ocrRes.Confidence,
		Provider:               ocrRes.Provider,
		Pages:                  1,
		NeedsAggressiveCleanup: ocrRes.NeedsAggressiveCleanup,
	}, nil
}

// normalizeWhitespace collapses runs of blank lines left behind by page and
// paragraph boundaries in digital formats.
func normalizeWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := 0
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			blank++
			if blank > 1 {
				continue
			}
		} else {
			blank = 0
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
