package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/notesos/ingest/constants"
)

// TesseractConfig controls the primary extractor.
type TesseractConfig struct {
	Binary      string // binary name or absolute path; if empty -> "tesseract"
	Lang        string // default "eng"
	TessdataDir string
	PSM         int // 6 is good for a uniform block of text
	OEM         int // 1 = LSTM; leave 0 to use default
}

// Tesseract is the primary extraction provider. It shells out to the
// tesseract CLI in TSV mode so per-word confidences come back with the text.
type Tesseract struct {
	cfg    TesseractConfig
	runner Runner
	logger *slog.Logger
}

// NewTesseract applies defaults and returns the provider.
func NewTesseract(cfg TesseractConfig, logger *slog.Logger) *Tesseract {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Binary == "" {
		cfg.Binary = "tesseract"
	}
	if cfg.Lang == "" {
		cfg.Lang = "eng"
	}
	return &Tesseract{cfg: cfg, runner: execRunner{}, logger: logger}
}

// WithRunner swaps the command runner; used by tests.
func (t *Tesseract) WithRunner(r Runner) *Tesseract {
	t.runner = r
	return t
}

func (t *Tesseract) Name() string { return constants.ProviderTesseract }

// Extract writes the image to a temp file, runs tesseract in TSV mode and
// reconstructs line-ordered text with per-word confidences.
func (t *Tesseract) Extract(ctx context.Context, image []byte) (Result, error) {
	tmpDir, err := os.MkdirTemp("", "ingest-ocr-*")
	if err != nil {
		return Result{Provider: t.Name()}, err
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	path := filepath.Join(tmpDir, "page.png")
	if err := os.WriteFile(path, image, 0o600); err != nil {
		return Result{Provider: t.Name()}, err
	}

	args := []string{path, "stdout", "-l", t.cfg.Lang}
	if t.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(t.cfg.PSM))
	}
	if t.cfg.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(t.cfg.OEM))
	}
	if t.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", t.cfg.TessdataDir)
	}
	// TSV output carries the conf column
	args = append(args, "tsv")

	out, errb, err := t.runner.Run(ctx, t.logger, t.cfg.Binary, args...)
	if err != nil {
		return Result{Provider: t.Name()}, fmt.Errorf("tesseract: %w (%s)", err, truncate(string(errb), 512))
	}

	words, text := parseTSV(string(out))
	return Result{
		Text:            Normalize(text),
		Confidence:      WeightedConfidence(words),
		Provider:        t.Name(),
		WordConfidences: words,
	}, nil
}

// tsv columns: level page_num block_num par_num line_num word_num
// left top width height conf text
const (
	tsvColumns  = 12
	tsvConfCol  = 10
	tsvTextCol  = 11
	tsvBlockCol = 2
	tsvLineCol  = 4
)

type lineKey struct{ block, line int }

// parseTSV extracts word-level confidences and reconstructs the text in
// block/line order with one line per TSV line group.
func parseTSV(tsv string) ([]WordConfidence, string) {
	var words []WordConfidence
	lines := map[lineKey][]string{}

	for i, ln := range strings.Split(tsv, "\n") {
		if i == 0 || len(ln) == 0 {
			continue // skip header
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < tsvColumns {
			continue
		}
		word := strings.TrimSpace(cols[tsvTextCol])
		confStr := cols[tsvConfCol]
		if word == "" || confStr == "" || confStr == "-1" {
			continue // -1 marks non-word rows
		}
		conf, err := strconv.ParseFloat(confStr, 64)
		if err != nil {
			continue
		}
		// tesseract reports 0-100
		words = append(words, WordConfidence{Word: word, Confidence: float32(conf / 100.0)})

		block, _ := strconv.Atoi(cols[tsvBlockCol])
		line, _ := strconv.Atoi(cols[tsvLineCol])
		key := lineKey{block, line}
		lines[key] = append(lines[key], word)
	}

	keys := make([]lineKey, 0, len(lines))
	for k := range lines {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].block != keys[j].block {
			return keys[i].block < keys[j].block
		}
		return keys[i].line < keys[j].line
	})

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, strings.Join(lines[k], " "))
	}
	return words, strings.Join(parts, "\n")
}
