package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/notesos/ingest/constants"
)

// VisionConfig controls the fallback provider.
type VisionConfig struct {
	Endpoint string // full annotate URL
	APIKey   string
	Timeout  time.Duration
}

// Vision is the fallback extraction provider: a document-text-detection REST
// API that handles handwriting better than the primary at a per-image cost.
type Vision struct {
	cfg    VisionConfig
	client *http.Client
	logger *slog.Logger
}

// NewVision builds the fallback provider.
func NewVision(cfg VisionConfig, logger *slog.Logger) *Vision {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://vision.googleapis.com/v1/images:annotate"
	}
	return &Vision{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

func (v *Vision) Name() string { return constants.ProviderVision }

type visionRequest struct {
	Requests []visionAnnotateRequest `json:"requests"`
}

type visionAnnotateRequest struct {
	Image    visionImage     `json:"image"`
	Features []visionFeature `json:"features"`
}

type visionImage struct {
	Content string `json:"content"`
}

type visionFeature struct {
	Type string `json:"type"`
}

type visionResponse struct {
	Responses []struct {
		Error *struct {
			Message string `json:"message"`
		} `json:"error,omitempty"`
		FullTextAnnotation *struct {
			Text  string `json:"text"`
			Pages []struct {
				Blocks []struct {
					Paragraphs []struct {
						Words []struct {
							Symbols []struct {
								Text       string  `json:"text"`
								Confidence float32 `json:"confidence"`
							} `json:"symbols"`
						} `json:"words"`
					} `json:"paragraphs"`
				} `json:"blocks"`
			} `json:"pages"`
		} `json:"fullTextAnnotation,omitempty"`
	} `json:"responses"`
}

// Extract posts the image for document text detection. Word confidence is the
// mean of its symbol confidences. A response that fails to parse degrades to
// an empty low-confidence result instead of propagating.
func (v *Vision) Extract(ctx context.Context, image []byte) (Result, error) {
	reqBody := visionRequest{
		Requests: []visionAnnotateRequest{{
			Image:    visionImage{Content: base64.StdEncoding.EncodeToString(image)},
			Features: []visionFeature{{Type: "DOCUMENT_TEXT_DETECTION"}},
		}},
	}

	raw, err := v.sendJSON(ctx, reqBody)
	if err != nil {
		return Result{Provider: v.Name()}, err
	}

	var resp visionResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		v.logger.Warn("vision response did not parse; degrading to empty result", "error", err)
		return Result{Provider: v.Name()}, nil
	}
	if len(resp.Responses) == 0 {
		return Result{Provider: v.Name()}, nil
	}
	r := resp.Responses[0]
	if r.Error != nil {
		return Result{Provider: v.Name()}, fmt.Errorf("vision: %s", r.Error.Message)
	}
	if r.FullTextAnnotation == nil {
		return Result{Provider: v.Name()}, nil
	}

	var words []WordConfidence
	for _, page := range r.FullTextAnnotation.Pages {
		for _, block := range page.Blocks {
			for _, para := range block.Paragraphs {
				for _, word := range para.Words {
					if len(word.Symbols) == 0 {
						continue
					}
					var sb strings.Builder
					var sum float32
					for _, sym := range word.Symbols {
						sb.WriteString(sym.Text)
						sum += sym.Confidence
					}
					words = append(words, WordConfidence{
						Word:       sb.String(),
						Confidence: sum / float32(len(word.Symbols)),
					})
				}
			}
		}
	}

	return Result{
		Text:            Normalize(r.FullTextAnnotation.Text),
		Confidence:      WeightedConfidence(words),
		Provider:        v.Name(),
		WordConfidences: words,
	}, nil
}

func (v *Vision) sendJSON(ctx context.Context, body any) ([]byte, error) {
	start := time.Now()

	bs, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}

	url := v.cfg.Endpoint
	if v.cfg.APIKey != "" {
		url += "?key=" + v.cfg.APIKey
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		v.logger.Error("vision request failed", "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, _ := io.ReadAll(resp.Body)
	v.logger.Debug("vision response",
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("vision: non-2xx status: %d", resp.StatusCode)
	}
	return raw, nil
}
