package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CollaboratorConfig points at the external service that owns the fact-check
// or grading domain logic. Only the queue contract lives in this core.
type CollaboratorConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// HTTPCollaborator calls the external fact-check/grading service over JSON.
// It implements both FactChecker and Grader.
type HTTPCollaborator struct {
	cfg    CollaboratorConfig
	client *http.Client
	logger *slog.Logger
}

func NewHTTPCollaborator(cfg CollaboratorConfig, logger *slog.Logger) *HTTPCollaborator {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &HTTPCollaborator{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

func (c *HTTPCollaborator) CheckDocument(ctx context.Context, documentID uuid.UUID) (map[string]any, error) {
	var out map[string]any
	err := c.post(ctx, "/fact-check", map[string]any{"document_id": documentID.String()}, &out)
	return out, err
}

func (c *HTTPCollaborator) GradeAnswer(ctx context.Context, answerID uuid.UUID, isVoice bool) (GradeResult, error) {
	var out struct {
		RoomID string         `json:"room_id"`
		Score  float64        `json:"score"`
		Detail map[string]any `json:"detail"`
	}
	err := c.post(ctx, "/grade", map[string]any{
		"answer_id": answerID.String(),
		"is_voice":  isVoice,
	}, &out)
	if err != nil {
		return GradeResult{}, err
	}
	return GradeResult{RoomID: out.RoomID, Score: out.Score, Detail: out.Detail}, nil
}

func (c *HTTPCollaborator) post(ctx context.Context, path string, body, out any) error {
	start := time.Now()
	bs, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(bs))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	c.logger.Info("collaborator response",
		"path", path,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("collaborator %s: non-2xx status %d", path, resp.StatusCode)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
