package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/notesos/ingest/constants"
	"github.com/notesos/ingest/internal/broker"
)

// GradeResult is what the external grading collaborator reports back.
type GradeResult struct {
	RoomID string
	Score  float64
	Detail map[string]any
}

// Grader scores a submitted answer. Voice answers go through transcription
// first on the collaborator's side.
type Grader interface {
	GradeAnswer(ctx context.Context, answerID uuid.UUID, isVoice bool) (GradeResult, error)
}

type GradingHandler struct {
	grader Grader
	broker broker.Broker
	logger *slog.Logger
}

func NewGradingHandler(grader Grader, b broker.Broker, logger *slog.Logger) *GradingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GradingHandler{grader: grader, broker: b, logger: logger}
}

func (h *GradingHandler) Handle(ctx context.Context, job *broker.DequeuedJob) (broker.Payload, error) {
	answerID, err := payloadUUID(job.Payload, "answer_id")
	if err != nil {
		return nil, err
	}
	isVoice, _ := job.Payload["is_voice"].(bool)

	res, err := h.grader.GradeAnswer(ctx, answerID, isVoice)
	if err != nil {
		return nil, fmt.Errorf("grade answer: %w", err)
	}

	if res.RoomID != "" {
		env := broker.Envelope{
			RoomID: res.RoomID,
			Message: broker.Message{
				Type: constants.EventGradingComplete,
				Data: map[string]any{
					"answer_id": answerID.String(),
					"score":     res.Score,
					"detail":    res.Detail,
				},
			},
		}
		if err := h.broker.Publish(ctx, constants.NotificationChannel, env); err != nil {
			h.logger.Warn("failed to publish grading event", "answer_id", answerID, "error", err)
		}
	}

	return broker.Payload{"answer_id": answerID.String(), "score": res.Score}, nil
}
