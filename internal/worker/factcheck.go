package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/notesos/ingest/constants"
	"github.com/notesos/ingest/internal/broker"
	"github.com/notesos/ingest/internal/repository"
)

// FactChecker is the external collaborator that verifies a document's
// claims. Only its queue contract lives in this core.
type FactChecker interface {
	CheckDocument(ctx context.Context, documentID uuid.UUID) (map[string]any, error)
}

type FactCheckHandler struct {
	docs    repository.DocumentRepository
	checker FactChecker
	broker  broker.Broker
	logger  *slog.Logger
}

func NewFactCheckHandler(docs repository.DocumentRepository, checker FactChecker, b broker.Broker, logger *slog.Logger) *FactCheckHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FactCheckHandler{docs: docs, checker: checker, broker: b, logger: logger}
}

func (h *FactCheckHandler) Handle(ctx context.Context, job *broker.DequeuedJob) (broker.Payload, error) {
	docID, err := payloadUUID(job.Payload, "document_id")
	if err != nil {
		return nil, err
	}

	doc, err := h.docs.GetByID(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	findings, err := h.checker.CheckDocument(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("fact check: %w", err)
	}

	env := broker.Envelope{
		RoomID: doc.CourseID.String(),
		Message: broker.Message{
			Type: constants.EventFactCheckComplete,
			Data: map[string]any{"document_id": docID.String(), "findings": findings},
		},
	}
	if err := h.broker.Publish(ctx, constants.NotificationChannel, env); err != nil {
		h.logger.Warn("failed to publish fact-check event", "document_id", docID, "error", err)
	}

	return broker.Payload{"document_id": docID.String(), "findings": findings}, nil
}
