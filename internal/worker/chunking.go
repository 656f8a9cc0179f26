package worker

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/notesos/ingest/constants"
	"github.com/notesos/ingest/internal/broker"
	"github.com/notesos/ingest/internal/chunker"
	"github.com/notesos/ingest/internal/common"
	"github.com/notesos/ingest/internal/embedding"
	"github.com/notesos/ingest/internal/entity"
	"github.com/notesos/ingest/internal/extract"
	"github.com/notesos/ingest/internal/ocr"
	"github.com/notesos/ingest/internal/repository"
)

// ChunkStore is the slice of the retrieval index the chunking flow needs.
type ChunkStore interface {
	InsertChunks(ctx context.Context, documentID uuid.UUID, chunks []chunker.Chunk, embeddings [][]float32) (int, error)
	DeleteChunks(ctx context.Context, documentID uuid.UUID) (int64, error)
}

// ChunkingHandler drives one document from raw content to indexed chunks:
// extract, chunk, embed, index, mark processed, announce.
type ChunkingHandler struct {
	docs      repository.DocumentRepository
	extractor *extract.Extractor
	chunker   *chunker.Chunker
	embedder  embedding.Embedder
	store     ChunkStore
	broker    broker.Broker
	logger    *slog.Logger
}

func NewChunkingHandler(
	docs repository.DocumentRepository,
	extractor *extract.Extractor,
	ch *chunker.Chunker,
	embedder embedding.Embedder,
	store ChunkStore,
	b broker.Broker,
	logger *slog.Logger,
) *ChunkingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChunkingHandler{
		docs:      docs,
		extractor: extractor,
		chunker:   ch,
		embedder:  embedder,
		store:     store,
		broker:    b,
		logger:    logger,
	}
}

func (h *ChunkingHandler) Handle(ctx context.Context, job *broker.DequeuedJob) (broker.Payload, error) {
	docID, err := payloadUUID(job.Payload, "document_id")
	if err != nil {
		return nil, err
	}

	doc, err := h.docs.GetByID(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	room := doc.CourseID.String()

	h.publishStatus(ctx, room, docID, "processing")

	result, err := h.ingest(ctx, doc, job.Payload)
	if err != nil {
		// Leave the document eligible for a full re-run.
		if rbErr := h.docs.ResetProcessed(context.WithoutCancel(ctx), docID); rbErr != nil {
			h.logger.Error("failed to roll back processed flag", "document_id", docID, "error", rbErr)
		}
		h.publishStatus(context.WithoutCancel(ctx), room, docID, "failed")
		return nil, err
	}

	h.publishStatus(ctx, room, docID, "completed")
	return result, nil
}

func (h *ChunkingHandler) ingest(ctx context.Context, doc *entity.Document, payload broker.Payload) (broker.Payload, error) {
	text, _ := payload["text"].(string)
	var meta *repository.OCRMetadata

	if doc.SourceFormat == constants.IMAGE || text == "" {
		content, err := os.ReadFile(doc.FilePath)
		if err != nil {
			return nil, fmt.Errorf("read source file: %w", err)
		}
		res, err := h.extractor.Extract(ctx, content, doc.SourceFormat, ocr.Options{
			AlwaysFallback: doc.IsPremium,
		})
		if err != nil {
			return nil, fmt.Errorf("extract text: %w", err)
		}
		text = res.Text
		meta = &repository.OCRMetadata{
			Provider:               res.Provider,
			Confidence:             res.Confidence,
			NeedsAggressiveCleanup: res.NeedsAggressiveCleanup,
		}
	}

	chunks := h.chunker.Chunk(text)
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	embeddings, err := h.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed chunks: %w", err)
	}
	if len(embeddings) != len(chunks) {
		return nil, fmt.Errorf("%w: %d chunks but %d embeddings", common.ErrInternal, len(chunks), len(embeddings))
	}

	// Re-indexing must fully clear the old chunks first.
	if _, err := h.store.DeleteChunks(ctx, doc.ID); err != nil {
		return nil, fmt.Errorf("clear old chunks: %w", err)
	}
	inserted, err := h.store.InsertChunks(ctx, doc.ID, chunks, embeddings)
	if err != nil {
		return nil, fmt.Errorf("index chunks: %w", err)
	}

	if err := h.docs.MarkProcessed(ctx, doc.ID, meta); err != nil {
		return nil, fmt.Errorf("mark processed: %w", err)
	}

	h.logger.Info("document ingested", "document_id", doc.ID, "chunks", inserted)
	result := broker.Payload{"document_id": doc.ID.String(), "chunks": inserted}
	if meta != nil {
		result["ocr_provider"] = meta.Provider
		result["ocr_confidence"] = meta.Confidence
	}
	return result, nil
}

func (h *ChunkingHandler) publishStatus(ctx context.Context, room string, docID uuid.UUID, status string) {
	err := h.broker.Publish(ctx, constants.NotificationChannel, broker.Envelope{
		RoomID: room,
		Message: broker.Message{
			Type: constants.EventProcessingStatus,
			Data: map[string]any{"document_id": docID.String(), "status": status},
		},
	})
	if err != nil {
		h.logger.Warn("failed to publish status event",
			"document_id", docID, "status", status, "error", err)
	}
}

func payloadUUID(p broker.Payload, key string) (uuid.UUID, error) {
	s, _ := p[key].(string)
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad %s %q", common.ErrInvalidInput, key, s)
	}
	return id, nil
}
