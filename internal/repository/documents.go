package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/notesos/ingest/constants"
	"github.com/notesos/ingest/gen/ent"
	"github.com/notesos/ingest/gen/ent/course"
	"github.com/notesos/ingest/gen/ent/document"
	"github.com/notesos/ingest/gen/ent/topic"
	"github.com/notesos/ingest/internal/common"
	"github.com/notesos/ingest/internal/entity"
	"github.com/notesos/ingest/internal/utils"
)

// OCRMetadata records how a document's text was produced.
type OCRMetadata struct {
	Provider               string
	Confidence             float32
	NeedsAggressiveCleanup bool
}

// CreateDocumentRequest wraps parameters for registering an upload.
type CreateDocumentRequest struct {
	TopicID      uuid.UUID
	Title        string
	UploaderName string
	FilePath     string
	SourceFormat constants.SourceFormat
}

type DocumentRepository interface {
	Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error)
	// GetByID resolves the document together with its course, so callers
	// know the notification room and the course tier in one round trip.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	MarkProcessed(ctx context.Context, id uuid.UUID, meta *OCRMetadata) error
	ResetProcessed(ctx context.Context, id uuid.UUID) error
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentRepository{client: client, logger: logger}
}

func (r *documentRepository) Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error) {
	doc, err := r.client.Document.Create().
		SetTopicID(req.TopicID).
		SetTitle(req.Title).
		SetUploaderName(req.UploaderName).
		SetFilePath(req.FilePath).
		SetSourceFormat(document.SourceFormat(req.SourceFormat)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "topic_id", req.TopicID, "error", err)
		return nil, err
	}
	return utils.ToDocument(doc), nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	doc, err := r.client.Document.Query().
		Where(document.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}

	crs, err := r.client.Course.Query().
		Where(course.HasTopicsWith(topic.ID(doc.TopicID))).
		Only(ctx)
	if err != nil {
		r.logger.Error("failed to resolve course", "document_id", id, "error", err)
		return nil, err
	}

	out := utils.ToDocument(doc)
	out.CourseID = crs.ID
	out.IsPremium = crs.IsPremium
	return out, nil
}

func (r *documentRepository) MarkProcessed(ctx context.Context, id uuid.UUID, meta *OCRMetadata) error {
	upd := r.client.Document.UpdateOneID(id).SetProcessed(true)
	if meta != nil {
		upd = upd.
			SetOcrProvider(meta.Provider).
			SetOcrConfidence(meta.Confidence).
			SetNeedsAggressiveCleanup(meta.NeedsAggressiveCleanup)
	}
	if err := upd.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return err
	}
	return nil
}

// ResetProcessed rolls the flag back after a failed re-index so the document
// is picked up again on retry.
func (r *documentRepository) ResetProcessed(ctx context.Context, id uuid.UUID) error {
	err := r.client.Document.UpdateOneID(id).SetProcessed(false).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return err
	}
	return nil
}
