package utils

import (
	"time"

	"github.com/notesos/ingest/constants"
	"github.com/notesos/ingest/gen/ent"
	ingestpb "github.com/notesos/ingest/gen/proto/ingest/v1"
	"github.com/notesos/ingest/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToDocument(e *ent.Document) *entity.Document {
	return &entity.Document{
		ID:                     e.ID,
		TopicID:                e.TopicID,
		Title:                  e.Title,
		UploaderName:           e.UploaderName,
		FilePath:               e.FilePath,
		SourceFormat:           constants.SourceFormat(e.SourceFormat),
		Processed:              e.Processed,
		OCRProvider:            e.OcrProvider,
		OCRConfidence:          e.OcrConfidence,
		NeedsAggressiveCleanup: e.NeedsAggressiveCleanup,
		CreatedAt:              e.CreatedAt,
		UpdatedAt:              e.UpdatedAt,
	}
}

func ToTopic(e *ent.Topic) *entity.Topic {
	return &entity.Topic{
		ID:        e.ID,
		CourseID:  e.CourseID,
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
	}
}

func ToPBDocument(d *entity.Document) *ingestpb.Document {
	var confidence float32
	if d.OCRConfidence != nil {
		confidence = *d.OCRConfidence
	}
	return &ingestpb.Document{
		Id:            d.ID.String(),
		TopicId:       d.TopicID.String(),
		Title:         d.Title,
		UploaderName:  d.UploaderName,
		SourceFormat:  string(d.SourceFormat),
		Processed:     d.Processed,
		OcrProvider:   strOrEmpty(d.OCRProvider),
		OcrConfidence: confidence,
		CreatedAt:     d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     d.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
