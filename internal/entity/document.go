package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/notesos/ingest/constants"
)

// Document represents an uploaded document for data transfer between layers.
type Document struct {
	ID                     uuid.UUID              `json:"id"`
	TopicID                uuid.UUID              `json:"topic_id"`
	CourseID               uuid.UUID              `json:"course_id"`
	Title                  string                 `json:"title"`
	UploaderName           string                 `json:"uploader_name"`
	FilePath               string                 `json:"file_path"`
	SourceFormat           constants.SourceFormat `json:"source_format"`
	Processed              bool                   `json:"processed"`
	OCRProvider            *string                `json:"ocr_provider,omitempty"`
	OCRConfidence          *float32               `json:"ocr_confidence,omitempty"`
	NeedsAggressiveCleanup bool                   `json:"needs_aggressive_cleanup"`
	IsPremium              bool                   `json:"is_premium"`
	CreatedAt              time.Time              `json:"created_at"`
	UpdatedAt              time.Time              `json:"updated_at"`
}
