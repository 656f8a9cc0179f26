package entity

import (
	"time"

	"github.com/google/uuid"
)

// Topic represents a topic within a course.
type Topic struct {
	ID        uuid.UUID `json:"id"`
	CourseID  uuid.UUID `json:"course_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
