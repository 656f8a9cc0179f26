// Package index persists chunk vectors in Postgres/pgvector and serves
// tenant-scoped similarity and hybrid search.
package index

import (
	"time"

	"github.com/google/uuid"
)

// Match is one ranked search result, annotated with document metadata for
// citation.
type Match struct {
	ChunkID       uuid.UUID
	DocumentID    uuid.UUID
	ChunkIndex    int
	Text          string
	DocumentTitle string
	UploaderName  string
	CreatedAt     time.Time

	VectorScore   float64 // cosine similarity to the query vector
	LexicalScore  float64 // full-text rank against the query text, 0 if no match
	CombinedScore float64 // weighted blend, see CombinedScore()
}
