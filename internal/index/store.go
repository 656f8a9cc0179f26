package index

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/notesos/ingest/internal/chunker"
	"github.com/notesos/ingest/internal/common"
)

// candidatePoolFactor widens the hybrid candidate fetch so re-ranking in Go
// has enough rows to work with.
const candidatePoolFactor = 4

// Store owns the document_chunks table.
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewStore wraps a pgx pool. The pool must have pgvector types registered.
func NewStore(pool *pgxpool.Pool, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{pool: pool, logger: logger}
}

// InsertChunks persists chunks with their vectors inside one transaction,
// serialized per document by an advisory lock so concurrent jobs for the
// same document cannot interleave ordinals. A chunk/embedding count mismatch
// is a caller error.
func (s *Store) InsertChunks(ctx context.Context, documentID uuid.UUID, chunks []chunker.Chunk, embeddings [][]float32) (int, error) {
	if len(chunks) != len(embeddings) {
		return 0, fmt.Errorf("%w: %d chunks but %d embeddings", common.ErrInvalidInput, len(chunks), len(embeddings))
	}
	if len(chunks) == 0 {
		return 0, nil
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("begin insert tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Per-document mutual exclusion across workers; released at tx end.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`, documentID); err != nil {
		return 0, fmt.Errorf("acquire document lock: %w", err)
	}

	const insert = `
		INSERT INTO document_chunks
			(id, document_id, chunk_index, chunk_text, char_start, char_end, embedding, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())`

	for i, chunk := range chunks {
		vec := pgvector.NewVector(embeddings[i])
		if _, err := tx.Exec(ctx, insert,
			uuid.New(), documentID, chunk.Index, chunk.Text, chunk.CharStart, chunk.CharEnd, vec,
		); err != nil {
			return 0, fmt.Errorf("insert chunk %d: %w", chunk.Index, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit chunks: %w", err)
	}

	s.logger.Info("chunks indexed", "document_id", documentID, "count", len(chunks))
	return len(chunks), nil
}

// Search returns the limit chunks most similar to the query vector within a
// course (and topic, when given), ordered by descending cosine similarity.
func (s *Store) Search(ctx context.Context, queryEmbedding []float32, courseID uuid.UUID, topicID *uuid.UUID, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 5
	}
	vec := pgvector.NewVector(queryEmbedding)

	query := `
		SELECT
			dc.id,
			dc.document_id,
			dc.chunk_index,
			dc.chunk_text,
			d.title,
			d.uploader_name,
			dc.created_at,
			1 - (dc.embedding <=> $1) AS similarity
		FROM document_chunks dc
		JOIN documents d ON d.id = dc.document_id
		JOIN topics t ON t.id = d.topic_id
		WHERE t.course_id = $2`
	args := []any{vec, courseID}
	if topicID != nil {
		query += ` AND d.topic_id = $3`
		args = append(args, *topicID)
	}
	query += fmt.Sprintf(`
		ORDER BY dc.embedding <=> $1
		LIMIT %d`, limit)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.ChunkID, &m.DocumentID, &m.ChunkIndex, &m.Text,
			&m.DocumentTitle, &m.UploaderName, &m.CreatedAt, &m.VectorScore); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		m.CombinedScore = m.VectorScore
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// HybridSearch fetches a candidate pool with both a vector score and a
// full-text rank per chunk, then blends and re-ranks in Go.
func (s *Store) HybridSearch(ctx context.Context, queryText string, queryEmbedding []float32, courseID uuid.UUID, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 10
	}
	vec := pgvector.NewVector(queryEmbedding)

	const query = `
		WITH candidates AS (
			SELECT
				dc.id,
				dc.document_id,
				dc.chunk_index,
				dc.chunk_text,
				d.title,
				d.uploader_name,
				dc.created_at,
				1 - (dc.embedding <=> $1) AS vector_score
			FROM document_chunks dc
			JOIN documents d ON d.id = dc.document_id
			JOIN topics t ON t.id = d.topic_id
			WHERE t.course_id = $2
			ORDER BY dc.embedding <=> $1
			LIMIT $4
		)
		SELECT
			c.*,
			COALESCE(ts_rank(to_tsvector('english', c.chunk_text),
			                 plainto_tsquery('english', $3)), 0) AS text_score
		FROM candidates c`

	rows, err := s.pool.Query(ctx, query, vec, courseID, queryText, limit*candidatePoolFactor)
	if err != nil {
		return nil, fmt.Errorf("hybrid search: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.ChunkID, &m.DocumentID, &m.ChunkIndex, &m.Text,
			&m.DocumentTitle, &m.UploaderName, &m.CreatedAt, &m.VectorScore, &m.LexicalScore); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rankHybrid(matches, limit), nil
}

// DeleteChunks removes every chunk for a document. Idempotent: deleting an
// already-clean document reports zero rows. Callers must let this complete
// before re-indexing the same document.
func (s *Store) DeleteChunks(ctx context.Context, documentID uuid.UUID) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM document_chunks WHERE document_id = $1`, documentID)
	if err != nil {
		return 0, fmt.Errorf("delete chunks: %w", err)
	}
	if tag.RowsAffected() > 0 {
		s.logger.Info("chunks deleted", "document_id", documentID, "count", tag.RowsAffected())
	}
	return tag.RowsAffected(), nil
}
