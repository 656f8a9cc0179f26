package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notesos/ingest/constants"
	"github.com/notesos/ingest/internal/broker"
	"github.com/notesos/ingest/internal/chunker"
	"github.com/notesos/ingest/internal/entity"
	"github.com/notesos/ingest/internal/repository"
)

type fakeDocs struct {
	doc       *entity.Document
	processed bool
	resets    int
	meta      *repository.OCRMetadata
}

func (d *fakeDocs) Create(context.Context, *repository.CreateDocumentRequest) (*entity.Document, error) {
	return nil, errors.New("not implemented")
}

func (d *fakeDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	if d.doc == nil || d.doc.ID != id {
		return nil, errors.New("document not found")
	}
	return d.doc, nil
}

func (d *fakeDocs) MarkProcessed(_ context.Context, _ uuid.UUID, meta *repository.OCRMetadata) error {
	d.processed = true
	d.meta = meta
	return nil
}

func (d *fakeDocs) ResetProcessed(context.Context, uuid.UUID) error {
	d.resets++
	return nil
}

type fakeStore struct {
	inserted  int
	deleted   int
	insertErr error
}

func (s *fakeStore) InsertChunks(_ context.Context, _ uuid.UUID, chunks []chunker.Chunk, _ [][]float32) (int, error) {
	if s.insertErr != nil {
		return 0, s.insertErr
	}
	s.inserted += len(chunks)
	return len(chunks), nil
}

func (s *fakeStore) DeleteChunks(context.Context, uuid.UUID) (int64, error) {
	s.deleted++
	return 0, nil
}

type fixedEmbedder struct{ calls int }

func (e *fixedEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	e.calls++
	out := make([][]float32, len(texts))
	for i := range out {
		out[i] = []float32{0.1, 0.2, 0.3}
	}
	return out, nil
}

func (e *fixedEmbedder) Dimensions() int { return 3 }

func textDocument() *entity.Document {
	return &entity.Document{
		ID:           uuid.New(),
		CourseID:     uuid.New(),
		Title:        "Week 3 notes",
		SourceFormat: constants.TEXT,
	}
}

func statusValues(envs []broker.Envelope) []string {
	var out []string
	for _, e := range envs {
		if s, ok := e.Message.Data["status"].(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func TestChunkingHandlerIngestsTextPayload(t *testing.T) {
	doc := textDocument()
	docs := &fakeDocs{doc: doc}
	store := &fakeStore{}
	embedder := &fixedEmbedder{}
	fb := newFakeBroker()
	h := NewChunkingHandler(docs, nil, chunker.New(chunker.Config{}), embedder, store, fb, nil)

	result, err := h.Handle(context.Background(), &broker.DequeuedJob{
		ID:      "job-1",
		Payload: broker.Payload{"document_id": doc.ID.String(), "text": "Short study notes."},
	})

	require.NoError(t, err)
	assert.Equal(t, doc.ID.String(), result["document_id"])
	assert.Equal(t, 1, result["chunks"])
	assert.True(t, docs.processed)
	assert.Nil(t, docs.meta)
	assert.Equal(t, 1, store.deleted)
	assert.Equal(t, 1, store.inserted)

	require.Len(t, fb.events, 2)
	assert.Equal(t, []string{"processing", "completed"}, statusValues(fb.events))
	for _, env := range fb.events {
		assert.Equal(t, doc.CourseID.String(), env.RoomID)
		assert.Equal(t, constants.EventProcessingStatus, env.Message.Type)
	}
}

func TestChunkingHandlerRollsBackOnIndexFailure(t *testing.T) {
	doc := textDocument()
	docs := &fakeDocs{doc: doc}
	store := &fakeStore{insertErr: errors.New("connection reset")}
	fb := newFakeBroker()
	h := NewChunkingHandler(docs, nil, chunker.New(chunker.Config{}), &fixedEmbedder{}, store, fb, nil)

	_, err := h.Handle(context.Background(), &broker.DequeuedJob{
		ID:      "job-2",
		Payload: broker.Payload{"document_id": doc.ID.String(), "text": "Short study notes."},
	})

	require.Error(t, err)
	assert.False(t, docs.processed)
	assert.Equal(t, 1, docs.resets)
	assert.Equal(t, []string{"processing", "failed"}, statusValues(fb.events))
}

func TestChunkingHandlerUnknownDocument(t *testing.T) {
	docs := &fakeDocs{}
	fb := newFakeBroker()
	h := NewChunkingHandler(docs, nil, chunker.New(chunker.Config{}), &fixedEmbedder{}, &fakeStore{}, fb, nil)

	_, err := h.Handle(context.Background(), &broker.DequeuedJob{
		ID:      "job-3",
		Payload: broker.Payload{"document_id": uuid.New().String(), "text": "x"},
	})

	require.Error(t, err)
	assert.Empty(t, fb.events)
}

func TestChunkingHandlerBadDocumentID(t *testing.T) {
	h := NewChunkingHandler(&fakeDocs{}, nil, chunker.New(chunker.Config{}), &fixedEmbedder{}, &fakeStore{}, newFakeBroker(), nil)

	_, err := h.Handle(context.Background(), &broker.DequeuedJob{
		ID:      "job-4",
		Payload: broker.Payload{"document_id": "not-a-uuid"},
	})

	assert.Error(t, err)
}
