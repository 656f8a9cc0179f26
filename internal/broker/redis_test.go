package broker

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notesos/ingest/constants"
)

func newTestBroker(t *testing.T) *RedisBroker {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisBrokerFromClient(client, 24*time.Hour, nil)
}

func TestEnqueueDequeueRoundTrip(t *testing.T) {
	b := newTestBroker(t)
	ctx := context.Background()

	payload := Payload{"document_id": "D1", "text": "hello world"}
	jobID, err := b.Enqueue(ctx, constants.QueueChunking, payload)
	require.NoError(t, err)
	require.NotEmpty(t, jobID)

	job, err := b.Dequeue(ctx, constants.QueueChunking, 100*time.Millisecond)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, jobID, job.ID)
	assert.Equal(t, "D1", job.Payload["document_id"])
	assert.Equal(t, "hello world", job.Payload["text"])
}

func TestDequeueFIFOOrder(t *testing.T) {
	b := newTestBroker(t)
	ctx := context.Background()

	first, err := b.Enqueue(ctx, constants.QueueChunking, Payload{"n": "1"})
	require.NoError(t, err)
	second, err := b.Enqueue(ctx, constants.QueueChunking, Payload{"n": "2"})
	require.NoError(t, err)

	j1, err := b.Dequeue(ctx, constants.QueueChunking, 100*time.Millisecond)
	require.NoError(t, err)
	require.NotNil(t, j1)
	j2, err := b.Dequeue(ctx, constants.QueueChunking, 100*time.Millisecond)
	require.NoError(t, err)
	require.NotNil(t, j2)

	assert.Equal(t, first, j1.ID)
	assert.Equal(t, second, j2.ID)
}

func TestDequeueEmptyQueue(t *testing.T) {
	b := newTestBroker(t)

	job, err := b.Dequeue(context.Background(), constants.QueueGrading, 50*time.Millisecond)
	require.NoError(t, err)
	assert.Nil(t, job)
}

func TestJobStatusLifecycle(t *testing.T) {
	b := newTestBroker(t)
	ctx := context.Background()

	jobID, err := b.Enqueue(ctx, constants.QueueChunking, Payload{"document_id": "D1"})
	require.NoError(t, err)

	st, err := b.GetStatus(ctx, jobID)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, constants.JobStatusPending, st.Status)
	assert.Equal(t, constants.QueueChunking, st.Queue)

	require.NoError(t, b.SetStatus(ctx, jobID, constants.JobStatusProcessing, nil, ""))
	st, err = b.GetStatus(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusProcessing, st.Status)

	require.NoError(t, b.SetStatus(ctx, jobID, constants.JobStatusCompleted, map[string]string{"document_id": "D1"}, ""))
	st, err = b.GetStatus(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCompleted, st.Status)
	assert.JSONEq(t, `{"document_id":"D1"}`, string(st.Result))

	// SetStatus is an idempotent overwrite.
	require.NoError(t, b.SetStatus(ctx, jobID, constants.JobStatusCompleted, map[string]string{"document_id": "D1"}, ""))
}

func TestGetStatusUnknownJob(t *testing.T) {
	b := newTestBroker(t)

	st, err := b.GetStatus(context.Background(), "no-such-job")
	require.NoError(t, err)
	assert.Nil(t, st)
}

func TestSetStatusRecordsError(t *testing.T) {
	b := newTestBroker(t)
	ctx := context.Background()

	jobID, err := b.Enqueue(ctx, constants.QueueFactCheck, Payload{"document_id": "D2"})
	require.NoError(t, err)

	require.NoError(t, b.SetStatus(ctx, jobID, constants.JobStatusFailed, nil, "provider timeout"))
	st, err := b.GetStatus(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusFailed, st.Status)
	assert.Equal(t, "provider timeout", st.Error)
}

func TestPublishSubscribe(t *testing.T) {
	b := newTestBroker(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, stop := b.Subscribe(ctx, constants.NotificationChannel)
	defer stop()

	env := Envelope{
		RoomID: "course-1",
		Message: Message{
			Type: constants.EventProcessingStatus,
			Data: map[string]any{"document_id": "D1", "status": "completed"},
		},
	}

	// Publish may race the subscriber registration; retry briefly.
	received := make(chan Envelope, 1)
	go func() {
		if got, ok := <-ch; ok {
			received <- got
		}
	}()

	deadline := time.After(2 * time.Second)
	for {
		require.NoError(t, b.Publish(ctx, constants.NotificationChannel, env))
		select {
		case got := <-received:
			assert.Equal(t, "course-1", got.RoomID)
			assert.Equal(t, constants.EventProcessingStatus, got.Message.Type)
			assert.Equal(t, "D1", got.Message.Data["document_id"])
			return
		case <-deadline:
			t.Fatal("timed out waiting for published envelope")
		case <-time.After(20 * time.Millisecond):
		}
	}
}

func TestEmbeddingCacheRoundTrip(t *testing.T) {
	b := newTestBroker(t)
	ctx := context.Background()

	miss, err := b.CachedEmbedding(ctx, "uncached text")
	require.NoError(t, err)
	assert.Nil(t, miss)

	vec := []float32{0.1, 0.2, 0.3}
	require.NoError(t, b.CacheEmbedding(ctx, "some text", vec, time.Hour))

	got, err := b.CachedEmbedding(ctx, "some text")
	require.NoError(t, err)
	assert.Equal(t, vec, got)
}
