package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notesos/ingest/constants"
	"github.com/notesos/ingest/internal/broker"
)

type statusRecord struct {
	status constants.JobStatus
	result any
	errMsg string
}

type fakeBroker struct {
	mu       sync.Mutex
	jobs     []*broker.DequeuedJob
	statuses map[string][]statusRecord
	events   []broker.Envelope
	deqErr   error
}

func newFakeBroker(jobs ...*broker.DequeuedJob) *fakeBroker {
	return &fakeBroker{jobs: jobs, statuses: make(map[string][]statusRecord)}
}

func (f *fakeBroker) Enqueue(context.Context, string, broker.Payload) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeBroker) Dequeue(ctx context.Context, _ string, _ time.Duration) (*broker.DequeuedJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deqErr != nil {
		return nil, f.deqErr
	}
	if len(f.jobs) == 0 {
		return nil, nil
	}
	job := f.jobs[0]
	f.jobs = f.jobs[1:]
	return job, nil
}

func (f *fakeBroker) SetStatus(_ context.Context, jobID string, status constants.JobStatus, result any, errMsg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[jobID] = append(f.statuses[jobID], statusRecord{status, result, errMsg})
	return nil
}

func (f *fakeBroker) GetStatus(context.Context, string) (*broker.JobStatus, error) {
	return nil, nil
}

func (f *fakeBroker) Publish(_ context.Context, _ string, env broker.Envelope) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, env)
	return nil
}

func (f *fakeBroker) Subscribe(context.Context, string) (<-chan broker.Envelope, func()) {
	ch := make(chan broker.Envelope)
	return ch, func() { close(ch) }
}

func (f *fakeBroker) history(jobID string) []statusRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statuses[jobID]
}

type fakeHandler struct {
	mu     sync.Mutex
	calls  int
	result broker.Payload
	err    error
}

func (h *fakeHandler) Handle(_ context.Context, _ *broker.DequeuedJob) (broker.Payload, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	return h.result, h.err
}

func (h *fakeHandler) callCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls
}

func chunkingJob(id string) *broker.DequeuedJob {
	return &broker.DequeuedJob{
		ID:      id,
		Payload: broker.Payload{"document_id": "0b36293d-9f45-4b6a-8a2d-8c91a32a42ab", "text": "hello"},
	}
}

func TestProcessHappyPath(t *testing.T) {
	fb := newFakeBroker()
	handler := &fakeHandler{result: broker.Payload{"chunks": 3}}
	w, err := New(Config{Queue: constants.QueueChunking}, fb, handler, nil)
	require.NoError(t, err)

	w.process(context.Background(), chunkingJob("job-1"))

	history := fb.history("job-1")
	require.Len(t, history, 2)
	assert.Equal(t, constants.JobStatusProcessing, history[0].status)
	assert.Equal(t, constants.JobStatusCompleted, history[1].status)
	assert.Equal(t, broker.Payload{"chunks": 3}, history[1].result)
	assert.Equal(t, 1, handler.callCount())
}

func TestProcessRejectsMalformedPayload(t *testing.T) {
	fb := newFakeBroker()
	handler := &fakeHandler{}
	w, err := New(Config{Queue: constants.QueueChunking}, fb, handler, nil)
	require.NoError(t, err)

	w.process(context.Background(), &broker.DequeuedJob{
		ID:      "job-2",
		Payload: broker.Payload{"text": "no document id"},
	})

	history := fb.history("job-2")
	require.Len(t, history, 1)
	assert.Equal(t, constants.JobStatusFailed, history[0].status)
	assert.Contains(t, history[0].errMsg, "validation failed")
	assert.Equal(t, 0, handler.callCount())
}

func TestProcessRecordsHandlerFailure(t *testing.T) {
	fb := newFakeBroker()
	handler := &fakeHandler{err: errors.New("embedding provider down")}
	w, err := New(Config{Queue: constants.QueueChunking}, fb, handler, nil)
	require.NoError(t, err)

	w.process(context.Background(), chunkingJob("job-3"))

	history := fb.history("job-3")
	require.Len(t, history, 2)
	assert.Equal(t, constants.JobStatusProcessing, history[0].status)
	assert.Equal(t, constants.JobStatusFailed, history[1].status)
	assert.Contains(t, history[1].errMsg, "embedding provider down")
}

func TestRunDrainsQueueUntilCancelled(t *testing.T) {
	fb := newFakeBroker(chunkingJob("job-4"), chunkingJob("job-5"))
	handler := &fakeHandler{result: broker.Payload{}}
	w, err := New(Config{Queue: constants.QueueChunking, PollTimeout: 10 * time.Millisecond}, fb, handler, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	assert.Eventually(t, func() bool { return handler.callCount() == 2 }, time.Second, 5*time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

// blockingHandler only returns once its context expires.
type blockingHandler struct{}

func (blockingHandler) Handle(ctx context.Context, _ *broker.DequeuedJob) (broker.Payload, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestProcessFailsStuckJobAfterTimeout(t *testing.T) {
	fb := newFakeBroker()
	w, err := New(Config{
		Queue:      constants.QueueChunking,
		JobTimeout: 20 * time.Millisecond,
	}, fb, blockingHandler{}, nil)
	require.NoError(t, err)

	start := time.Now()
	w.process(context.Background(), chunkingJob("job-7"))
	require.Less(t, time.Since(start), time.Second)

	history := fb.history("job-7")
	require.Len(t, history, 2)
	assert.Equal(t, constants.JobStatusProcessing, history[0].status)
	assert.Equal(t, constants.JobStatusFailed, history[1].status)
	assert.Contains(t, history[1].errMsg, "deadline")
}

func TestRunSurvivesDequeueErrors(t *testing.T) {
	fb := newFakeBroker()
	fb.deqErr = errors.New("connection refused")
	handler := &fakeHandler{}
	w, err := New(Config{
		Queue:        constants.QueueChunking,
		PollTimeout:  10 * time.Millisecond,
		ErrorBackoff: 5 * time.Millisecond,
	}, fb, handler, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Broker recovers; the loop picks the job up without restarting.
	time.Sleep(20 * time.Millisecond)
	fb.mu.Lock()
	fb.deqErr = nil
	fb.jobs = append(fb.jobs, chunkingJob("job-6"))
	fb.mu.Unlock()

	assert.Eventually(t, func() bool { return handler.callCount() == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestNewRejectsUnknownQueue(t *testing.T) {
	_, err := New(Config{Queue: "mystery"}, newFakeBroker(), &fakeHandler{}, nil)
	assert.Error(t, err)
}
