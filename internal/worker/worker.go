package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/notesos/ingest/constants"
	"github.com/notesos/ingest/internal/broker"
)

// Handler processes one dequeued job. The returned payload is stored as the
// job's result on success.
type Handler interface {
	Handle(ctx context.Context, job *broker.DequeuedJob) (broker.Payload, error)
}

type Config struct {
	Queue        string
	PollTimeout  time.Duration
	ErrorBackoff time.Duration
	// JobTimeout bounds a single handler invocation. Zero disables the
	// bound.
	JobTimeout time.Duration
}

// Worker polls one queue and drives each job through the
// pending/processing/terminal lifecycle. Broker hiccups on dequeue back off
// and retry; they never stop the loop.
type Worker struct {
	cfg     Config
	broker  broker.Broker
	handler Handler
	schema  *jsonschema.Schema
	logger  *slog.Logger
}

func New(cfg Config, b broker.Broker, handler Handler, logger *slog.Logger) (*Worker, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = 5 * time.Second
	}
	if cfg.ErrorBackoff <= 0 {
		cfg.ErrorBackoff = 2 * time.Second
	}
	schema, err := compilePayloadSchema(cfg.Queue)
	if err != nil {
		return nil, err
	}
	return &Worker{
		cfg:     cfg,
		broker:  b,
		handler: handler,
		schema:  schema,
		logger:  logger.With("queue", cfg.Queue),
	}, nil
}

// Run polls until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("worker started")
	for {
		if err := ctx.Err(); err != nil {
			w.logger.Info("worker stopped")
			return err
		}

		job, err := w.broker.Dequeue(ctx, w.cfg.Queue, w.cfg.PollTimeout)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				continue
			}
			w.logger.Warn("dequeue failed, backing off", "error", err)
			select {
			case <-ctx.Done():
			case <-time.After(w.cfg.ErrorBackoff):
			}
			continue
		}
		if job == nil {
			continue
		}

		w.process(ctx, job)
	}
}

func (w *Worker) process(ctx context.Context, job *broker.DequeuedJob) {
	logger := w.logger.With("job_id", job.ID)

	if err := validatePayload(w.schema, job.Payload); err != nil {
		logger.Error("rejecting malformed payload", "error", err)
		w.setStatus(ctx, job.ID, constants.JobStatusFailed, nil, err)
		return
	}

	w.setStatus(ctx, job.ID, constants.JobStatusProcessing, nil, nil)

	// A stuck collaborator or provider call must not pin the worker; the
	// handler context expires after JobTimeout and the job fails.
	hctx := ctx
	if w.cfg.JobTimeout > 0 {
		var cancel context.CancelFunc
		hctx, cancel = context.WithTimeout(ctx, w.cfg.JobTimeout)
		defer cancel()
	}

	result, err := w.handler.Handle(hctx, job)
	if err != nil {
		if ctx.Err() != nil {
			// Shutdown mid-job: the handler has rolled the document back,
			// so record the interruption and let a re-enqueue redrive it.
			logger.Warn("job interrupted by shutdown")
		} else {
			logger.Error("job failed", "error", err)
		}
		// Status writes during shutdown get their own deadline.
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		w.setStatus(sctx, job.ID, constants.JobStatusFailed, nil, err)
		return
	}

	w.setStatus(ctx, job.ID, constants.JobStatusCompleted, result, nil)
	logger.Info("job completed")
}

func (w *Worker) setStatus(ctx context.Context, jobID string, status constants.JobStatus, result broker.Payload, cause error) {
	var errMsg string
	if cause != nil {
		errMsg = cause.Error()
	}
	if err := w.broker.SetStatus(ctx, jobID, status, result, errMsg); err != nil {
		w.logger.Error("failed to record job status",
			"job_id", jobID, "status", status, "error", err)
	}
}
