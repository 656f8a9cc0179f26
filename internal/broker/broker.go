// Package broker implements the durable work queue, job-status store and
// pub/sub channel on top of Redis.
package broker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/notesos/ingest/constants"
)

// Payload is the opaque key-value map carried by a job.
type Payload map[string]any

// DequeuedJob is a queue entry handed to exactly one consumer. There is no
// redelivery: if the holder crashes before reporting status the job is lost
// (see the job-loss note in DESIGN.md).
type DequeuedJob struct {
	ID        string  `json:"id"`
	Payload   Payload `json:"data"`
	CreatedAt string  `json:"created_at,omitempty"`
}

// JobStatus is the externally observable snapshot of a job. Snapshots become
// unobservable once the job TTL elapses.
type JobStatus struct {
	ID     string              `json:"id"`
	Status constants.JobStatus `json:"status"`
	Queue  string              `json:"queue"`
	Result json.RawMessage     `json:"result,omitempty"`
	Error  string              `json:"error,omitempty"`
}

// Envelope is a pub/sub message: transient, never persisted beyond delivery.
type Envelope struct {
	RoomID  string  `json:"room_id"`
	Message Message `json:"message"`
}

// Message is the typed payload inside an Envelope.
type Message struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data,omitempty"`
}

// Broker is the queue contract shared by producers and workers.
type Broker interface {
	Enqueue(ctx context.Context, queue string, payload Payload) (string, error)
	Dequeue(ctx context.Context, queue string, wait time.Duration) (*DequeuedJob, error)
	SetStatus(ctx context.Context, jobID string, status constants.JobStatus, result any, errMsg string) error
	GetStatus(ctx context.Context, jobID string) (*JobStatus, error)
	Publish(ctx context.Context, channel string, env Envelope) error
	Subscribe(ctx context.Context, channel string) (<-chan Envelope, func())
}
