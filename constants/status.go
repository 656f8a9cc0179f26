package constants

// JobStatus is the canonical lifecycle state for queued jobs.
type JobStatus string

// Stable values (store these exact strings in Redis).
const (
	JobStatusPending    JobStatus = "pending"    // accepted, not yet picked up
	JobStatusProcessing JobStatus = "processing" // held by a worker
	JobStatusCompleted  JobStatus = "completed"  // terminal success
	JobStatusFailed     JobStatus = "failed"     // terminal failure
)

// Terminal reports whether a status can never transition again.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// Queue names recognized by the worker daemon.
const (
	QueueChunking  = "chunking"
	QueueFactCheck = "fact_check"
	QueueGrading   = "grading"
)

// KnownQueues holds every queue the broker will accept jobs for.
var KnownQueues = []string{QueueChunking, QueueFactCheck, QueueGrading}

// IsKnownQueue reports whether name is a queue this core consumes.
func IsKnownQueue(name string) bool {
	for _, q := range KnownQueues {
		if q == name {
			return true
		}
	}
	return false
}
