package broker

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/notesos/ingest/constants"
)

const (
	queueKeyPrefix     = "queue:"
	jobKeyPrefix       = "job:"
	channelKeyPrefix   = "channel:"
	embeddingKeyPrefix = "embedding:"
)

// RedisBroker implements Broker on a single Redis instance: a list per queue,
// a hash per job, and native pub/sub for notification channels.
type RedisBroker struct {
	client *redis.Client
	logger *slog.Logger
	jobTTL time.Duration
}

// NewRedisBroker connects to Redis and verifies the connection.
func NewRedisBroker(ctx context.Context, url string, jobTTL time.Duration, logger *slog.Logger) (*RedisBroker, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if jobTTL <= 0 {
		jobTTL = 24 * time.Hour
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisBroker{client: client, logger: logger, jobTTL: jobTTL}, nil
}

// NewRedisBrokerFromClient wraps an existing client; used by tests.
func NewRedisBrokerFromClient(client *redis.Client, jobTTL time.Duration, logger *slog.Logger) *RedisBroker {
	if logger == nil {
		logger = slog.Default()
	}
	if jobTTL <= 0 {
		jobTTL = 24 * time.Hour
	}
	return &RedisBroker{client: client, logger: logger, jobTTL: jobTTL}
}

// Close closes the underlying connection.
func (b *RedisBroker) Close() error {
	return b.client.Close()
}

// Enqueue appends a job to the named queue and records its status hash.
// Acceptance is acknowledged synchronously; completion is not. Broker
// unavailability surfaces as a hard error so producers never drop silently.
func (b *RedisBroker) Enqueue(ctx context.Context, queue string, payload Payload) (string, error) {
	jobID := uuid.New().String()
	env := DequeuedJob{
		ID:        jobID,
		Payload:   payload,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("encode job: %w", err)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}

	// LPUSH + BRPOP gives FIFO per queue.
	if err := b.client.LPush(ctx, queueKeyPrefix+queue, raw).Err(); err != nil {
		b.logger.Error("enqueue failed", "queue", queue, "error", err)
		return "", fmt.Errorf("enqueue %s: %w", queue, err)
	}

	jobKey := jobKeyPrefix + jobID
	pipe := b.client.TxPipeline()
	pipe.HSet(ctx, jobKey, map[string]any{
		"status": string(constants.JobStatusPending),
		"queue":  queue,
		"data":   string(data),
	})
	pipe.Expire(ctx, jobKey, b.jobTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		b.logger.Error("job status write failed", "job_id", jobID, "error", err)
		return "", fmt.Errorf("record job %s: %w", jobID, err)
	}

	b.logger.Info("job enqueued", "job_id", jobID, "queue", queue)
	return jobID, nil
}

// Dequeue removes and returns the oldest queued job, blocking up to wait.
// Returns (nil, nil) when the wait elapses with nothing queued. The entry is
// removed on return: a consumer crash before SetStatus loses the job.
func (b *RedisBroker) Dequeue(ctx context.Context, queue string, wait time.Duration) (*DequeuedJob, error) {
	res, err := b.client.BRPop(ctx, wait, queueKeyPrefix+queue).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("dequeue %s: %w", queue, err)
	}
	// BRPop returns [key, value].
	if len(res) != 2 {
		return nil, fmt.Errorf("dequeue %s: unexpected reply length %d", queue, len(res))
	}

	var job DequeuedJob
	if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
		// Malformed entry: drop it rather than poisoning the loop.
		b.logger.Warn("discarding malformed queue entry", "queue", queue, "error", err)
		return nil, nil
	}
	return &job, nil
}

// SetStatus overwrites the job status hash. Idempotent; callers only ever
// move status forward (pending -> processing -> terminal).
func (b *RedisBroker) SetStatus(ctx context.Context, jobID string, status constants.JobStatus, result any, errMsg string) error {
	updates := map[string]any{"status": string(status)}
	if result != nil {
		raw, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		updates["result"] = string(raw)
	}
	if errMsg != "" {
		updates["error"] = errMsg
	}
	if err := b.client.HSet(ctx, jobKeyPrefix+jobID, updates).Err(); err != nil {
		return fmt.Errorf("set status %s: %w", jobID, err)
	}
	return nil
}

// GetStatus returns the status snapshot, or nil when the job is unknown or
// its TTL has expired.
func (b *RedisBroker) GetStatus(ctx context.Context, jobID string) (*JobStatus, error) {
	fields, err := b.client.HGetAll(ctx, jobKeyPrefix+jobID).Result()
	if err != nil {
		return nil, fmt.Errorf("get status %s: %w", jobID, err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	st := &JobStatus{
		ID:     jobID,
		Status: constants.JobStatus(fields["status"]),
		Queue:  fields["queue"],
		Error:  fields["error"],
	}
	if raw, ok := fields["result"]; ok && raw != "" {
		st.Result = json.RawMessage(raw)
	}
	return st, nil
}

// Publish sends an envelope on a channel, fire and forget. Subscribers
// connected during publish receive it at least once; later subscribers never
// see it.
func (b *RedisBroker) Publish(ctx context.Context, channel string, env Envelope) error {
	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}
	if err := b.client.Publish(ctx, channelKeyPrefix+channel, raw).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", channel, err)
	}
	return nil
}

// Subscribe returns a stream of envelopes from a channel. Malformed messages
// are skipped. The returned stop function unsubscribes and closes the stream;
// cancelling ctx does the same.
func (b *RedisBroker) Subscribe(ctx context.Context, channel string) (<-chan Envelope, func()) {
	pubsub := b.client.Subscribe(ctx, channelKeyPrefix+channel)
	out := make(chan Envelope)

	go func() {
		defer close(out)
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var env Envelope
				if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
					b.logger.Warn("skipping malformed pubsub message", "channel", channel, "error", err)
					continue
				}
				select {
				case out <- env:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	stop := func() { _ = pubsub.Close() }
	return out, stop
}

// CacheEmbedding stores a vector for frequently embedded text, keyed by
// content hash.
func (b *RedisBroker) CacheEmbedding(ctx context.Context, text string, embedding []float32, ttl time.Duration) error {
	raw, err := json.Marshal(embedding)
	if err != nil {
		return fmt.Errorf("encode embedding: %w", err)
	}
	if err := b.client.Set(ctx, embeddingKey(text), raw, ttl).Err(); err != nil {
		return fmt.Errorf("cache embedding: %w", err)
	}
	return nil
}

// CachedEmbedding returns a previously cached vector, or nil on miss.
func (b *RedisBroker) CachedEmbedding(ctx context.Context, text string) ([]float32, error) {
	raw, err := b.client.Get(ctx, embeddingKey(text)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read embedding cache: %w", err)
	}
	var embedding []float32
	if err := json.Unmarshal([]byte(raw), &embedding); err != nil {
		return nil, nil
	}
	return embedding, nil
}

func embeddingKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return embeddingKeyPrefix + hex.EncodeToString(sum[:])
}
