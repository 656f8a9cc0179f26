package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/notesos/ingest/gen/ent"
	"github.com/notesos/ingest/gen/ent/topic"
	"github.com/notesos/ingest/internal/common"
	"github.com/notesos/ingest/internal/entity"
	"github.com/notesos/ingest/internal/utils"
)

// TopicRepository resolves topics owned by the surrounding platform. The
// pipeline only reads them, to anchor uploads before a job is accepted.
type TopicRepository interface {
	GetTopic(ctx context.Context, id uuid.UUID) (*entity.Topic, error)
}

type topicRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTopicRepository(client *ent.Client, logger *slog.Logger) TopicRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &topicRepository{client: client, logger: logger}
}

func (r *topicRepository) GetTopic(ctx context.Context, id uuid.UUID) (*entity.Topic, error) {
	t, err := r.client.Topic.Query().Where(topic.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToTopic(t), nil
}
