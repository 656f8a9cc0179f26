package notify

import (
	"context"
	"log/slog"

	"github.com/notesos/ingest/constants"
	"github.com/notesos/ingest/internal/broker"
)

// Relay forwards events published by workers through the broker's
// notification channel into the hub, so updates reach websocket clients on
// any notifier instance.
type Relay struct {
	broker broker.Broker
	hub    *Hub
	logger *slog.Logger
}

func NewRelay(b broker.Broker, hub *Hub, logger *slog.Logger) *Relay {
	if logger == nil {
		logger = slog.Default()
	}
	return &Relay{broker: b, hub: hub, logger: logger}
}

// Run consumes the notification channel until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) error {
	envelopes, stop := r.broker.Subscribe(ctx, constants.NotificationChannel)
	defer stop()

	r.logger.Info("relay started", "channel", constants.NotificationChannel)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case env, ok := <-envelopes:
			if !ok {
				return nil
			}
			if env.RoomID == "" {
				r.logger.Warn("dropping event without room", "type", env.Message.Type)
				continue
			}
			r.hub.Broadcast(env.RoomID, env.Message, nil)
		}
	}
}
