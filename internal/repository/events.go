package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
)

// SessionEvents fans session snapshots out to every subscriber of a session,
// whichever instance the subscriber is connected to.
type SessionEvents interface {
	Publish(ctx context.Context, session *entity.Session) error
	Subscribe(ctx context.Context, id string) (<-chan *entity.Session, func() error, error)
}

type redisEvents struct {
	logger *slog.Logger
	client *redis.Client
}

func NewSessionEvents(logger *slog.Logger, client *redis.Client) SessionEvents {
	return &redisEvents{
		logger: logger.With("component", "session-events"),
		client: client,
	}
}

func eventsChannel(id string) string {
	return "session:" + id + ":events"
}

func (that *redisEvents) Publish(ctx context.Context, session *entity.Session) error {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("could not marshal session: %w", err)
	}

	if err = that.client.Publish(ctx, eventsChannel(session.ID), sessionJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish session: %w", err)
	}

	return nil
}

// Subscribe returns a channel of snapshots for the session once Redis has
// confirmed the subscription. The channel is closed when ctx is done or the
// returned close function is called.
func (that *redisEvents) Subscribe(ctx context.Context, id string) (<-chan *entity.Session, func() error, error) {
	log := that.logger.With("method", "Subscribe", "sessionID", id)

	pubsub := that.client.Subscribe(ctx, eventsChannel(id))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to session events: %w", err)
	}

	messages := pubsub.Channel()
	out := make(chan *entity.Session, 1)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				if err := pubsub.Close(); err != nil {
					log.Debug("failed to close subscription", "error", err)
				}
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				var session entity.Session
				if err := json.Unmarshal([]byte(msg.Payload), &session); err != nil {
					log.Error("failed to unmarshal session event", "error", err)
					continue
				}

				select {
				case out <- &session:
				case <-ctx.Done():
				}
			}
		}
	}()

	return out, pubsub.Close, nil
}
