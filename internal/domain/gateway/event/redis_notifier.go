package event

import (
	"context"
	"fmt"

	"go-widget/pkg/log"
	"go-widget/pkg/redis"

	"go.uber.org/zap"
)

// Channel every widget event is published on, prefixed by the publisher namespace.
const Channel = "widget-events"

type redisNotifier struct {
	publisher *redis.Publisher
}

// NewRedisNotifier publishes events as JSON over redis pub/sub
func NewRedisNotifier(publisher *redis.Publisher) Notifier {
	return &redisNotifier{publisher: publisher}
}

func (n *redisNotifier) Notify(ctx context.Context, evt Event) error {
	receivers, err := n.publisher.PublishJSON(ctx, Channel, evt)
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", evt.Type, err)
	}

	log.Debug("Event published",
		zap.String("channel", n.publisher.ChannelName(Channel)),
		zap.String("type", string(evt.Type)),
		zap.String("session_id", evt.SessionID),
		zap.Int64("receivers", receivers))
	return nil
}

type logNotifier struct{}

// NewLogNotifier only writes events to the application log
func NewLogNotifier() Notifier {
	return logNotifier{}
}

func (logNotifier) Notify(_ context.Context, evt Event) error {
	log.Info("Widget event",
		zap.String("type", string(evt.Type)),
		zap.String("session_id", evt.SessionID),
		zap.Any("payload", evt.Payload))
	return nil
}
