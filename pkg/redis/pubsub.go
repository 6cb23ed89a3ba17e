package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// PublishClient is the subset of go-redis used to publish messages
type PublishClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

var _ PublishClient = (*redis.Client)(nil)

// PubSubConfig defines the configuration options for Redis publishing
type PubSubConfig struct {
	// ChannelNamespace is the namespace for organizing channels
	ChannelNamespace string
}

// NewPubSubConfig creates a new pub/sub configuration with default values
func NewPubSubConfig() *PubSubConfig {
	return &PubSubConfig{}
}

// WithChannelNamespace sets the namespace for organizing channels
func (psc *PubSubConfig) WithChannelNamespace(namespace string) *PubSubConfig {
	psc.ChannelNamespace = namespace
	return psc
}

// Publisher handles Redis publishing operations
type Publisher struct {
	client PublishClient
	config *PubSubConfig
}

// NewPublisher creates a new publisher
func NewPublisher(client PublishClient, config *PubSubConfig) *Publisher {
	if config == nil {
		config = NewPubSubConfig()
	}
	return &Publisher{
		client: client,
		config: config,
	}
}

// ChannelName returns the full channel name using the ChannelNamespace::channel format
func (p *Publisher) ChannelName(channel string) string {
	if p.config.ChannelNamespace != "" {
		return p.config.ChannelNamespace + "::" + channel
	}
	return channel
}

// Publish publishes a message to a channel and returns the number of receivers
func (p *Publisher) Publish(ctx context.Context, channel string, message interface{}) (int64, error) {
	return p.client.Publish(ctx, p.ChannelName(channel), message).Result()
}

// PublishJSON publishes a JSON message to a channel and returns the number of receivers
func (p *Publisher) PublishJSON(ctx context.Context, channel string, message interface{}) (int64, error) {
	jsonData, err := json.Marshal(message)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal message to JSON: %w", err)
	}
	return p.client.Publish(ctx, p.ChannelName(channel), jsonData).Result()
}
