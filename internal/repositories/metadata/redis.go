package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/initiative-tracker/internal/models"
)

const (
	metadataKeyPrefix = "metadata:"
	channelPrefix     = "initiative:metadata:"
)

// ChannelFor returns the notification channel for a scope
func ChannelFor(scope Scope) string {
	return channelPrefix + string(scope) + ":changed"
}

// Config holds configuration for the Redis metadata repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis. Each
// scope is a hash of namespaced key to JSON-encoded value; last write wins.
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed metadata repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// Get retrieves the full metadata blob for a scope. A missing scope reads
// back as empty metadata, never as an error.
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.Scope == "" {
		return nil, errors.New("input and scope cannot be empty")
	}

	values, err := r.client.HGetAll(ctx, metadataKeyPrefix+string(input.Scope)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata: %w", err)
	}

	meta := make(models.Metadata, len(values))
	for key, value := range values {
		meta[key] = json.RawMessage(value)
	}

	return &GetOutput{Metadata: meta}, nil
}

// Set merges the given values into a scope's metadata and notifies
// subscribers
func (r *redisRepository) Set(ctx context.Context, input *SetInput) error {
	if input == nil || input.Scope == "" {
		return errors.New("input and scope cannot be empty")
	}
	if len(input.Values) == 0 {
		return nil
	}

	fields := make([]interface{}, 0, len(input.Values)*2)
	for key, value := range input.Values {
		valueJSON, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to marshal metadata value %q: %w", key, err)
		}
		fields = append(fields, key, string(valueJSON))
	}

	pipe := r.client.Pipeline()
	pipe.HSet(ctx, metadataKeyPrefix+string(input.Scope), fields...)
	pipe.Publish(ctx, ChannelFor(input.Scope), "changed")

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set metadata: %w", err)
	}

	return nil
}

// OnChanged subscribes to change notifications for a scope
func (r *redisRepository) OnChanged(ctx context.Context, input *OnChangedInput) (*Subscription, error) {
	if input == nil || input.Scope == "" || input.Handler == nil {
		return nil, errors.New("input, scope and handler cannot be empty")
	}

	pubsub := r.client.Subscribe(ctx, ChannelFor(input.Scope))
	if _, err := pubsub.Receive(ctx); err != nil {
		return nil, fmt.Errorf("failed to subscribe to metadata changes: %w", err)
	}

	go func() {
		for range pubsub.Channel() {
			input.Handler()
		}
	}()

	return &Subscription{close: pubsub.Close}, nil
}
