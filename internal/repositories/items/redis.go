package items

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/initiative-tracker/internal/common/clock"
	"github.com/KirkDiggler/initiative-tracker/internal/models"
)

const (
	// Key prefixes for Redis
	itemKeyPrefix = "item:"
	itemIndexKey  = "items"

	// ChannelItemsChanged carries a notification for every item-set write
	ChannelItemsChanged = "initiative:items:changed"
)

// metadataKey is the namespaced item metadata field owned by the tracker
var metadataKey = models.PluginKey("metadata")

// ErrItemMismatch is returned when the ids supplied to a batch update no
// longer line up with the store contents. It indicates a race with a
// concurrent mutation; the update writes nothing.
var ErrItemMismatch = errors.New("item mismatch, could not update items")

// Config holds configuration for the Redis items repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock used to stamp writes; defaults to the system clock
	Clock clock.Clock
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed items repository
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

	repoClock := cfg.Clock
	if repoClock == nil {
		repoClock = &clock.DefaultClock{}
	}

	return &redisRepository{
		client: cfg.RedisClient,
		clock:  repoClock,
	}, nil
}

// SaveItem persists a scene item to Redis
func (r *redisRepository) SaveItem(ctx context.Context, input *SaveItemInput) error {
	if input == nil || input.Item == nil {
		return errors.New("input and item cannot be nil")
	}
	if input.Item.ID == "" {
		return errors.New("item ID cannot be empty")
	}

	item := *input.Item
	item.UpdatedAt = r.clock.Now()

	itemJSON, err := json.Marshal(&item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, itemKeyPrefix+item.ID, itemJSON, 0)

	// Keep the original insertion position on repeat saves so residual
	// ordering stays stable
	pipe.ZAddNX(ctx, itemIndexKey, redis.Z{
		Score:  float64(item.UpdatedAt.UnixNano()),
		Member: item.ID,
	})

	pipe.Publish(ctx, ChannelItemsChanged, "saved")

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}

	return nil
}

// SaveParticipant persists a participant as a tracker-owned scene item,
// preserving any metadata other extensions have attached to the item.
func (r *redisRepository) SaveParticipant(ctx context.Context, input *SaveParticipantInput) error {
	if input == nil || input.Participant == nil {
		return errors.New("input and participant cannot be nil")
	}

	existing, err := r.getItem(ctx, input.Participant.ID)
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	item := applyParticipant(existing, input.Participant)

	return r.SaveItem(ctx, &SaveItemInput{Item: item})
}

// GetParticipants retrieves every item carrying tracker metadata, in item
// insertion order
func (r *redisRepository) GetParticipants(ctx context.Context, input *GetParticipantsInput) (*GetParticipantsOutput, error) {
	if input == nil {
		input = &GetParticipantsInput{}
	}

	ids, err := r.client.ZRange(ctx, itemIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	participants := make([]*models.Participant, 0, len(ids))
	for _, id := range ids {
		item, err := r.getItem(ctx, id)
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Deleted between the index read and the item read
				continue
			}
			return nil, err
		}

		participant, ok := participantFromItem(item)
		if !ok {
			continue
		}
		if input.VisibleOnly && !participant.Visible {
			continue
		}

		participants = append(participants, participant)
	}

	return &GetParticipantsOutput{Participants: participants}, nil
}

// UpdateParticipants applies a batch mutation to the items matching the
// given ids. If any id no longer resolves to a tracker item the whole
// update aborts with ErrItemMismatch and nothing is written.
func (r *redisRepository) UpdateParticipants(ctx context.Context, input *UpdateParticipantsInput) error {
	if input == nil || input.Mutate == nil {
		return errors.New("input and mutate function cannot be nil")
	}

	itemsByIndex := make([]*Item, 0, len(input.IDs))
	participants := make([]*models.Participant, 0, len(input.IDs))
	for _, id := range input.IDs {
		item, err := r.getItem(ctx, id)
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrItemMismatch
			}
			return err
		}
		if item.ID != id {
			return ErrItemMismatch
		}

		participant, ok := participantFromItem(item)
		if !ok {
			return ErrItemMismatch
		}

		itemsByIndex = append(itemsByIndex, item)
		participants = append(participants, participant)
	}

	input.Mutate(participants)

	now := r.clock.Now()
	pipe := r.client.Pipeline()
	for i, participant := range participants {
		item := applyParticipant(itemsByIndex[i], participant)
		item.UpdatedAt = now

		itemJSON, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal item: %w", err)
		}
		pipe.Set(ctx, itemKeyPrefix+item.ID, itemJSON, 0)
	}
	pipe.Publish(ctx, ChannelItemsChanged, "updated")

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update items: %w", err)
	}

	return nil
}

// DeleteItem removes an item from Redis
func (r *redisRepository) DeleteItem(ctx context.Context, input *DeleteItemInput) error {
	if input == nil || input.ItemID == "" {
		return errors.New("input and item ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, itemKeyPrefix+input.ItemID)
	pipe.ZRem(ctx, itemIndexKey, input.ItemID)
	pipe.Publish(ctx, ChannelItemsChanged, "deleted")

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	return nil
}

// OnParticipantsChanged subscribes to item-set change notifications
func (r *redisRepository) OnParticipantsChanged(ctx context.Context, input *OnParticipantsChangedInput) (*Subscription, error) {
	if input == nil || input.Handler == nil {
		return nil, errors.New("input and handler cannot be nil")
	}

	pubsub := r.client.Subscribe(ctx, ChannelItemsChanged)
	if _, err := pubsub.Receive(ctx); err != nil {
		return nil, fmt.Errorf("failed to subscribe to item changes: %w", err)
	}

	go func() {
		for range pubsub.Channel() {
			input.Handler()
		}
	}()

	return &Subscription{close: pubsub.Close}, nil
}

func (r *redisRepository) getItem(ctx context.Context, id string) (*Item, error) {
	itemJSON, err := r.client.Get(ctx, itemKeyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	var item Item
	if err := json.Unmarshal([]byte(itemJSON), &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}

	return &item, nil
}

// trackerMetadata is the wire shape of the tracker-owned item metadata.
// Count and Active are required; the rest default when absent.
type trackerMetadata struct {
	Count      *string `json:"count"`
	Active     *bool   `json:"active"`
	Ready      *bool   `json:"ready,omitempty"`
	Group      *int    `json:"group,omitempty"`
	GroupIndex *int    `json:"groupIndex,omitempty"`
}

// participantFromItem decodes an item into a participant. The second
// return is false when the item carries no valid tracker metadata and so
// belongs to some other extension.
func participantFromItem(item *Item) (*models.Participant, bool) {
	raw, ok := item.Metadata[metadataKey]
	if !ok {
		return nil, false
	}

	var meta trackerMetadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, false
	}
	if meta.Count == nil || meta.Active == nil {
		return nil, false
	}

	participant := &models.Participant{
		ID:         item.ID,
		Name:       item.Name,
		ImageURL:   item.ImageURL,
		Visible:    item.Visible,
		Count:      *meta.Count,
		Active:     *meta.Active,
		Ready:      true,
		Group:      models.GroupAdversaries,
		GroupIndex: models.GroupIndexUnresolved,
		UpdatedAt:  item.UpdatedAt,
	}
	if meta.Ready != nil {
		participant.Ready = *meta.Ready
	}
	if meta.Group != nil {
		participant.Group = *meta.Group
	}
	if meta.GroupIndex != nil {
		participant.GroupIndex = *meta.GroupIndex
	}

	return participant, true
}

// applyParticipant writes participant state onto an item, creating the item
// when it does not exist yet. Metadata owned by other extensions is kept.
func applyParticipant(existing *Item, participant *models.Participant) *Item {
	item := existing
	if item == nil {
		item = &Item{ID: participant.ID}
	}
	if item.Metadata == nil {
		item.Metadata = make(map[string]json.RawMessage)
	}

	item.Name = participant.Name
	item.ImageURL = participant.ImageURL
	item.Visible = participant.Visible

	meta := trackerMetadata{
		Count:      &participant.Count,
		Active:     &participant.Active,
		Ready:      &participant.Ready,
		Group:      &participant.Group,
		GroupIndex: &participant.GroupIndex,
	}
	metaJSON, _ := json.Marshal(&meta)
	item.Metadata[metadataKey] = metaJSON

	return item
}
