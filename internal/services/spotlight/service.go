package spotlight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// ChannelSpotlight carries spotlight events to connected panels
const ChannelSpotlight = "initiative:spotlight"

// turnLabelText is the text panels render on the active token's label
const turnLabelText = "Your Turn!"

// Config holds configuration for the spotlight service
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// service implements the Service interface by publishing events on a Redis
// channel
type service struct {
	client *redis.Client
}

// New creates a new spotlight service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	return &service{
		client: cfg.RedisClient,
	}, nil
}

// Select asks panels to select a participant's token
func (s *service) Select(ctx context.Context, input *SelectInput) error {
	if input == nil || input.ParticipantID == "" {
		return errors.New("input and participant ID cannot be empty")
	}

	return s.publish(ctx, &Event{
		Kind:          EventSelect,
		ParticipantID: input.ParticipantID,
	})
}

// Label asks panels to attach the turn label to a participant's token
func (s *service) Label(ctx context.Context, input *LabelInput) error {
	if input == nil || input.ParticipantID == "" {
		return errors.New("input and participant ID cannot be empty")
	}

	return s.publish(ctx, &Event{
		Kind:          EventLabel,
		ParticipantID: input.ParticipantID,
		Text:          turnLabelText,
	})
}

// ClearLabel asks panels to remove the turn label
func (s *service) ClearLabel(ctx context.Context, input *ClearLabelInput) error {
	return s.publish(ctx, &Event{
		Kind: EventClearLabel,
	})
}

// OnEvent subscribes to the spotlight event feed
func (s *service) OnEvent(ctx context.Context, input *OnEventInput) (*Subscription, error) {
	if input == nil || input.Handler == nil {
		return nil, errors.New("input and handler cannot be nil")
	}

	pubsub := s.client.Subscribe(ctx, ChannelSpotlight)
	if _, err := pubsub.Receive(ctx); err != nil {
		return nil, fmt.Errorf("failed to subscribe to spotlight events: %w", err)
	}

	go func() {
		for msg := range pubsub.Channel() {
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("Dropping malformed spotlight event: %v", err)
				continue
			}
			input.Handler(&event)
		}
	}()

	return &Subscription{close: pubsub.Close}, nil
}

func (s *service) publish(ctx context.Context, event *Event) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal spotlight event: %w", err)
	}

	if err := s.client.Publish(ctx, ChannelSpotlight, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish spotlight event: %w", err)
	}

	return nil
}
