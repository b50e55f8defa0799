package items

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/initiative-tracker/internal/repositories/items Repository

import (
	"context"
)

// Repository defines the interface for scene item persistence
type Repository interface {
	// SaveItem persists a scene item
	SaveItem(ctx context.Context, input *SaveItemInput) error

	// SaveParticipant persists a participant as a tracker-owned scene item
	SaveParticipant(ctx context.Context, input *SaveParticipantInput) error

	// GetParticipants retrieves every item carrying tracker metadata
	GetParticipants(ctx context.Context, input *GetParticipantsInput) (*GetParticipantsOutput, error)

	// UpdateParticipants applies a batch mutation to the items matching the
	// given ids, aborting without writing when the ids no longer line up
	// with the store contents
	UpdateParticipants(ctx context.Context, input *UpdateParticipantsInput) error

	// DeleteItem removes an item
	DeleteItem(ctx context.Context, input *DeleteItemInput) error

	// OnParticipantsChanged invokes the handler whenever the item set
	// changes, until the subscription is closed
	OnParticipantsChanged(ctx context.Context, input *OnParticipantsChangedInput) (*Subscription, error)
}
