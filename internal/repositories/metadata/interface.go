package metadata

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/initiative-tracker/internal/repositories/metadata Repository

import (
	"context"
)

// Repository defines the interface for shared document metadata. Panels
// treat the store as the single source of truth and rebuild local state on
// every change notification.
type Repository interface {
	// Get retrieves the full metadata blob for a scope
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Set merges the given values into a scope's metadata
	Set(ctx context.Context, input *SetInput) error

	// OnChanged invokes the handler whenever a scope's metadata changes,
	// until the subscription is closed
	OnChanged(ctx context.Context, input *OnChangedInput) (*Subscription, error)
}
