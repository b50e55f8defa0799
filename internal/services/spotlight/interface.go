package spotlight

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/initiative-tracker/internal/services/spotlight Service

import (
	"context"
)

// Service is the fire-and-forget visual side channel. Events are published
// for panels to act on and are never read back by the tracker.
type Service interface {
	// Select asks panels to select a participant's token
	Select(ctx context.Context, input *SelectInput) error

	// Label asks panels to attach a turn label to a participant's token
	Label(ctx context.Context, input *LabelInput) error

	// ClearLabel asks panels to remove the turn label
	ClearLabel(ctx context.Context, input *ClearLabelInput) error

	// OnEvent invokes the handler for every published event, until the
	// subscription is closed
	OnEvent(ctx context.Context, input *OnEventInput) (*Subscription, error)
}
