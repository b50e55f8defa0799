package counting

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/initiative-tracker/internal/services/counting Service

import (
	"context"
)

// Service defines the counting-initiative sequencer: a linear, numerically
// sorted turn order with a single active cursor
type Service interface {
	// Sort orders participants by their count and activates the first one
	Sort(ctx context.Context, input *SortInput) (*SortOutput, error)

	// Advance moves the active cursor forward or backward, wrapping around
	// the order and tracking the round count
	Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error)

	// SetCount updates a single participant's count
	SetCount(ctx context.Context, input *SetCountInput) (*SetCountOutput, error)

	// GetState returns the current display order and round count
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)
}
