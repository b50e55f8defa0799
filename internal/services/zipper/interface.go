package zipper

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/initiative-tracker/internal/services/zipper Service

import (
	"context"
)

// Service defines the zipper sequencer: a two-partition, manually ordered
// turn structure with ready/unready toggling and an undo stack
type Service interface {
	// ToggleReady marks a participant as having acted (ready false) or
	// undoes that (ready true), restoring the prior active participant
	ToggleReady(ctx context.Context, input *ToggleReadyInput) (*ToggleReadyOutput, error)

	// Reset starts a fresh round: everyone ready, nobody active, history
	// cleared. Players may only reset a finished round; the GM always can.
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)

	// Reorder moves a participant to a new group position following a drag
	Reorder(ctx context.Context, input *ReorderInput) (*ReorderOutput, error)

	// GetState returns both partitions, the undo stack, and whether the
	// round is finished
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)
}
