package zipper

import (
	"github.com/KirkDiggler/initiative-tracker/internal/models"
	itemsRepo "github.com/KirkDiggler/initiative-tracker/internal/repositories/items"
	metadataRepo "github.com/KirkDiggler/initiative-tracker/internal/repositories/metadata"
	"github.com/KirkDiggler/initiative-tracker/internal/services/spotlight"
)

// Config holds configuration for the zipper sequencer
type Config struct {
	// Repository dependencies
	ItemRepo     itemsRepo.Repository
	MetadataRepo metadataRepo.Repository

	// Side channel for activation effects
	Spotlight spotlight.Service
}

// ToggleReadyInput contains parameters for a ready toggle
type ToggleReadyInput struct {
	ParticipantID string

	// Ready false marks the participant as having acted and makes it the
	// active one; Ready true undoes that
	Ready bool
}

// ToggleReadyOutput contains the result of a ready toggle
type ToggleReadyOutput struct {
	// ActiveID is the participant active after the toggle, empty when the
	// undo emptied the history
	ActiveID string

	// PreviousStack is the activation history after the toggle
	PreviousStack []string
}

// ResetInput contains parameters for a round reset
type ResetInput struct {
	// Role of the requester; players may only reset a finished round
	Role models.Role
}

// ResetOutput contains the result of a round reset
type ResetOutput struct {
}

// ReorderInput contains parameters for a drag reorder
type ReorderInput struct {
	// MovedID is the dragged participant
	MovedID string

	// TargetID is the drop target: another participant's id or
	// initiative.GroupDivider
	TargetID string
}

// ReorderOutput contains the result of a drag reorder
type ReorderOutput struct {
	// Party is the first partition in display order
	Party []*models.Participant

	// Adversaries is the second partition in display order
	Adversaries []*models.Participant
}

// GetStateInput contains parameters for reading sequencer state
type GetStateInput struct {
	// VisibleOnly filters out participants hidden from players
	VisibleOnly bool
}

// GetStateOutput contains the sequencer state
type GetStateOutput struct {
	// Party is the first partition in display order
	Party []*models.Participant

	// Adversaries is the second partition in display order
	Adversaries []*models.Participant

	// PreviousStack is the activation history, most recent last
	PreviousStack []string

	// RoundCount is the current round number
	RoundCount int

	// RoundFinished is true when no participant is still ready
	RoundFinished bool
}
