package counting

import (
	"github.com/KirkDiggler/initiative-tracker/internal/models"
	itemsRepo "github.com/KirkDiggler/initiative-tracker/internal/repositories/items"
	metadataRepo "github.com/KirkDiggler/initiative-tracker/internal/repositories/metadata"
	"github.com/KirkDiggler/initiative-tracker/internal/services/spotlight"
)

// Direction selects which way the active cursor moves
type Direction string

const (
	// DirectionNext advances to the following participant
	DirectionNext Direction = "next"

	// DirectionPrevious retreats to the preceding participant
	DirectionPrevious Direction = "previous"
)

// Config holds configuration for the counting sequencer
type Config struct {
	// Repository dependencies
	ItemRepo     itemsRepo.Repository
	MetadataRepo metadataRepo.Repository

	// Side channel for activation effects
	Spotlight spotlight.Service
}

// SortInput contains parameters for sorting the order
type SortInput struct {
}

// SortOutput contains the result of sorting the order
type SortOutput struct {
	// Participants is the new display order
	Participants []*models.Participant

	// ActiveID is the participant activated by the sort, empty when the
	// order is empty
	ActiveID string
}

// AdvanceInput contains parameters for moving the active cursor
type AdvanceInput struct {
	Direction Direction
}

// AdvanceOutput contains the result of moving the active cursor
type AdvanceOutput struct {
	// ActiveID is the newly active participant, empty when the order is
	// empty
	ActiveID string

	// RoundCount is the round number after any wrap adjustment
	RoundCount int
}

// SetCountInput contains parameters for updating a participant's count
type SetCountInput struct {
	ParticipantID string
	Count         string
}

// SetCountOutput contains the result of updating a participant's count
type SetCountOutput struct {
}

// GetStateInput contains parameters for reading sequencer state
type GetStateInput struct {
	// VisibleOnly filters out participants hidden from players
	VisibleOnly bool
}

// GetStateOutput contains the sequencer state
type GetStateOutput struct {
	// Participants is the current display order
	Participants []*models.Participant

	// RoundCount is the current round number
	RoundCount int
}
