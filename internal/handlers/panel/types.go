package panel

import (
	"encoding/json"

	"github.com/KirkDiggler/initiative-tracker/internal/models"
	"github.com/KirkDiggler/initiative-tracker/internal/services/counting"
	"github.com/KirkDiggler/initiative-tracker/internal/services/spotlight"
	"github.com/KirkDiggler/initiative-tracker/internal/services/zipper"
)

// Tracker modes reported in state responses
const (
	ModeCounting = "counting"
	ModeZipper   = "zipper"
)

// StateResponse is the combined panel snapshot
type StateResponse struct {
	Mode     string                   `json:"mode"`
	Settings models.Settings          `json:"settings"`
	Counting *counting.GetStateOutput `json:"counting,omitempty"`
	Zipper   *zipper.GetStateOutput   `json:"zipper,omitempty"`
}

// SettingsRequest carries a partial settings update; unknown keys are
// rejected
type SettingsRequest map[string]json.RawMessage

// AdvanceRequest selects the advance direction
type AdvanceRequest struct {
	Direction string `json:"direction"`
}

// SetCountRequest carries a participant's new count
type SetCountRequest struct {
	Count string `json:"count"`
}

// ToggleReadyRequest carries a zipper ready toggle
type ToggleReadyRequest struct {
	ParticipantID string `json:"participantId"`
	Ready         bool   `json:"ready"`
}

// ReorderRequest carries a drag reorder. TargetID is another participant's
// id or the group divider marker.
type ReorderRequest struct {
	MovedID  string `json:"movedId"`
	TargetID string `json:"targetId"`
}

// ResetRequest carries a zipper round reset
type ResetRequest struct {
	Role string `json:"role"`
}

// ErrorResponse is the error body returned by every endpoint
type ErrorResponse struct {
	Error string `json:"error"`
}

// Notification envelope kinds relayed over the panel socket
const (
	NotificationItems     = "items"
	NotificationMetadata  = "metadata"
	NotificationSpotlight = "spotlight"
)

// Notification is the envelope relayed to panels over the socket
type Notification struct {
	Type  string           `json:"type"`
	Scope string           `json:"scope,omitempty"`
	Event *spotlight.Event `json:"event,omitempty"`
}
