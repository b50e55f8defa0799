package models

import (
	"time"
)

// Group partitions used by zipper initiative
const (
	// GroupParty holds the player characters
	GroupParty = 0

	// GroupAdversaries holds everything the party is up against
	GroupAdversaries = 1
)

// GroupIndexUnresolved marks a participant that has not been assigned a
// position within its group yet. The reindexer sorts it to the end of
// its group.
const GroupIndexUnresolved = -1

// Participant represents a combat entity tracked for initiative
type Participant struct {
	// ID is the stable identifier of the underlying scene item
	ID string `json:"id"`

	// Name is the display name shown in the tracker
	Name string `json:"name"`

	// ImageURL points at the token art, opaque to the tracker
	ImageURL string `json:"imageUrl"`

	// Visible controls hidden-from-players filtering
	Visible bool `json:"visible"`

	// Count is the string-encoded initiative score used by counting mode
	Count string `json:"count"`

	// Active indicates whose turn it currently is
	Active bool `json:"active"`

	// Ready indicates the participant has not acted this round (zipper mode)
	Ready bool `json:"ready"`

	// Group is the partition the participant belongs to (zipper mode)
	Group int `json:"group"`

	// GroupIndex is the zero-based position within the group (zipper mode)
	GroupIndex int `json:"groupIndex"`

	// UpdatedAt is when the participant was last written to the store
	UpdatedAt time.Time `json:"updatedAt"`
}
