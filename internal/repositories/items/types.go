package items

import (
	"encoding/json"
	"time"

	"github.com/KirkDiggler/initiative-tracker/internal/models"
)

// Item is a stored scene item. Tracker state lives under the namespaced
// plugin metadata key; items without it belong to other extensions and are
// never surfaced as participants.
type Item struct {
	ID        string                     `json:"id"`
	Name      string                     `json:"name"`
	ImageURL  string                     `json:"imageUrl"`
	Visible   bool                       `json:"visible"`
	Metadata  map[string]json.RawMessage `json:"metadata"`
	UpdatedAt time.Time                  `json:"updatedAt"`
}

type SaveItemInput struct {
	Item *Item
}

type SaveParticipantInput struct {
	Participant *models.Participant
}

type GetParticipantsInput struct {
	// VisibleOnly filters out participants hidden from players
	VisibleOnly bool
}

type GetParticipantsOutput struct {
	Participants []*models.Participant
}

type UpdateParticipantsInput struct {
	// IDs is the ordered list of items to mutate
	IDs []string

	// Mutate receives the participants in the same order as IDs and
	// mutates them in place
	Mutate func(participants []*models.Participant)
}

type DeleteItemInput struct {
	ItemID string
}

type OnParticipantsChangedInput struct {
	// Handler runs on every item-set change notification
	Handler func()
}

// Subscription is a handle on a change feed. Closing it stops the handler.
type Subscription struct {
	close func() error
}

// Close tears down the subscription
func (s *Subscription) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
