package spotlight

// EventKind identifies a spotlight event
type EventKind string

const (
	// EventSelect selects a participant's token
	EventSelect EventKind = "select"

	// EventLabel attaches the turn label to a participant's token
	EventLabel EventKind = "label"

	// EventClearLabel removes the turn label
	EventClearLabel EventKind = "clear-label"
)

// Event is the wire shape published to panels
type Event struct {
	Kind          EventKind `json:"kind"`
	ParticipantID string    `json:"participantId,omitempty"`
	Text          string    `json:"text,omitempty"`
}

type SelectInput struct {
	ParticipantID string
}

type LabelInput struct {
	ParticipantID string
}

type ClearLabelInput struct {
}

type OnEventInput struct {
	// Handler runs for every published event
	Handler func(event *Event)
}

// Subscription is a handle on the event feed. Closing it stops the handler.
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
