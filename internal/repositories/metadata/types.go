package metadata

import (
	"github.com/KirkDiggler/initiative-tracker/internal/models"
)

// Scope selects which shared metadata blob an operation addresses
type Scope string

const (
	// ScopeRoom holds persistent cross-session settings
	ScopeRoom Scope = "room"

	// ScopeScene holds per-document state: order map, round count,
	// previous-turn stack
	ScopeScene Scope = "scene"
)

type GetInput struct {
	Scope Scope
}

type GetOutput struct {
	Metadata models.Metadata
}

type SetInput struct {
	Scope Scope

	// Values maps namespaced keys to values that will be JSON encoded and
	// merged into the scope's existing metadata
	Values map[string]interface{}
}

type OnChangedInput struct {
	Scope Scope

	// Handler runs on every change notification for the scope
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
