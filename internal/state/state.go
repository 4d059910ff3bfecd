// Package state implements a stack of application states whose structural
// changes are queued during Update and applied once the pass has finished.
package state

import (
	"lifefade/internal/core"
	"lifefade/internal/input"
	"lifefade/internal/render"
)

// State is one layer of the application.
type State interface {
	// Update advances the state by delta seconds. Returning false stops the
	// states below it from being updated this frame.
	Update(delta float64) bool
	// Draw emits the state's visuals. It is called on every state, bottom-up.
	Draw(sink render.Sink)
}

// ID identifies a registered state factory.
type ID string

// None is the zero ID, used by changes that carry no target.
const None ID = ""

// ChangeKind enumerates the structural changes a state can request.
type ChangeKind int

const (
	Push ChangeKind = iota
	Pop
	Clear
)

func (k ChangeKind) String() string {
	switch k {
	case Push:
		return "push"
	case Pop:
		return "pop"
	case Clear:
		return "clear"
	default:
		return "unknown"
	}
}

// Change is a queued structural mutation.
type Change struct {
	Kind ChangeKind
	ID   ID
}

// Requester accepts structural change requests.
type Requester interface {
	RequestChange(c Change)
}

// Context is shared with every factory. It is read-only after the stack is
// built.
type Context struct {
	core.Context
	Input input.Edges
	Stack Requester
}

// Factory builds a new state for id.
type Factory func(id ID, ctx Context) (State, error)
