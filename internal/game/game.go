// Package game wires the simulation and pause screens into a state stack.
package game

import (
	"fmt"

	"lifefade/internal/life"
	"lifefade/internal/state"
)

const (
	// SimulatingID runs the automaton.
	SimulatingID state.ID = "simulating"
	// PausedID freezes everything below it.
	PausedID state.ID = "paused"
)

// Register installs the factories for both states. opts configures every
// Simulating instance the stack builds.
func Register(stack *state.Stack, opts life.Options) error {
	err := stack.Register(SimulatingID, func(_ state.ID, ctx state.Context) (state.State, error) {
		return NewSimulating(ctx, opts)
	})
	if err != nil {
		return fmt.Errorf("register %s: %w", SimulatingID, err)
	}
	err = stack.Register(PausedID, func(_ state.ID, ctx state.Context) (state.State, error) {
		return NewPaused(ctx), nil
	})
	if err != nil {
		return fmt.Errorf("register %s: %w", PausedID, err)
	}
	return nil
}

// Start registers the states and pushes the simulation onto the empty stack.
func Start(stack *state.Stack, opts life.Options) (*Simulating, error) {
	if err := Register(stack, opts); err != nil {
		return nil, err
	}
	stack.RequestPush(SimulatingID)
	if err := stack.ApplyPending(); err != nil {
		return nil, err
	}
	sim, ok := state.StateOf[*Simulating](stack)
	if !ok {
		return nil, fmt.Errorf("game: %s missing after push", SimulatingID)
	}
	return sim, nil
}
