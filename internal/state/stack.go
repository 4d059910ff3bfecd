package state

import (
	"errors"
	"fmt"
	"log/slog"

	"lifefade/internal/render"
)

var (
	// ErrDuplicateState is returned when an id is registered twice.
	ErrDuplicateState = errors.New("state: id already registered")
	// ErrRegistryClosed is returned when registering after the first Update.
	ErrRegistryClosed = errors.New("state: registry is closed once the stack runs")
	// ErrUnknownState is returned when pushing an id with no factory.
	ErrUnknownState = errors.New("state: id not registered")
	// ErrEmptyStack is returned when popping an empty stack.
	ErrEmptyStack = errors.New("state: pop on empty stack")
)

// Stack owns the active states, top last, and the pending-change queue. It is
// meant to be driven from a single goroutine.
type Stack struct {
	ctx       Context
	logger    *slog.Logger
	states    []State
	pending   []Change
	factories map[ID]Factory
	running   bool
}

// NewStack returns an empty stack. When ctx.Stack is nil it is set to the new
// stack so factories can hand it to their states.
func NewStack(ctx Context, logger *slog.Logger) *Stack {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Stack{ctx: ctx, logger: logger, factories: map[ID]Factory{}}
	if s.ctx.Stack == nil {
		s.ctx.Stack = s
	}
	return s
}

// Context returns the context handed to factories.
func (s *Stack) Context() Context { return s.ctx }

// Register adds the factory for id. Each id may be registered once, and only
// before the first Update.
func (s *Stack) Register(id ID, f Factory) error {
	switch {
	case s.running:
		return fmt.Errorf("%w: %q", ErrRegistryClosed, id)
	case id == None:
		return errors.New("state: cannot register the empty id")
	case f == nil:
		return fmt.Errorf("state: nil factory for %q", id)
	}
	if _, ok := s.factories[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateState, id)
	}
	s.factories[id] = f
	return nil
}

// RequestChange queues c. It is applied after the current or next Update
// pass, never immediately.
func (s *Stack) RequestChange(c Change) {
	s.pending = append(s.pending, c)
}

// RequestPush queues a push of id.
func (s *Stack) RequestPush(id ID) { s.RequestChange(Change{Kind: Push, ID: id}) }

// RequestPop queues a pop of the top state.
func (s *Stack) RequestPop() { s.RequestChange(Change{Kind: Pop, ID: None}) }

// RequestClear queues removal of every state.
func (s *Stack) RequestClear() { s.RequestChange(Change{Kind: Clear, ID: None}) }

// Update calls Update on each state from the top down, stopping after the
// first one that returns false, then applies the pending changes.
func (s *Stack) Update(delta float64) error {
	s.running = true
	for i := len(s.states) - 1; i >= 0; i-- {
		if !s.states[i].Update(delta) {
			break
		}
	}
	return s.ApplyPending()
}

// Draw calls Draw on every state in insertion order.
func (s *Stack) Draw(sink render.Sink) {
	for _, st := range s.states {
		st.Draw(sink)
	}
}

// ApplyPending applies the queued changes in request order. The queue is
// always emptied; on the first failing change the rest are dropped.
func (s *Stack) ApplyPending() error {
	pending := s.pending
	s.pending = nil
	for i, c := range pending {
		if err := s.apply(c); err != nil {
			if dropped := len(pending) - i - 1; dropped > 0 {
				s.logger.Warn("dropping queued state changes", "count", dropped, "error", err)
			}
			return err
		}
		s.logger.Debug("state change applied", "kind", c.Kind.String(), "id", string(c.ID), "depth", len(s.states))
	}
	return nil
}

func (s *Stack) apply(c Change) error {
	switch c.Kind {
	case Push:
		f, ok := s.factories[c.ID]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownState, c.ID)
		}
		st, err := f(c.ID, s.ctx)
		if err != nil {
			return fmt.Errorf("state: build %q: %w", c.ID, err)
		}
		s.states = append(s.states, st)
	case Pop:
		if len(s.states) == 0 {
			return ErrEmptyStack
		}
		s.states[len(s.states)-1] = nil
		s.states = s.states[:len(s.states)-1]
	case Clear:
		clear(s.states)
		s.states = s.states[:0]
	default:
		return fmt.Errorf("state: unknown change kind %d", c.Kind)
	}
	return nil
}

// Len returns the number of active states.
func (s *Stack) Len() int { return len(s.states) }

// Empty reports whether no state is active.
func (s *Stack) Empty() bool { return len(s.states) == 0 }

// Pending returns the number of queued changes.
func (s *Stack) Pending() int { return len(s.pending) }

// Top returns the most recently pushed state, or nil.
func (s *Stack) Top() State {
	if len(s.states) == 0 {
		return nil
	}
	return s.states[len(s.states)-1]
}

// StateOf returns the first state of type T, searching bottom-up.
func StateOf[T State](s *Stack) (T, bool) {
	for _, st := range s.states {
		if t, ok := st.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// InitTop applies any pending changes, then runs init on the top state if it
// is a T. It reports whether init ran.
func InitTop[T State](s *Stack, init func(T)) (bool, error) {
	if len(s.pending) > 0 {
		if err := s.ApplyPending(); err != nil {
			return false, err
		}
	}
	t, ok := s.Top().(T)
	if !ok {
		return false, nil
	}
	init(t)
	return true, nil
}
