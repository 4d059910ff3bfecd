package game

import (
	"image"
	"image/color"
	"io"
	"log/slog"
	"testing"

	"lifefade/internal/core"
	"lifefade/internal/input"
	"lifefade/internal/life"
	"lifefade/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSink struct{ n int }

func (c *countingSink) FillRect(image.Point, color.RGBA) { c.n++ }

type harness struct {
	keys  input.Pressed
	stack *state.Stack
	sim   *Simulating
}

func newHarness(t *testing.T, opts life.Options) *harness {
	t.Helper()
	h := &harness{keys: input.Pressed{}}
	ctx := state.Context{
		Context: core.Context{GridSize: core.Size{W: 16, H: 12}, CellSide: 2},
		Input:   h.keys,
	}
	h.stack = state.NewStack(ctx, slog.New(slog.NewTextHandler(io.Discard, nil)))
	sim, err := Start(h.stack, opts)
	require.NoError(t, err)
	h.sim = sim
	return h
}

// frame runs one update with the given keys just pressed.
func (h *harness) frame(t *testing.T, keys ...input.Key) {
	t.Helper()
	clear(h.keys)
	for _, k := range keys {
		h.keys[k] = true
	}
	require.NoError(t, h.stack.Update(1.0/60))
}

func TestPauseFreezesAndResumes(t *testing.T) {
	h := newHarness(t, life.Options{Seed: 3, InitPercent: 30})
	engine := h.sim.Engine()

	h.frame(t)
	assert.Equal(t, uint64(1), engine.Stats().Generation)

	h.frame(t, input.Pause)
	require.Equal(t, 2, h.stack.Len())
	_, paused := h.stack.Top().(*Paused)
	assert.True(t, paused)
	assert.Equal(t, uint64(2), engine.Stats().Generation, "the frame that pauses still steps")

	frozen := append([]life.Cell(nil), engine.Cells()...)
	for i := 0; i < 5; i++ {
		h.frame(t)
	}
	assert.Equal(t, uint64(2), engine.Stats().Generation)
	assert.Equal(t, frozen, engine.Cells())

	var sink countingSink
	h.stack.Draw(&sink)
	assert.Positive(t, sink.n, "the frozen grid is still drawn while paused")

	h.frame(t, input.Pause)
	assert.Equal(t, 1, h.stack.Len())
	assert.Same(t, h.sim, h.stack.Top())
	assert.Equal(t, uint64(2), engine.Stats().Generation)

	h.frame(t)
	assert.Equal(t, uint64(3), engine.Stats().Generation)
}

func TestRestartReseedsInPlace(t *testing.T) {
	h := newHarness(t, life.Options{InitPercent: 10})
	engine := h.sim.Engine()
	for i := 0; i < 4; i++ {
		h.frame(t)
	}
	require.Equal(t, uint64(4), engine.Stats().Generation)

	h.frame(t, input.Restart)

	assert.Same(t, engine, h.sim.Engine())
	assert.Equal(t, 1, h.stack.Len())
	assert.Equal(t, uint64(1), engine.Stats().Generation)
}

func TestRestartIsIgnoredWhilePaused(t *testing.T) {
	h := newHarness(t, life.Options{Seed: 5, InitPercent: 20})
	h.frame(t, input.Pause)
	before := append([]life.Cell(nil), h.sim.Engine().Cells()...)

	h.frame(t, input.Restart)
	assert.Equal(t, before, h.sim.Engine().Cells())
}

func TestSimulatingDrawsLiveAndFadingCells(t *testing.T) {
	h := newHarness(t, life.Options{FadeGrades: 4})
	engine := h.sim.Engine()
	engine.Clear()
	engine.Set(5, 5, true)

	var sink countingSink
	h.sim.Draw(&sink)
	assert.Equal(t, 1, sink.n)

	h.frame(t)
	sink.n = 0
	h.sim.Draw(&sink)
	assert.Equal(t, 1, sink.n, "the lone cell died and is fading")
	assert.Equal(t, 4, engine.Cell(5, 5).Fade)
}

func TestRegisterTwiceFails(t *testing.T) {
	h := newHarness(t, life.Options{})
	assert.ErrorIs(t, Register(h.stack, life.Options{}), state.ErrDuplicateState)
}

func TestStartPropagatesEngineErrors(t *testing.T) {
	stack := state.NewStack(state.Context{Context: core.Context{GridSize: core.Size{W: 0, H: 3}, CellSide: 1}}, nil)
	_, err := Start(stack, life.Options{})
	assert.ErrorIs(t, err, life.ErrInvalidSize)
}
