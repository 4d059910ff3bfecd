package game

import (
	"image/color"

	"lifefade/internal/core"
	"lifefade/internal/input"
	"lifefade/internal/life"
	"lifefade/internal/render"
	"lifefade/internal/state"
)

// Simulating owns a life engine and steps it every frame it is updated.
type Simulating struct {
	ctx     state.Context
	engine  *life.Engine
	palette []color.RGBA
}

// NewSimulating builds the engine for ctx's grid.
func NewSimulating(ctx state.Context, opts life.Options) (*Simulating, error) {
	engine, err := life.New(ctx.GridSize, ctx.CellSide, opts)
	if err != nil {
		return nil, err
	}
	return &Simulating{
		ctx:     ctx,
		engine:  engine,
		palette: render.FadePalette(engine.Options().FadeGrades),
	}, nil
}

// Engine exposes the simulation.
func (s *Simulating) Engine() *life.Engine { return s.engine }

// Update pushes the pause screen on a pause edge, reseeds the grid in place on
// a restart edge, then counts a frame towards the next generation.
func (s *Simulating) Update(delta float64) bool {
	if in := s.ctx.Input; in != nil {
		if in.JustPressed(input.Pause) {
			s.ctx.Stack.RequestChange(state.Change{Kind: state.Push, ID: PausedID})
		}
		if in.JustPressed(input.Restart) {
			s.engine.Reset()
		}
	}
	s.engine.Step(delta)
	return true
}

// Draw emits one rect per live or fading cell.
func (s *Simulating) Draw(sink render.Sink) {
	render.DrawCells(sink, s.engine, s.engine.Side(), s.palette)
}

// Parameters describes the engine for the HUD.
func (s *Simulating) Parameters() core.ParameterSnapshot {
	return s.engine.Parameters()
}
