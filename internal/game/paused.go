package game

import (
	"lifefade/internal/input"
	"lifefade/internal/render"
	"lifefade/internal/state"
)

// Paused sits on top of the simulation and swallows its updates. It draws
// nothing, so the frozen grid below stays visible.
type Paused struct {
	ctx state.Context
}

// NewPaused returns a pause screen bound to ctx.
func NewPaused(ctx state.Context) *Paused { return &Paused{ctx: ctx} }

// Update pops itself on a pause edge and always stops propagation.
func (p *Paused) Update(float64) bool {
	if in := p.ctx.Input; in != nil && in.JustPressed(input.Pause) {
		p.ctx.Stack.RequestChange(state.Change{Kind: state.Pop})
	}
	return false
}

// Draw is a no-op.
func (p *Paused) Draw(render.Sink) {}
