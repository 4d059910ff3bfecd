// Package life implements a toroidal Game of Life whose dead cells fade out
// over a configurable number of generations.
package life

import (
	"errors"
	"fmt"
	"runtime"

	"lifefade/internal/core"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultFadeGrades is the number of generations a dead cell takes to fade out.
	DefaultFadeGrades = 60
	// DefaultUpdateEvery advances one generation per Step call.
	DefaultUpdateEvery = 1
	// DefaultInitPercent is the share of cells alive after Randomize.
	DefaultInitPercent = 6
)

var (
	// ErrInvalidSize is returned when the grid has a zero or negative dimension.
	ErrInvalidSize = errors.New("life: grid dimensions must be positive")
	// ErrInvalidOptions is returned for out-of-range engine options.
	ErrInvalidOptions = errors.New("life: invalid options")
)

// Cell is a single grid slot. Fade counts down the generations left in the
// death animation and is independent of Alive.
type Cell struct {
	Alive bool
	Fade  int
}

// Options tunes the engine. Zero values select the defaults.
type Options struct {
	FadeGrades  int
	UpdateEvery int
	InitPercent int
	Workers     int
	// Seed makes Randomize reproducible. Zero uses a non-seeded source.
	Seed int64
}

// DefaultOptions returns the standard configuration.
func DefaultOptions() Options {
	return Options{
		FadeGrades:  DefaultFadeGrades,
		UpdateEvery: DefaultUpdateEvery,
		InitPercent: DefaultInitPercent,
		Workers:     runtime.NumCPU(),
	}
}

func (o Options) normalize() (Options, error) {
	d := DefaultOptions()
	switch {
	case o.FadeGrades < 0:
		return o, fmt.Errorf("%w: fade grades %d", ErrInvalidOptions, o.FadeGrades)
	case o.UpdateEvery < 0:
		return o, fmt.Errorf("%w: update every %d", ErrInvalidOptions, o.UpdateEvery)
	case o.InitPercent < 0 || o.InitPercent > 100:
		return o, fmt.Errorf("%w: init percent %d", ErrInvalidOptions, o.InitPercent)
	case o.Workers < 0:
		return o, fmt.Errorf("%w: workers %d", ErrInvalidOptions, o.Workers)
	}
	if o.FadeGrades == 0 {
		o.FadeGrades = d.FadeGrades
	}
	if o.UpdateEvery == 0 {
		o.UpdateEvery = d.UpdateEvery
	}
	if o.InitPercent == 0 {
		o.InitPercent = d.InitPercent
	}
	if o.Workers == 0 {
		o.Workers = d.Workers
	}
	return o, nil
}

// Stats summarizes the most recent generation.
type Stats struct {
	Generation uint64
	Live       int
	Births     int
	Deaths     int
}

// Engine owns the two cell buffers of a fixed-size toroidal grid. It is not
// safe for concurrent use; Step fans out internally and joins before
// returning.
type Engine struct {
	geom core.Geometry
	side int
	opts Options

	buffers [2][]Cell
	cur     int

	bands     []band
	bandStats []Stats

	accum   int
	elapsed float64
	stats   Stats
	rng     *core.RNG
}

// New allocates both buffers for size and seeds the current one with
// Randomize. side is the pixel size of a cell and only affects drawing.
func New(size core.Size, side int, opts Options) (*Engine, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, size.W, size.H)
	}
	if side <= 0 {
		return nil, fmt.Errorf("%w: cell side %d", ErrInvalidOptions, side)
	}
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	total := size.Area()
	e := &Engine{
		geom:    core.NewGeometry(size),
		side:    side,
		opts:    opts,
		buffers: [2][]Cell{make([]Cell, total), make([]Cell, total)},
		bands:   partition(size.H, opts.Workers),
		rng:     core.NewRNG(opts.Seed),
	}
	e.bandStats = make([]Stats, len(e.bands))
	e.Randomize()
	return e, nil
}

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.geom.W, H: e.geom.H} }

// Side returns the pixel size of one cell.
func (e *Engine) Side() int { return e.side }

// Options returns the normalized options the engine runs with.
func (e *Engine) Options() Options { return e.opts }

// Stats returns the statistics of the last completed generation.
func (e *Engine) Stats() Stats { return e.stats }

// Cells exposes the current generation. Callers must not retain it across
// Step calls.
func (e *Engine) Cells() []Cell { return e.buffers[e.cur] }

// Cell returns the current state of (x, y), wrapping out-of-range coordinates.
func (e *Engine) Cell(x, y int) Cell { return e.buffers[e.cur][e.geom.Index(x, y)] }

// Set marks (x, y) in the current generation and keeps the live count in
// step. Birth clears the fade counter.
func (e *Engine) Set(x, y int, alive bool) {
	c := &e.buffers[e.cur][e.geom.Index(x, y)]
	if alive == c.Alive {
		return
	}
	if alive {
		c.Fade = 0
		e.stats.Live++
	} else {
		e.stats.Live--
	}
	c.Alive = alive
}

// Clear zeroes both buffers and the generation counters.
func (e *Engine) Clear() {
	clear(e.buffers[0])
	clear(e.buffers[1])
	e.cur = 0
	e.accum = 0
	e.elapsed = 0
	e.stats = Stats{}
}

// Reset clears the grid and seeds it again without reallocating.
func (e *Engine) Reset() {
	e.Clear()
	e.Randomize()
}

// Randomize marks InitPercent of the cells alive in the current buffer,
// picking uniformly among cells that are not alive yet.
func (e *Engine) Randomize() {
	cells := e.buffers[e.cur]
	live := 0
	for i := range cells {
		if cells[i].Alive {
			live++
		}
	}
	target := len(cells) * e.opts.InitPercent / 100
	if free := len(cells) - live; target > free {
		target = free
	}
	for placed := 0; placed < target; {
		i := e.rng.IntN(len(cells))
		if cells[i].Alive {
			continue
		}
		cells[i].Alive = true
		placed++
	}
	e.stats.Live = live + target
}

// Step counts one frame and advances a generation every UpdateEvery frames.
// It reports whether a generation was computed.
func (e *Engine) Step(delta float64) bool {
	e.elapsed += delta
	e.accum++
	if e.accum < e.opts.UpdateEvery {
		return false
	}
	e.accum = 0
	e.advance()
	return true
}

// Elapsed returns the frame time accumulated by Step since the last reset.
func (e *Engine) Elapsed() float64 { return e.elapsed }

// advance computes one generation band by band and swaps the buffers.
func (e *Engine) advance() {
	cur := e.buffers[e.cur]
	next := e.buffers[1-e.cur]
	w := e.geom.W

	var g errgroup.Group
	g.SetLimit(e.opts.Workers)
	for i, b := range e.bands {
		out := next[b.y0*w : b.y1*w]
		st := &e.bandStats[i]
		g.Go(func() error {
			*st = computeBand(cur, out, e.geom, b, e.opts.FadeGrades)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}

	e.cur = 1 - e.cur
	total := Stats{Generation: e.stats.Generation + 1}
	for _, st := range e.bandStats {
		total.Live += st.Live
		total.Births += st.Births
		total.Deaths += st.Deaths
	}
	e.stats = total
}

// ForEachDrawableCell visits the current generation in row-major order.
func (e *Engine) ForEachDrawableCell(visit func(x, y int, alive bool, fade int)) {
	for i, c := range e.buffers[e.cur] {
		x, y := e.geom.Coords(i)
		visit(x, y, c.Alive, c.Fade)
	}
}
