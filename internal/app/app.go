//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"lifefade/internal/core"
	"lifefade/internal/game"
	"lifefade/internal/input"
	"lifefade/internal/render"
	"lifefade/internal/state"
	"lifefade/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth      = 220
	titleInterval = time.Second
)

var background = color.RGBA{A: 255}

// Game adapts the state stack to the ebiten.Game interface.
type Game struct {
	cfg    *Config
	logger *slog.Logger

	stack    *state.Stack
	sim      *game.Simulating
	tracker  *input.Tracker
	bindings input.Bindings
	clock    *core.FrameClock

	painter *render.ImagePainter
	hud     *ui.HUD
	showHUD bool

	title     string
	lastTitle time.Time
}

// New builds the state stack for cfg and starts it in the simulating state.
func New(cfg *Config, title string, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	tracker := &input.Tracker{}
	stack := state.NewStack(state.Context{Context: cfg.Context(), Input: tracker}, logger)
	sim, err := game.Start(stack, cfg.LifeOptions())
	if err != nil {
		return nil, fmt.Errorf("start simulation: %w", err)
	}

	size := cfg.GridSize()
	g := &Game{
		cfg:      cfg,
		logger:   logger,
		stack:    stack,
		sim:      sim,
		tracker:  tracker,
		bindings: input.DefaultBindings(),
		clock:    core.NewFrameClock(),
		hud:      ui.NewHUD(hudWidth),
		showHUD:  cfg.ShowHUD,
		title:    title,
	}
	if !cfg.DirectDraw {
		g.painter = render.NewImagePainter(size.W, size.H, cfg.Side)
	}
	logger.Info("simulation started",
		"grid", fmt.Sprintf("%dx%d", size.W, size.H),
		"side", cfg.Side,
		"workers", cfg.Workers,
		"direct_draw", cfg.DirectDraw)
	return g, nil
}

// Update handles per-frame input and advances the state stack.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	g.tracker.Update(g.bindings.Poll())
	delta := g.clock.Tick(1 / float64(g.cfg.TPS))
	if err := g.stack.Update(delta); err != nil {
		return err
	}
	if g.stack.Empty() {
		return ebiten.Termination
	}

	if g.showHUD {
		g.hud.Update(g.sim)
	}
	g.refreshTitle()
	return nil
}

func (g *Game) refreshTitle() {
	now := time.Now()
	if now.Sub(g.lastTitle) < titleInterval {
		return
	}
	g.lastTitle = now
	ebiten.SetWindowTitle(g.title + " | " + ui.StatusLine(g.sim.Parameters(), ebiten.ActualFPS()))
}

// Draw renders every state on the stack, bottom first.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.painter != nil {
		g.painter.Begin(background)
		g.stack.Draw(g.painter)
		g.painter.Blit(screen)
	} else {
		screen.Fill(background)
		g.stack.Draw(render.ScreenSink{Dst: screen, Side: g.cfg.Side})
	}

	if _, paused := g.stack.Top().(*game.Paused); paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED  [space] resume", 8, 8)
	}
	if g.showHUD {
		size := g.cfg.GridSize()
		g.hud.Draw(screen, size.W*g.cfg.Side, size.H*g.cfg.Side)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.cfg.GridSize()
	w := size.W * g.cfg.Side
	if g.showHUD {
		w += g.hud.Width()
	}
	return w, size.H * g.cfg.Side
}

// Report logs the run totals. Call it once RunGame returns.
func (g *Game) Report() {
	stats := g.sim.Engine().Stats()
	g.logger.Info("simulation finished",
		"frames", g.clock.Frames(),
		"avg_frame", g.clock.Average(),
		"generations", stats.Generation,
		"live", stats.Live)
}
