//go:build ebiten

package ui

import (
	"image/color"

	"lifefade/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 16
	valueColumn  = 110
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor     = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor      = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	valueColor      = color.RGBA{R: 230, G: 230, B: 240, A: 255}
)

// HUD renders the statistics panel to the right of the simulation view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []Line
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	return &HUD{width: max(width, 0)}
}

// Width is the horizontal space the panel occupies.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached rows from provider. A nil provider clears them.
func (h *HUD) Update(provider core.ParameterProvider) {
	if h == nil {
		return
	}
	if provider == nil {
		h.lines = nil
		return
	}
	h.lines = Lines(provider.Parameters())
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelBackground)

	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	for _, line := range h.lines {
		if y > height {
			break
		}
		switch line.Kind {
		case LineHeader:
			if y > panelPadding+lineHeight {
				y += lineHeight / 2
			}
			text.Draw(h.panel, line.Text, face, panelPadding, y, headerColor)
		case LineParam:
			text.Draw(h.panel, line.Text, face, panelPadding, y, labelColor)
			text.Draw(h.panel, line.Value, face, valueColumn, y, valueColor)
		}
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
