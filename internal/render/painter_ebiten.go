//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImagePainter uploads a GridPainter's buffer into a single ebiten image.
type ImagePainter struct {
	*GridPainter
	img *ebiten.Image
}

// NewImagePainter allocates a painter and its backing image.
func NewImagePainter(w, h, side int) *ImagePainter {
	return &ImagePainter{GridPainter: NewGridPainter(w, h, side), img: ebiten.NewImage(w, h)}
}

// Blit uploads the collected pixels and draws them scaled by the cell side.
func (p *ImagePainter) Blit(dst *ebiten.Image) {
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(p.side), float64(p.side))
	dst.DrawImage(p.img, op)
}

// ScreenSink draws every FillRect straight onto an ebiten image.
type ScreenSink struct {
	Dst  *ebiten.Image
	Side int
}

// FillRect draws a Side x Side filled square at pos.
func (s ScreenSink) FillRect(pos image.Point, c color.RGBA) {
	side := float32(s.Side)
	vector.DrawFilledRect(s.Dst, float32(pos.X), float32(pos.Y), side, side, c, false)
}
