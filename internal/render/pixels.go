package render

import (
	"image"
	"image/color"
)

// GridPainter collects FillRect calls into an RGBA buffer with one pixel per
// cell. The GUI build uploads the buffer and scales it by the cell side.
type GridPainter struct {
	w, h int
	side int
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h whose cells are
// side pixels wide.
func NewGridPainter(w, h, side int) *GridPainter {
	if side <= 0 {
		side = 1
	}
	return &GridPainter{w: w, h: h, side: side, buf: make([]byte, 4*w*h)}
}

// Begin fills the whole buffer with bg.
func (gp *GridPainter) Begin(bg color.RGBA) {
	for i := 0; i < len(gp.buf); i += 4 {
		setRGBA(gp.buf[i:i+4], bg)
	}
}

// FillRect paints the cell whose top-left pixel is pos. Positions outside the
// grid are ignored.
func (gp *GridPainter) FillRect(pos image.Point, c color.RGBA) {
	x, y := pos.X/gp.side, pos.Y/gp.side
	if pos.X < 0 || pos.Y < 0 || x >= gp.w || y >= gp.h {
		return
	}
	base := 4 * (y*gp.w + x)
	setRGBA(gp.buf[base:base+4], c)
}

// Pixels exposes the RGBA buffer.
func (gp *GridPainter) Pixels() []byte { return gp.buf }

// Size returns the dimensions of the underlying image in cells.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

func setRGBA(dst []byte, c color.RGBA) {
	dst[0] = c.R
	dst[1] = c.G
	dst[2] = c.B
	dst[3] = c.A
}
