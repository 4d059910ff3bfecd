package render

import (
	"image"
	"image/color"
)

// Sink receives one filled cell-sized rectangle per visible cell. pos is the
// top-left corner in pixels.
type Sink interface {
	FillRect(pos image.Point, c color.RGBA)
}

// CellSource iterates a grid in row-major order.
type CellSource interface {
	ForEachDrawableCell(visit func(x, y int, alive bool, fade int))
}

// LiveColor is used for cells that are alive.
var LiveColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// DrawCells emits live cells in LiveColor and fading cells from palette. Dead
// cells with no fade left are skipped.
func DrawCells(sink Sink, src CellSource, side int, palette []color.RGBA) {
	last := len(palette) - 1
	src.ForEachDrawableCell(func(x, y int, alive bool, fade int) {
		pos := image.Pt(x*side, y*side)
		switch {
		case alive:
			sink.FillRect(pos, LiveColor)
		case fade > 0 && last >= 0:
			sink.FillRect(pos, palette[min(fade-1, last)])
		}
	})
}
