package render

import (
	"image/color"
	"math"
)

// FadePalette builds the death-fade colors. Index i is used for a cell with
// fade i+1, so the last entry is the brightest and is shown right after death.
// Brightness follows sin(t*pi/2)^2 with a blue tint.
func FadePalette(grades int) []color.RGBA {
	if grades <= 0 {
		return nil
	}
	palette := make([]color.RGBA, grades)
	for i := range palette {
		t := math.Sin(float64(i) / float64(grades) * math.Pi / 2)
		tt := t * t
		palette[i] = color.RGBA{
			R: channel(0.1 * tt),
			G: channel(0.1 * tt),
			B: channel(0.7 * tt),
			A: 255,
		}
	}
	return palette
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
