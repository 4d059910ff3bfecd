package life

import "lifefade/internal/core"

// band is a half-open row range [y0, y1) computed by one task.
type band struct {
	y0, y1 int
}

// partition splits height rows into at most workers contiguous bands of
// ceil(height/n) rows each.
func partition(height, workers int) []band {
	n := workers
	if n < 1 {
		n = 1
	}
	if n > height {
		n = height
	}
	rows := (height + n - 1) / n
	bands := make([]band, 0, n)
	for y0 := 0; y0 < height; y0 += rows {
		bands = append(bands, band{y0: y0, y1: min(y0+rows, height)})
	}
	return bands
}

// computeBand writes rows [b.y0, b.y1) of the next generation into out,
// which holds exactly those rows. cur is only read.
func computeBand(cur, out []Cell, geom core.Geometry, b band, fadeGrades int) Stats {
	var st Stats
	base := geom.RowOffset(b.y0)
	for y := b.y0; y < b.y1; y++ {
		up := geom.RowOffset(y - 1)
		row := geom.RowOffset(y)
		down := geom.RowOffset(y + 1)
		for x := 0; x < geom.W; x++ {
			left := geom.Column(x - 1)
			right := geom.Column(x + 1)
			n := alive(cur[up+left]) + alive(cur[up+x]) + alive(cur[up+right]) +
				alive(cur[row+left]) + alive(cur[row+right]) +
				alive(cur[down+left]) + alive(cur[down+x]) + alive(cur[down+right])

			c := cur[row+x]
			nc := &out[row-base+x]
			switch {
			case c.Alive && (n < 2 || n > 3):
				nc.Alive = false
				nc.Fade = fadeGrades
				st.Deaths++
			case !c.Alive && n == 3:
				nc.Alive = true
				nc.Fade = 0
				st.Births++
			default:
				nc.Alive = c.Alive
				nc.Fade = max(c.Fade-1, 0)
			}
			if nc.Alive {
				st.Live++
			}
		}
	}
	return st
}

func alive(c Cell) int {
	if c.Alive {
		return 1
	}
	return 0
}
