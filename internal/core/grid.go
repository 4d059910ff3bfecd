package core

// Geometry maps between (x, y) coordinates and linear indices on a toroidal
// grid stored in row-major order.
type Geometry struct {
	W, H int
}

// NewGeometry returns the geometry for a grid of the given size.
func NewGeometry(s Size) Geometry { return Geometry{W: s.W, H: s.H} }

// Len returns the number of cells.
func (g Geometry) Len() int { return g.W * g.H }

// Index returns the linear slice index for coordinates (x, y). Coordinates
// outside the grid wrap around.
func (g Geometry) Index(x, y int) int {
	x, y = g.Wrap(x, y)
	return y*g.W + x
}

// Coords returns the (x, y) coordinates of a linear index.
func (g Geometry) Coords(i int) (int, int) { return i % g.W, i / g.W }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g Geometry) Wrap(x, y int) (int, int) {
	return g.Column(x), g.RowOffset(y) / g.W
}

// Column wraps x into [0, W).
func (g Geometry) Column(x int) int { return (x%g.W + g.W) % g.W }

// RowOffset returns the index of the first cell of row y, wrapping y.
func (g Geometry) RowOffset(y int) int { return ((y%g.H + g.H) % g.H) * g.W }
