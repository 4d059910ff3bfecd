package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool { return s.W > 0 && s.H > 0 }

// Area returns the number of cells in a grid of this size.
func (s Size) Area() int { return s.W * s.H }

// Context is the read-only bootstrap data handed to the engine and to state
// factories at construction time.
type Context struct {
	GridSize Size
	CellSide int
}
