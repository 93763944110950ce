package lattice

// Default cell geometry in view pixels.
const (
	DefaultCellSize = 26
	DefaultGap      = 1
)

// Grid holds how many whole cells fit the viewport, plus the geometry
// they were fitted with.
type Grid struct {
	Columns  int
	Rows     int
	CellSize int
	Gap      int
}

// Fit computes the grid that fills a viewport without overflow.
// Crediting one extra gap pays for the gap missing after the last
// cell, so the division is exact: columns = (width+gap)/(cellSize+gap).
// A viewport smaller than one cell fits zero cells; that is an empty
// grid, not an error. Fit has no memory of any prior grid.
func Fit(width, height, cellSize, gap int) Grid {
	g := Grid{CellSize: cellSize, Gap: gap}
	g.Columns = (width + gap) / (cellSize + gap)
	g.Rows = (height + gap) / (cellSize + gap)
	if g.Columns < 0 {
		g.Columns = 0
	}
	if g.Rows < 0 {
		g.Rows = 0
	}
	return g
}

// Center returns the middle cell, the default root anchor.
func (g Grid) Center() Vector {
	return Vector{g.Columns / 2, g.Rows / 2}
}

// Contains reports whether a position lies inside the grid.
func (g Grid) Contains(v Vector) bool {
	return v.I >= 0 && v.I < g.Columns && v.J >= 0 && v.J < g.Rows
}
