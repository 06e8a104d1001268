// Package gridgraph provides utilities to treat a 2D grid of characters as a
// 4-connected graph. It supports:
//
//   - Construction from string rows or rune rows, with shape validation
//   - Orthogonal neighbour enumeration without wraparound
//   - Row-major indexing for bitmap-based visited sets
//   - Rune lookup and histograms for search pruning
package gridgraph

import "fmt"

// FromRows constructs a Grid from string rows, one rune per cell.
// Row length is measured in runes, not bytes.
// Returns ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func FromRows(rows []string) (*Grid, error) {
	cells := make([][]rune, len(rows))
	for y, row := range rows {
		cells[y] = []rune(row)
	}

	return NewGrid(cells)
}

// NewGrid constructs a Grid from a rectangular 2D rune slice.
// It deep-copies the input to ensure immutability.
// Zero rows, or rows of zero length, produce an empty grid.
// Returns ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(values [][]rune) (*Grid, error) {
	if len(values) == 0 {
		return &Grid{}, nil
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, row 0 has %d: %w", y, len(row), w, ErrNonRectangular)
		}
	}
	if w == 0 {
		return &Grid{}, nil
	}
	// Deep copy to prevent external mutation
	cells := make([]rune, 0, w*h)
	for _, row := range values {
		cells = append(cells, row...)
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// Empty reports whether the grid has no cells.
func (g *Grid) Empty() bool {
	return len(g.cells) == 0
}

// Size returns the number of cells, Width×Height.
func (g *Grid) Size() int {
	return len(g.cells)
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Width && c.Row >= 0 && c.Row < g.Height
}

// At returns the rune stored at c. The caller must ensure InBounds(c).
// Complexity: O(1).
func (g *Grid) At(c Cell) rune {
	return g.cells[g.Index(c)]
}

// Lookup is the checked form of At.
func (g *Grid) Lookup(c Cell) (rune, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("cell %s in %dx%d grid: %w", c, g.Height, g.Width, ErrOutOfBounds)
	}

	return g.At(c), nil
}

// Neighbors appends the in-bounds orthogonal neighbours of c to buf[:0] and
// returns it. Passing a buffer of capacity 4 keeps the call allocation-free.
// Order is N, E, S, W.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell, buf []Cell) []Cell {
	buf = buf[:0]
	for _, d := range neighborOffsets {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			buf = append(buf, n)
		}
	}

	return buf
}

// Adjacent reports whether a and b differ by exactly one row or exactly one
// column, but not both.
func Adjacent(a, b Cell) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr+dc == 1
}

// Index maps c to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.Width + c.Col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.Width, Col: idx % g.Width}
}

// Rows renders the grid back into one string per row.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	for y := 0; y < g.Height; y++ {
		rows[y] = string(g.cells[y*g.Width : (y+1)*g.Width])
	}

	return rows
}
