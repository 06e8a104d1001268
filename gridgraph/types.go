// Package gridgraph defines core types for the gridgraph subpackage of
// github.com/katalvlaran/katas.
package gridgraph

import "fmt"

// Cell represents a single grid position.
type Cell struct {
	Row, Col int // Coordinates within the grid
}

// String renders the cell as "row,col".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// neighborOffsets lists the 4-directional moves in N, E, S, W order.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid treats a 2D rune grid as a graph. It is immutable once built.
// Width and Height define dimensions; cells holds the runes in row-major order.
type Grid struct {
	Width, Height int
	cells         []rune
}
