package gridgraph

// Find returns every cell holding r, in row-major order.
// These are the head candidates of a search starting with r.
//
// Time:   O(W·H).
// Memory: O(k) for k matches.
func (g *Grid) Find(r rune) []Cell {
	var out []Cell
	for i, v := range g.cells {
		if v == r {
			out = append(out, g.Coordinate(i))
		}
	}

	return out
}

// Contains reports whether r occurs anywhere in the grid.
func (g *Grid) Contains(r rune) bool {
	for _, v := range g.cells {
		if v == r {
			return true
		}
	}

	return false
}

// Counts returns the number of cells holding each rune.
//
// Time:   O(W·H).
// Memory: O(distinct runes).
func (g *Grid) Counts() map[rune]int {
	counts := make(map[rune]int)
	for _, v := range g.cells {
		counts[v]++
	}

	return counts
}
