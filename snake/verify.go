package snake

import (
	"fmt"

	"github.com/katalvlaran/katas/gridgraph"
)

// Verify checks that p spells target in g: same length, every cell in bounds
// and holding the matching rune, consecutive cells 4-adjacent, and no cell
// repeated. It returns nil for a valid path and an error wrapping
// ErrInvalidPath otherwise.
//
// Complexity: O(L) time, O(L) memory.
func Verify(g *gridgraph.Grid, target string, p Path) error {
	if g == nil {
		return ErrNilGrid
	}
	word := []rune(target)
	if len(p) != len(word) {
		return fmt.Errorf("path has %d cells, word has %d runes: %w", len(p), len(word), ErrInvalidPath)
	}
	seen := make(map[gridgraph.Cell]struct{}, len(p))
	for i, c := range p {
		if !g.InBounds(c) {
			return fmt.Errorf("cell %d (%s) out of bounds: %w", i, c, ErrInvalidPath)
		}
		if g.At(c) != word[i] {
			return fmt.Errorf("cell %d (%s) holds %q, want %q: %w", i, c, g.At(c), word[i], ErrInvalidPath)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("cell %d (%s) revisited: %w", i, c, ErrInvalidPath)
		}
		seen[c] = struct{}{}
		if i > 0 && !gridgraph.Adjacent(p[i-1], c) {
			return fmt.Errorf("cells %s and %s not adjacent: %w", p[i-1], c, ErrInvalidPath)
		}
	}

	return nil
}
