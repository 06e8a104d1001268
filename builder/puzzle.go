// SPDX-License-Identifier: MIT
// Package: katas/builder
//
// puzzle.go — implementation of the Puzzle(rows, cols, words) generator.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrBadSize).
//   • Every non-empty word must fit: runes ≤ rows·cols (else ErrWordTooLong).
//   • Words are planted longest first as random self-avoiding snakes. A
//     cell may be shared by several words only when their runes agree.
//   • A word that cannot be planted within the probe budget restarts the
//     whole board; after maxAttempts restarts ErrConstructFailed is returned.
//   • Uncovered cells are filled with uniformly drawn alphabet runes.
//
// Determinism:
//   • Stable planting order (length desc, then input order).
//   • All randomness flows through cfg.rng.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/katas/gridgraph"
)

const (
	methodPuzzle = "Puzzle"
	minPuzzleDim = 1
)

// Puzzle returns rows×cols grid rows in which every word in words can be
// traced as a snake. Empty words are ignored.
func Puzzle(rows, cols int, words []string, opts ...BuilderOption) ([]string, error) {
	// 1) Validate parameters early (fail fast; no partial work).
	if rows < minPuzzleDim || cols < minPuzzleDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodPuzzle, rows, cols, minPuzzleDim, ErrBadSize)
	}
	plan := make([][]rune, 0, len(words))
	for _, w := range words {
		r := []rune(w)
		if len(r) == 0 {
			continue
		}
		if len(r) > rows*cols {
			return nil, fmt.Errorf("%s: %q has %d runes, grid has %d cells: %w",
				methodPuzzle, w, len(r), rows*cols, ErrWordTooLong)
		}
		plan = append(plan, r)
	}
	sort.SliceStable(plan, func(i, j int) bool { return len(plan[i]) > len(plan[j]) })

	cfg := newBuilderConfig(opts...)
	shape, err := blankGrid(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPuzzle, err)
	}

	// 2) Plant all words, restarting the board on failure.
	for attempt := 0; attempt < cfg.maxAttempts; attempt++ {
		b := newBoard(shape, cfg)
		if b.plantAll(plan) {
			// 3) Fill the remaining cells and render.
			return b.render(), nil
		}
	}

	return nil, fmt.Errorf("%s: %d words on %dx%d after %d attempts: %w",
		methodPuzzle, len(plan), rows, cols, cfg.maxAttempts, ErrConstructFailed)
}

// blankGrid returns a rows×cols grid used only for its geometry.
func blankGrid(rows, cols int) (*gridgraph.Grid, error) {
	cells := make([][]rune, rows)
	for r := range cells {
		cells[r] = make([]rune, cols)
	}

	return gridgraph.NewGrid(cells)
}

// board is the mutable state of one construction attempt.
type board struct {
	shape  *gridgraph.Grid
	cfg    builderConfig
	cells  []rune
	used   []bool // cell holds a planted rune
	onPath []bool // cell is on the snake being planted
	path   []gridgraph.Cell
	budget int
}

func newBoard(shape *gridgraph.Grid, cfg builderConfig) *board {
	n := shape.Size()
	return &board{
		shape:  shape,
		cfg:    cfg,
		cells:  make([]rune, n),
		used:   make([]bool, n),
		onPath: make([]bool, n),
	}
}

// plantAll plants every word in order; false means restart.
func (b *board) plantAll(plan [][]rune) bool {
	for _, word := range plan {
		if !b.plant(word) {
			return false
		}
	}

	return true
}

// plant tries random heads in shuffled order until a snake fits.
func (b *board) plant(word []rune) bool {
	b.budget = b.cfg.probeBudget
	heads := b.cfg.rng.Perm(b.shape.Size())
	for _, idx := range heads {
		if !b.fits(idx, word[0]) {
			continue
		}
		b.path = b.path[:0]
		if b.extend(b.shape.Coordinate(idx), word, 0) {
			for i, c := range b.path {
				j := b.shape.Index(c)
				b.cells[j] = word[i]
				b.used[j] = true
				b.onPath[j] = false
			}
			return true
		}
		if b.budget <= 0 {
			return false
		}
	}

	return false
}

// fits reports whether cell idx may hold r.
func (b *board) fits(idx int, r rune) bool {
	return !b.onPath[idx] && (!b.used[idx] || b.cells[idx] == r)
}

// extend places word[i] at c and recursively continues through shuffled
// neighbours, undoing c on failure.
func (b *board) extend(c gridgraph.Cell, word []rune, i int) bool {
	if b.budget <= 0 {
		return false
	}
	b.budget--

	idx := b.shape.Index(c)
	b.onPath[idx] = true
	b.path = append(b.path, c)
	if i == len(word)-1 {
		return true
	}

	nbs := b.shape.Neighbors(c, make([]gridgraph.Cell, 0, 4))
	b.cfg.rng.Shuffle(len(nbs), func(x, y int) { nbs[x], nbs[y] = nbs[y], nbs[x] })
	for _, nb := range nbs {
		if b.fits(b.shape.Index(nb), word[i+1]) && b.extend(nb, word, i+1) {
			return true
		}
	}

	b.onPath[idx] = false
	b.path = b.path[:len(b.path)-1]

	return false
}

// render fills unused cells from the alphabet and returns the rows.
func (b *board) render() []string {
	alpha := b.cfg.alphabet
	for i := range b.cells {
		if !b.used[i] {
			b.cells[i] = alpha[b.cfg.rng.Intn(len(alpha))]
		}
	}
	rows := make([]string, b.shape.Height)
	w := b.shape.Width
	for r := range rows {
		rows[r] = string(b.cells[r*w : (r+1)*w])
	}

	return rows
}
