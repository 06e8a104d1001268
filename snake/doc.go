// Package snake implements the snaking-word search: deciding whether a word
// can be traced through a character grid as a self-avoiding path of
// 4-adjacent cells whose runes spell the word in order.
//
// What:
//
//   - Search / SearchRows: existence check, the boolean contract.
//   - FindPath: the same search, returning the first path found.
//   - FindAll: one grid, many words.
//   - Verify: independent soundness check of a path against a word.
//
// Algorithm:
//
//  1. An empty word always matches, even on an empty grid.
//  2. Every cell holding the first rune is a head candidate.
//  3. From each head, depth-first backtracking runs on an explicit stack.
//     A neighbour is entered only if it holds the next rune and is not
//     already on the path. A branch that fails pops and unmarks its cell
//     before the next sibling is tried, so siblings never observe each
//     other's cells.
//  4. The first complete path wins; no preference among valid paths.
//
// Words longer than the grid, or needing more copies of a rune than the grid
// holds, are rejected before any traversal.
//
// Complexity:
//
//   - Time:   O(H·W·3^(L-1)) worst case for a word of L runes.
//   - Memory: O(H·W + L) for the visited bitmap, path and stack.
//
// Options:
//
//   - WithContext(ctx)       allows cancellation via context.Context.
//   - WithMaxSteps(n)        bounds the number of neighbour probes.
//   - WithOnVisit(fn)        hook on entering a cell; error aborts.
//   - WithOnBacktrack(fn)    hook on leaving a cell; error aborts.
//
// Errors:
//
//   - gridgraph.ErrNonRectangular  rows of unequal length (SearchRows).
//   - ErrNilGrid                   grid pointer is nil.
//   - ErrNotFound                  FindPath found no path.
//   - ErrStepBudget                WithMaxSteps budget exhausted.
//   - ErrInvalidPath               Verify rejected a path.
//   - context.Canceled, context.DeadlineExceeded.
//   - any error returned by a hook.
//
// A search owns all of its mutable state, so independent searches may run on
// the same Grid from multiple goroutines.
package snake
