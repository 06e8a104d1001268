// Package gridgraph treats a rectangular grid of characters as a graph whose
// vertices are cells and whose edges join 4-adjacent cells.
//
// What:
//
//   - Grid wraps a rectangular rune grid, deep-copied on construction.
//   - Cell addresses a single position by (Row, Col).
//   - Neighbors enumerates the up-to-4 orthogonal neighbours (N, E, S, W),
//     never wrapping around the edges.
//   - Find and Counts answer "where is this rune" and "how many of each".
//
// Why:
//
//   - Word puzzles: snaking-word search, boggle-like boards.
//   - Any backtracking search that needs cheap adjacency and a row-major
//     index for visited bitmaps.
//
// Complexity:
//
//   - FromRows / NewGrid: O(W×H) time and memory.
//   - InBounds, At, Index, Coordinate, Adjacent: O(1).
//   - Neighbors: O(1), allocation-free when the caller supplies a buffer.
//   - Find, Counts: O(W×H).
//
// Errors:
//
//   - ErrNonRectangular: rows have differing lengths.
//
// A grid with zero rows (or with rows of zero length) is valid and empty.
package gridgraph
