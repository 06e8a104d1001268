// Package katas is a small collection of algorithm exercises built around a
// snaking-word search over character grids.
//
// 🚀 What is katas?
//
//	A set of independent, dependency-light packages:
//		• gridgraph:  rectangular rune grid viewed as a 4-connected graph
//		• snake:      self-avoiding word search with hooks, budgets and paths
//		• builder:    seeded generator of snaking-word puzzles
//		• puzzlefile: HCL puzzle files with expression support
//		• permute:    lazy permutation iterator (Heap's algorithm)
//		• stock:      maximum profit over a quote series
//		• shortener:  URL shortener over a caller-owned store
//
// ✨ Why katas?
//
//   - No hidden state: every search, store and generator is an explicit value
//   - Deterministic: same input and seed, same result
//   - Hookable: OnVisit / OnBacktrack observe the search as it runs
//
// Quick ASCII example, tracing "ABDC":
//
//	A → B
//	    ↓
//	C ← D
//
// The cmd/katas command loads puzzle files, reports every word and checks
// the expectations they declare:
//
//	go run github.com/katalvlaran/katas/cmd/katas puzzles/
package katas
