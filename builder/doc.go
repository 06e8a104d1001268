// Package builder generates snaking-word puzzles: rectangular letter grids in
// which a given list of words is planted as self-avoiding 4-adjacent paths,
// with the remaining cells filled from an alphabet.
//
// The package offers the following key components:
//
//   - Puzzle(rows, cols, words, opts...): the generator.
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds RNG, alphabet and retry budget.
//   - Options:
//     – WithSeed / WithRand:  deterministic randomness.
//     – WithAlphabet:         filler runes.
//     – WithMaxAttempts:      whole-board restarts before giving up.
//
// Guarantees:
//
//   - Determinism: the same seed, size, words and options give the same grid.
//   - Every planted word is traceable as a snake; words may share cells when
//     their runes agree.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime errors are sentinels wrapped with method context:
//     ErrBadSize, ErrWordTooLong, ErrConstructFailed.
//
// Complexity: O(A·Σ B) where A is the attempt budget and B the per-word probe
// budget; filling is O(rows·cols).
package builder
