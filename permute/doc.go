// Package permute generates every ordering of a string's runes lazily.
//
// What:
//
//   - Permutations(chars): an iter.Seq[string] yielding all n! orderings.
//   - Collect(chars): the same orderings materialized into a slice.
//   - Count(n): n! with overflow detection.
//
// The generator is iterative (Heap's algorithm driven by an explicit counter
// stack), so call depth stays constant however long the input is. Runes are
// assumed distinct; repeated runes produce repeated strings. Ranging over the
// sequence again restarts generation from scratch; use iter.Pull for a
// one-shot, pull-style iterator.
//
// Complexity:
//
//   - Permutations: O(n!·n) time over a full range, O(n) memory.
//   - Count: O(n).
//
// Errors:
//
//   - ErrNegative: Count of a negative length.
//   - ErrTooLarge: n! does not fit in a uint64 (n > 20).
package permute
