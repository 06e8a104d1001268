// SPDX-License-Identifier: MIT
// Package: katas/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w.
//   • Generators never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrBadSize indicates rows or cols below 1.
// Usage: if errors.Is(err, ErrBadSize) { /* fix dimensions */ }.
var ErrBadSize = errors.New("builder: invalid size")

// ErrWordTooLong indicates a word with more runes than the grid has cells.
var ErrWordTooLong = errors.New("builder: word longer than grid")

// ErrConstructFailed indicates that the generator exhausted its attempts
// without planting every word.
// Usage: if errors.Is(err, ErrConstructFailed) { /* retry with different seed */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
