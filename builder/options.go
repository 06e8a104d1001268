// SPDX-License-Identifier: MIT
// Package: katas/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes the generator by mutating a builderConfig
// instance before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithAlphabet sets the runes used to fill cells not covered by a word.
// Panics on an empty alphabet.
func WithAlphabet(alphabet string) BuilderOption {
	runes := []rune(alphabet)
	if len(runes) == 0 {
		panic("builder: WithAlphabet(\"\")")
	}
	return func(c *builderConfig) {
		c.alphabet = runes
	}
}

// WithMaxAttempts sets how many whole-board restarts are allowed.
// Panics if n < 1.
func WithMaxAttempts(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithMaxAttempts(n<1)")
	}
	return func(c *builderConfig) {
		c.maxAttempts = n
	}
}
