// SPDX-License-Identifier: MIT
// Package: katas/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng          = seeded with defaultRNGSeed
//   • alphabet     = "A".."Z"
//   • maxAttempts  = defaultMaxAttempts
//   • probeBudget  = defaultProbeBudget (per planted word)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by the generator.
type builderConfig struct {
	rng         *rand.Rand
	alphabet    []rune
	maxAttempts int
	probeBudget int
}

const (
	defaultAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	defaultMaxAttempts = 64
	defaultProbeBudget = 4096
	// defaultRNGSeed is used when callers pass seed==0 or no RNG at all.
	defaultRNGSeed int64 = 1
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		alphabet:    []rune(defaultAlphabet),
		maxAttempts: defaultMaxAttempts,
		probeBudget: defaultProbeBudget,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}
