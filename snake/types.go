// Package snake defines types and options for the snaking-word search,
// including cancellation, step budgets and visit/backtrack hooks.
package snake

import (
	"context"
	"errors"

	"github.com/katalvlaran/katas/gridgraph"
)

var (
	// ErrNilGrid is returned when a nil *gridgraph.Grid is passed in.
	ErrNilGrid = errors.New("snake: grid is nil")

	// ErrNotFound indicates that FindPath found no path spelling the word.
	ErrNotFound = errors.New("snake: word not found")

	// ErrStepBudget indicates that the search exceeded its MaxSteps budget
	// before reaching a verdict.
	ErrStepBudget = errors.New("snake: step budget exhausted")

	// ErrInvalidPath indicates that Verify rejected a path.
	ErrInvalidPath = errors.New("snake: invalid path")
)

// Path is an ordered sequence of distinct, pairwise 4-adjacent cells.
type Path []gridgraph.Cell

// Option configures optional behavior of a search.
type Option func(*Options)

// Options holds configurable parameters for a search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxSteps, if positive, limits how many neighbour probes a single word
	// may perform. Default is 0 (no limit).
	MaxSteps int

	// OnVisit, if non-nil, is invoked when a cell is appended to the path.
	// depth is the index of the cell within the path.
	// Returning an error aborts the search with that error.
	OnVisit func(c gridgraph.Cell, depth int) error

	// OnBacktrack, if non-nil, is invoked when a cell is popped from the path.
	OnBacktrack func(c gridgraph.Cell, depth int) error
}

// DefaultOptions returns Options with a background context, no step limit
// and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxSteps:    0,
		OnVisit:     nil,
		OnBacktrack: nil,
	}
}

// WithContext sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps bounds the number of neighbour probes per word.
// Panics if n < 1.
func WithMaxSteps(n int) Option {
	if n < 1 {
		panic("snake: WithMaxSteps(n<1)")
	}
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithOnVisit installs fn as the cell-entry hook.
func WithOnVisit(fn func(c gridgraph.Cell, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnBacktrack installs fn as the cell-exit hook.
func WithOnBacktrack(fn func(c gridgraph.Cell, depth int) error) Option {
	return func(o *Options) {
		o.OnBacktrack = fn
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
