package snake

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/katas/gridgraph"
)

// SearchRows builds a grid from equal-length string rows and reports whether
// target can be traced through it.
// Returns gridgraph.ErrNonRectangular for ragged rows.
func SearchRows(rows []string, target string, opts ...Option) (bool, error) {
	g, err := gridgraph.FromRows(rows)
	if err != nil {
		return false, fmt.Errorf("snake: %w", err)
	}

	return Search(g, target, opts...)
}

// Search reports whether target can be traced through g as a self-avoiding
// path of 4-adjacent cells. Neither g nor target is modified.
// Errors arise only from a nil grid, cancellation, the step budget or hooks.
func Search(g *gridgraph.Grid, target string, opts ...Option) (bool, error) {
	_, err := FindPath(g, target, opts...)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// FindPath returns the first path found whose cells spell target, or
// ErrNotFound. An empty target yields an empty, non-nil path.
func FindPath(g *gridgraph.Grid, target string, opts ...Option) (Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	s := newSearcher(g, resolve(opts))

	return s.find([]rune(target))
}

// FindAll searches g for every word in targets and reports each verdict.
// Duplicate words share a single entry. The first error aborts the batch.
func FindAll(g *gridgraph.Grid, targets []string, opts ...Option) (map[string]bool, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	s := newSearcher(g, resolve(opts))
	found := make(map[string]bool, len(targets))
	for _, word := range targets {
		if _, seen := found[word]; seen {
			continue
		}
		_, err := s.find([]rune(word))
		switch {
		case err == nil:
			found[word] = true
		case errors.Is(err, ErrNotFound):
			found[word] = false
		default:
			return found, fmt.Errorf("snake: word %q: %w", word, err)
		}
	}

	return found, nil
}

// frame is one level of the explicit DFS stack: a path cell together with
// the neighbours still to be probed from it.
type frame struct {
	cell gridgraph.Cell
	nbs  [4]gridgraph.Cell
	n    int // number of valid entries in nbs
	next int // index of the next neighbour to probe
}

// searcher encapsulates the state of a search over one grid. The visited
// bitmap and path are reused across words and always left clean.
type searcher struct {
	grid    *gridgraph.Grid
	opts    Options
	counts  map[rune]int
	visited []bool
	path    Path
	stack   []frame
	buf     []gridgraph.Cell
	steps   int
}

func newSearcher(g *gridgraph.Grid, opts Options) *searcher {
	return &searcher{
		grid:    g,
		opts:    opts,
		visited: make([]bool, g.Size()),
		buf:     make([]gridgraph.Cell, 0, 4),
	}
}

// find runs the full search for one word.
func (s *searcher) find(target []rune) (Path, error) {
	if len(target) == 0 {
		return Path{}, nil
	}
	if !s.feasible(target) {
		return nil, ErrNotFound
	}
	s.steps = 0
	for _, head := range s.grid.Find(target[0]) {
		ok, err := s.walk(head, target)
		if err != nil || ok {
			p := make(Path, len(s.path))
			copy(p, s.path)
			s.reset()
			if err != nil {
				return nil, err
			}
			return p, nil
		}
	}

	return nil, ErrNotFound
}

// feasible rejects words that no simple path in the grid could spell:
// longer than the grid, or needing more copies of a rune than exist.
func (s *searcher) feasible(target []rune) bool {
	if len(target) > s.grid.Size() {
		return false
	}
	if s.counts == nil {
		s.counts = s.grid.Counts()
	}
	need := make(map[rune]int, len(target))
	for _, r := range target {
		need[r]++
		if need[r] > s.counts[r] {
			return false
		}
	}

	return true
}

// walk performs the backtracking search rooted at head, which must already
// hold target[0]. On success the path holds the full match.
func (s *searcher) walk(head gridgraph.Cell, target []rune) (bool, error) {
	if err := s.push(head); err != nil {
		return false, err
	}
	if len(target) == 1 {
		return true, nil
	}

	for len(s.stack) > 0 {
		top := &s.stack[len(s.stack)-1]

		// Exhausted: undo this cell so siblings see a clean path.
		if top.next >= top.n {
			if err := s.pop(); err != nil {
				return false, err
			}
			continue
		}
		nb := top.nbs[top.next]
		top.next++

		if err := s.tick(); err != nil {
			return false, err
		}
		if s.grid.At(nb) != target[len(s.path)] || s.visited[s.grid.Index(nb)] {
			continue
		}
		if err := s.push(nb); err != nil {
			return false, err
		}
		if len(s.path) == len(target) {
			return true, nil
		}
	}

	return false, nil
}

// push appends c to the path, marks it visited and opens a stack frame.
func (s *searcher) push(c gridgraph.Cell) error {
	s.visited[s.grid.Index(c)] = true
	s.path = append(s.path, c)

	f := frame{cell: c}
	s.buf = s.grid.Neighbors(c, s.buf)
	f.n = copy(f.nbs[:], s.buf)
	s.stack = append(s.stack, f)

	if s.opts.OnVisit != nil {
		if err := s.opts.OnVisit(c, len(s.path)-1); err != nil {
			return fmt.Errorf("snake: OnVisit hook at %s: %w", c, err)
		}
	}

	return nil
}

// pop removes the last path cell and its frame, clearing its visited mark.
func (s *searcher) pop() error {
	last := len(s.path) - 1
	c := s.path[last]
	s.visited[s.grid.Index(c)] = false
	s.path = s.path[:last]
	s.stack = s.stack[:len(s.stack)-1]

	if s.opts.OnBacktrack != nil {
		if err := s.opts.OnBacktrack(c, last); err != nil {
			return fmt.Errorf("snake: OnBacktrack hook at %s: %w", c, err)
		}
	}

	return nil
}

// tick accounts one neighbour probe against the budget and the context.
func (s *searcher) tick() error {
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
	}
	s.steps++
	if s.opts.MaxSteps > 0 && s.steps > s.opts.MaxSteps {
		return fmt.Errorf("%d probes: %w", s.opts.MaxSteps, ErrStepBudget)
	}

	return nil
}

// reset clears whatever a finished or aborted walk left behind.
func (s *searcher) reset() {
	for _, c := range s.path {
		s.visited[s.grid.Index(c)] = false
	}
	s.path = s.path[:0]
	s.stack = s.stack[:0]
}
