package builder_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/katas/builder"
	"github.com/katalvlaran/katas/gridgraph"
	"github.com/katalvlaran/katas/snake"
)

// TestPuzzle_Errors runs table-driven validation checks.
func TestPuzzle_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		rows, cols int
		words      []string
		err        error
	}{
		{"ZeroRows", 0, 3, nil, builder.ErrBadSize},
		{"NegativeCols", 3, -1, nil, builder.ErrBadSize},
		{"WordTooLong", 2, 2, []string{"ABCDE"}, builder.ErrWordTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := builder.Puzzle(tc.rows, tc.cols, tc.words)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, rows)
		})
	}
}

// TestPuzzle_ConstructFailed asks for two words that cannot coexist in one cell.
func TestPuzzle_ConstructFailed(t *testing.T) {
	t.Parallel()

	_, err := builder.Puzzle(1, 1, []string{"A", "B"}, builder.WithMaxAttempts(2))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

// TestPuzzle_Shape checks dimensions and the filler alphabet.
func TestPuzzle_Shape(t *testing.T) {
	t.Parallel()

	rows, err := builder.Puzzle(4, 6, nil, builder.WithSeed(3), builder.WithAlphabet("xy"))
	require.NoError(t, err)
	require.Len(t, rows, 4)
	for _, row := range rows {
		assert.Equal(t, 6, utf8.RuneCountInString(row))
		for _, r := range row {
			assert.Contains(t, "xy", string(r))
		}
	}
}

// TestPuzzle_Deterministic verifies that a fixed seed locks the output.
func TestPuzzle_Deterministic(t *testing.T) {
	t.Parallel()

	words := []string{"SNAKE", "GRID", "PATH"}
	a, err := builder.Puzzle(5, 5, words, builder.WithSeed(99))
	require.NoError(t, err)
	b, err := builder.Puzzle(5, 5, words, builder.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestPuzzle_WordsArePlanted searches every planted word in the output.
func TestPuzzle_WordsArePlanted(t *testing.T) {
	t.Parallel()

	words := []string{"ANGULAR", "REACT", "UNDEFINED", "STRING", "ЖУК"}
	for seed := int64(1); seed <= 20; seed++ {
		rows, err := builder.Puzzle(7, 8, words, builder.WithSeed(seed))
		require.NoError(t, err, "seed %d", seed)

		g, err := gridgraph.FromRows(rows)
		require.NoError(t, err)
		for _, w := range words {
			p, err := snake.FindPath(g, w)
			require.NoError(t, err, "seed %d word %s grid %v", seed, w, rows)
			assert.NoError(t, snake.Verify(g, w, p))
		}
	}
}

// TestPuzzle_FullGrid fills a 2×2 grid exactly with one word.
func TestPuzzle_FullGrid(t *testing.T) {
	t.Parallel()

	rows, err := builder.Puzzle(2, 2, []string{"ABCD"}, builder.WithSeed(5))
	require.NoError(t, err)
	ok, err := snake.SearchRows(rows, "ABCD")
	require.NoError(t, err)
	assert.True(t, ok)
}
