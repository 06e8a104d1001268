package permute_test

import (
	"iter"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/katas/permute"
)

func TestPermutations_Small(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{""}},
		{"a", []string{"a"}},
		{"ab", []string{"ab", "ba"}},
		{"abc", []string{"abc", "acb", "bac", "bca", "cab", "cba"}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.ElementsMatch(t, tc.want, permute.Collect(tc.in))
		})
	}
}

// TestPermutations_Complete checks n! distinct orderings of the same runes.
func TestPermutations_Complete(t *testing.T) {
	for _, in := range []string{"abcd", "abcde", "ЖЯФЫЪЬ", "1234567"} {
		want, err := permute.Count(len([]rune(in)))
		require.NoError(t, err)

		sorted := sortRunes(in)
		seen := make(map[string]struct{})
		for p := range permute.Permutations(in) {
			assert.Equal(t, sorted, sortRunes(p), "not a reordering: %s", p)
			seen[p] = struct{}{}
		}
		assert.Equal(t, int(want), len(seen), in)
	}
}

func TestPermutations_EarlyStop(t *testing.T) {
	n := 0
	for range permute.Permutations("abcdefgh") {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

// TestPermutations_Restart verifies that a fresh range starts over.
func TestPermutations_Restart(t *testing.T) {
	seq := permute.Permutations("abcd")
	first := collect(seq)
	second := collect(seq)
	assert.Equal(t, first, second)
	assert.Equal(t, "abcd", first[0])
}

// TestPermutations_Pull drives the sequence as a one-shot iterator.
func TestPermutations_Pull(t *testing.T) {
	next, stop := iter.Pull(permute.Permutations("ab"))
	defer stop()

	v, ok := next()
	assert.True(t, ok)
	assert.Equal(t, "ab", v)
	v, ok = next()
	assert.True(t, ok)
	assert.Equal(t, "ba", v)
	_, ok = next()
	assert.False(t, ok, "exhausted")
	_, ok = next()
	assert.False(t, ok, "stays exhausted")
}

func TestCount(t *testing.T) {
	cases := []struct {
		n    int
		want uint64
		err  error
	}{
		{0, 1, nil},
		{1, 1, nil},
		{5, 120, nil},
		{20, 2432902008176640000, nil},
		{21, 0, permute.ErrTooLarge},
		{-1, 0, permute.ErrNegative},
	}
	for _, tc := range cases {
		got, err := permute.Count(tc.n)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func collect(seq iter.Seq[string]) []string {
	var out []string
	for s := range seq {
		out = append(out, s)
	}

	return out
}

func sortRunes(s string) string {
	r := []rune(s)
	sort.Slice(r, func(i, j int) bool { return r[i] < r[j] })

	return string(r)
}
