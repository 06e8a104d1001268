package permute

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

var (
	// ErrNegative indicates a negative length was passed to Count.
	ErrNegative = errors.New("permute: negative length")
	// ErrTooLarge indicates n! overflows uint64.
	ErrTooLarge = errors.New("permute: factorial overflows uint64")
)

// maxFactorial is the largest n whose factorial fits in a uint64.
const maxFactorial = 20

// Permutations returns a lazy sequence of every ordering of the runes in
// chars. The first value is chars itself; an empty input yields a single
// empty string.
func Permutations(chars string) iter.Seq[string] {
	return func(yield func(string) bool) {
		a := []rune(chars)
		if !yield(string(a)) {
			return
		}
		// c[i] counts the swaps already done at level i.
		c := make([]int, len(a))
		for i := 1; i < len(a); {
			if c[i] >= i {
				c[i] = 0
				i++
				continue
			}
			if i%2 == 0 {
				a[0], a[i] = a[i], a[0]
			} else {
				a[c[i]], a[i] = a[i], a[c[i]]
			}
			if !yield(string(a)) {
				return
			}
			c[i]++
			i = 1
		}
	}
}

// Collect materializes Permutations(chars).
func Collect(chars string) []string {
	return slices.Collect(Permutations(chars))
}

// Count returns n!, the number of values Permutations yields for n runes.
func Count(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("Count(%d): %w", n, ErrNegative)
	}
	if n > maxFactorial {
		return 0, fmt.Errorf("Count(%d): %w", n, ErrTooLarge)
	}
	f := uint64(1)
	for i := 2; i <= n; i++ {
		f *= uint64(i)
	}

	return f, nil
}
