package permute_test

import (
	"fmt"

	"github.com/katalvlaran/katas/permute"
)

// ExamplePermutations prints every ordering of "abc" in generation order.
func ExamplePermutations() {
	for p := range permute.Permutations("abc") {
		fmt.Println(p)
	}

	// Output:
	// abc
	// bac
	// cab
	// acb
	// bca
	// cba
}
