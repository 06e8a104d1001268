package puzzlefile_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/katas/puzzlefile"
)

// ExampleWrite renders a generated puzzle as HCL.
func ExampleWrite() {
	p := &puzzlefile.Puzzle{
		Name:  "square",
		Rows:  []string{"AB", "CD"},
		Words: []string{"ABDC"},
	}
	if err := puzzlefile.Write(os.Stdout, []*puzzlefile.Puzzle{p}); err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// puzzle "square" {
	//   rows  = ["AB", "CD"]
	//   words = ["ABDC"]
	// }
}
