// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/katas/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Neighbors lists the orthogonal neighbours of the top-right
// corner of a small letter grid. Neighbours never wrap around the edge.
func ExampleGrid_Neighbors() {
	g, _ := gridgraph.FromRows([]string{
		"ANG",
		"RED",
	})

	corner := gridgraph.Cell{Row: 0, Col: 2}
	for _, n := range g.Neighbors(corner, nil) {
		fmt.Printf("%s=%c\n", n, g.At(n))
	}

	// Output:
	// 1,2=D
	// 0,1=N
}

////////////////////////////////////////////////////////////////////////////////
// Example: Find
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Find shows the head candidates for a word starting with 'R'.
func ExampleGrid_Find() {
	g, _ := gridgraph.FromRows([]string{
		"ANGULAR",
		"REDNCAE",
		"RFIDTCL",
	})

	fmt.Println(g.Find('R'))

	// Output:
	// [0,6 1,0 2,0]
}
