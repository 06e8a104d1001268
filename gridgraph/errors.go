package gridgraph

import "errors"

var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the grid was addressed.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
)
