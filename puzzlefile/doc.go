// Package puzzlefile reads and writes snaking-word puzzles in HCL.
//
// A file holds any number of puzzle blocks:
//
//	puzzle "angular" {
//	  rows  = ["ANGULAR", "REDNCAE", "RFIDTCL", "AGNEGSA", "YTIRTSP"]
//	  words = ["REACT", "NULL"]
//
//	  # optional: the verdict each word must get
//	  expect = {
//	    REACT = true
//	    NULL  = false
//	  }
//	}
//
// Attribute values are full HCL expressions evaluated with the go-cty
// standard string functions upper, lower, split, join, reverse and trimspace,
// so rows = split(",", "AB,CD") is equivalent to rows = ["AB", "CD"].
//
// Words named only in expect are appended to Words in sorted order. Every
// puzzle's rows are validated through gridgraph, so a ragged puzzle fails to
// load with gridgraph.ErrNonRectangular.
//
// Errors:
//
//   - ErrDuplicateName  two puzzles share a label.
//   - gridgraph.ErrNonRectangular
//   - hcl.Diagnostics for syntax, decoding and evaluation problems.
package puzzlefile
