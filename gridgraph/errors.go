package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrSizeMismatch indicates a value grid whose dimensions differ from the GridGraph.
	ErrSizeMismatch = errors.New("gridgraph: value grid does not match grid dimensions")
)
