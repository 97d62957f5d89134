package gridgraph

// New constructs a GridGraph of the given dimensions.
// Returns ErrEmptyGrid if width or height is not positive.
// Complexity: O(1).
func New(width, height int, conn Connectivity) (*GridGraph, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           width,
		Height:          height,
		Conn:            conn,
		neighborOffsets: offsets,
	}, nil
}

// Dimensions validates a [y][x] grid and returns its width and height.
// Returns ErrEmptyGrid if the grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(H).
func Dimensions[T any](values [][]T) (width, height int, err error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	height, width = len(values), len(values[0])
	for _, row := range values {
		if len(row) != width {
			return 0, 0, ErrNonRectangular
		}
	}

	return width, height, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Cells returns Width×Height.
func (gg *GridGraph) Cells() int {
	return gg.Width * gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// KernelOffsets lists every offset (dx,dy) with |dx|,|dy| ≤ radius,
// dx outer and dy inner. Position i of the result matches row i of a
// tile mask with the same radius.
// Complexity: O(K²) where K = 2·radius+1.
func KernelOffsets(radius int) [][2]int {
	if radius < 0 {
		return nil
	}
	k := 2*radius + 1
	out := make([][2]int, 0, k*k)
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			out = append(out, [2]int{dx, dy})
		}
	}

	return out
}
