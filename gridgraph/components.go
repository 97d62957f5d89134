package gridgraph

// ConnectedComponents finds all contiguous regions of equal value in a
// [y][x] grid matching gg's dimensions, according to gg.Conn connectivity.
// Cells holding a negative value (unresolved markers) belong to no region.
// Returns a slice of components; each component is a slice of cell-indices
// (row-major) in BFS discovery order, components ordered by their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents(values [][]int) ([][]int, error) {
	w, h, err := Dimensions(values)
	if err != nil {
		return nil, err
	}
	if w != gg.Width || h != gg.Height {
		return nil, ErrSizeMismatch
	}

	seen := make([]bool, gg.Cells())
	var comps [][]int
	offsets := gg.NeighborOffsets()

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			label := values[y][x]
			if label < 0 {
				continue // unresolved
			}
			i0 := gg.Index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			var comp []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				ux, uy := gg.Coordinate(u)
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.InBounds(vx, vy) || values[vy][vx] != label {
						continue
					}
					vi := gg.Index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps, nil
}
