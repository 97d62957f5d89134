// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/wfc/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents labels contiguous regions of equal
// tile ids in a resolved 5×3 output. The -1 cell is unresolved and skipped.
//
// Complexity: O(W·H·4), Memory: O(W·H)
func ExampleGridGraph_ConnectedComponents() {
	tiles := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{-1, 0, 2, 2, 0},
	}
	gg, _ := gridgraph.New(5, 3, gridgraph.Conn4)

	comps, _ := gg.ConnectedComponents(tiles)
	fmt.Println("regions:", len(comps))
	for i, comp := range comps {
		x0, y0 := gg.Coordinate(comp[0])
		fmt.Printf("region %d (tile %d):", i, tiles[y0][x0])
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// regions: 7
	// region 0 (tile 0): (0,0)
	// region 1 (tile 1): (1,0) (2,0) (1,1) (0,1)
	// region 2 (tile 0): (3,0)
	// region 3 (tile 2): (4,0) (4,1) (3,1) (3,2) (2,2)
	// region 4 (tile 0): (2,1)
	// region 5 (tile 0): (1,2)
	// region 6 (tile 0): (4,2)
}
