// File: wave/example_test.go
package wave_test

import (
	"fmt"

	"github.com/katalvlaran/wfc/tile"
	"github.com/katalvlaran/wfc/wave"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Collapse
////////////////////////////////////////////////////////////////////////////////

// ExampleWave_Collapse solves a 4×3 checkerboard. Each tile refuses itself
// at the four orthogonal offsets, so the first choice decides every cell.
// Giving "O" weight 0 makes the first draw, and so the output, fixed.
func ExampleWave_Collapse() {
	x, _ := tile.AllowAll(2, 3, "X")
	o, _ := tile.AllowAll(2, 3, "O")
	_ = x.DisallowDirect(0)
	_ = o.DisallowDirect(1)
	o.Weight = 0

	w, err := wave.New([]tile.Tile[string]{x, o}, 4, 3, 42)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	steps, _ := w.Collapse()
	grid, _ := w.Payloads()

	fmt.Println("steps:", steps, "state:", w.State())
	for _, row := range grid {
		for _, s := range row {
			fmt.Print(s)
		}
		fmt.Println()
	}

	// Output:
	// steps: 1 state: collapsed
	// XOXO
	// OXOX
	// XOXO
}

////////////////////////////////////////////////////////////////////////////////
// Example: Ban
////////////////////////////////////////////////////////////////////////////////

// ExampleWave_Ban pins the centre of a 3×3 map to land by banning the
// other two tiles. Sea may not touch land, so sea disappears everywhere.
func ExampleWave_Ban() {
	names := []string{"sea", "coast", "land"}
	pallet := make([]tile.Tile[string], len(names))
	for i, n := range names {
		pallet[i], _ = tile.AllowAll(len(names), 3, n)
	}
	_ = pallet[0].Disallow(2)
	_ = pallet[2].Disallow(0)

	w, _ := wave.New(pallet, 3, 3, 1)
	_ = w.Ban(1, 1, 0)
	_ = w.Ban(1, 1, 1)

	fmt.Println("centre:", w.Candidates(1, 1))
	fmt.Println("corner:", w.Candidates(0, 0))
	fmt.Println("banning land:", w.Ban(1, 1, 2))

	// Output:
	// centre: [2]
	// corner: [1 2]
	// banning land: wave: contradiction: banning 2 at (1,1)
}
