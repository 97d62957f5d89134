package sample_test

import (
	"fmt"
	"image/color"

	"github.com/katalvlaran/wfc/sample"
)

// ExampleToImage upscales a 2×1 payload grid by 4.
func ExampleToImage() {
	grid := [][]color.RGBA{{{R: 255, A: 255}, {B: 255, A: 255}}}

	img, _ := sample.ToImage(grid, 4)
	fmt.Println(img.Bounds())
	fmt.Println(img.RGBAAt(3, 3), img.RGBAAt(4, 0))

	// Output:
	// (0,0)-(8,4)
	// {255 0 0 255} {0 0 255 255}
}
