// SPDX-License-Identifier: MIT

// Package sample converts between in-memory images and the [y][x] payload
// grids consumed and produced by the overlapping model.
//
// Decoding and encoding files is left to the caller (image/png etc.).
package sample

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/katalvlaran/wfc/gridgraph"
)

// ErrScale indicates a non-positive upscale factor.
var ErrScale = errors.New("sample: scale must be at least 1")

// FromImage returns the pixels of img as a [y][x] grid of RGBA values,
// with img.Bounds().Min mapped to (0,0). An empty image yields nil.
// Complexity: O(W·H).
func FromImage(img image.Image) [][]color.RGBA {
	b := img.Bounds()
	if b.Empty() {
		return nil
	}
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	out := make([][]color.RGBA, b.Dy())
	for y := range out {
		out[y] = make([]color.RGBA, b.Dx())
		for x := range out[y] {
			out[y][x] = rgba.RGBAAt(x, y)
		}
	}

	return out
}

// ToImage renders a [y][x] grid of colours, each cell becoming a
// scale×scale block (nearest-neighbour upscaling).
//
// Returns gridgraph.ErrEmptyGrid or gridgraph.ErrNonRectangular for a
// malformed grid, ErrScale if scale < 1.
// Complexity: O(W·H·scale²).
func ToImage(grid [][]color.RGBA, scale int) (*image.RGBA, error) {
	w, h, err := gridgraph.Dimensions(grid)
	if err != nil {
		return nil, err
	}
	if scale < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrScale, scale)
	}

	src := image.NewRGBA(image.Rect(0, 0, w, h))
	for y, row := range grid {
		for x, c := range row {
			src.SetRGBA(x, y, c)
		}
	}
	if scale == 1 {
		return src, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst, nil
}
