package sample_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/gridgraph"
	"github.com/katalvlaran/wfc/overlap"
	"github.com/katalvlaran/wfc/sample"
)

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

func TestFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(0, 0, red)
	img.SetRGBA(2, 1, white)

	got := sample.FromImage(img)
	require.Len(t, got, 2)
	require.Len(t, got[0], 3)
	assert.Equal(t, red, got[0][0])
	assert.Equal(t, white, got[1][2])
	assert.Equal(t, color.RGBA{}, got[1][0])
}

func TestFromImage_OffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.SetRGBA(2, 1, red)
	sub := img.SubImage(image.Rect(2, 1, 4, 3))

	got := sample.FromImage(sub)
	require.Len(t, got, 2)
	require.Len(t, got[0], 2)
	assert.Equal(t, red, got[0][0])

	assert.Nil(t, sample.FromImage(image.NewRGBA(image.Rectangle{})))
}

func TestFromImage_Gray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.SetGray(1, 0, color.Gray{Y: 255})

	got := sample.FromImage(img)
	assert.Equal(t, []color.RGBA{black, white}, got[0])
}

func TestToImage(t *testing.T) {
	grid := [][]color.RGBA{
		{red, white},
		{black, red},
		{white, white},
	}
	img, err := sample.ToImage(grid, 3)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 6, 9), img.Bounds())
	for y := 0; y < 9; y++ {
		for x := 0; x < 6; x++ {
			assert.Equal(t, grid[y/3][x/3], img.RGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}

	one, err := sample.ToImage(grid, 1)
	require.NoError(t, err)
	assert.Equal(t, grid, sample.FromImage(one))
}

func TestToImage_Errors(t *testing.T) {
	_, err := sample.ToImage(nil, 2)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
	_, err = sample.ToImage([][]color.RGBA{{red}, {red, red}}, 2)
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
	_, err = sample.ToImage([][]color.RGBA{{red}}, 0)
	assert.ErrorIs(t, err, sample.ErrScale)
}

// A bitmap goes through the overlapping model and comes back as an image
// using only the sample's colours.
func TestRoundTripThroughOverlap(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 6, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			c := white
			if (x+y)%2 == 0 {
				c = black
			}
			src.SetRGBA(x, y, c)
		}
	}

	w, err := overlap.New(sample.FromImage(src), 8, 5, 9, overlap.DefaultOptions())
	require.NoError(t, err)
	_, err = w.CollapseWithin(1000)
	require.NoError(t, err)
	out, err := w.Payloads()
	require.NoError(t, err)

	img, err := sample.ToImage(out, 2)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 10), img.Bounds())
	for y := 0; y < 5; y++ {
		for x := 0; x < 8; x++ {
			assert.Contains(t, []color.RGBA{black, white}, out[y][x])
			if x > 0 {
				assert.NotEqual(t, out[y][x-1], out[y][x])
			}
		}
	}
}
