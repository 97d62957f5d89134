package wave_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/tile"
)

// Tile ids of coastPallet.
const (
	sea = iota
	coast
	land
)

// allowAllPallet returns n unconstrained 3×3 tiles with the given weights
// (weight 1 when weights is shorter than n).
func allowAllPallet(t testing.TB, n int, weights ...uint32) []tile.Tile[int] {
	t.Helper()
	p := make([]tile.Tile[int], n)
	for i := range p {
		tl, err := tile.AllowAll(n, 3, i)
		require.NoError(t, err)
		if i < len(weights) {
			tl.Weight = weights[i]
		}
		p[i] = tl
	}

	return p
}

// coastPallet: sea and land never touch (not even diagonally); coast goes
// anywhere. Every partial assignment stays solvable, so runs never
// contradict.
func coastPallet(t testing.TB) []tile.Tile[string] {
	t.Helper()
	names := []string{"~", ".", "#"}
	weights := []uint32{2, 1, 2}
	p := make([]tile.Tile[string], len(names))
	for i := range p {
		tl, err := tile.AllowAll(len(names), 3, names[i])
		require.NoError(t, err)
		tl.Weight = weights[i]
		p[i] = tl
	}
	require.NoError(t, p[sea].Disallow(land))
	require.NoError(t, p[land].Disallow(sea))

	return p
}

// checkerPallet: two tiles that refuse themselves orthogonally, forcing a
// checkerboard from the first collapse.
func checkerPallet(t testing.TB) []tile.Tile[byte] {
	t.Helper()
	p := make([]tile.Tile[byte], 2)
	for i, c := range []byte{'X', 'O'} {
		tl, err := tile.AllowAll(2, 3, c)
		require.NoError(t, err)
		require.NoError(t, tl.DisallowDirect(i))
		p[i] = tl
	}

	return p
}

// poisonPallet: tile 0 forbids every tile orthogonally, so choosing it
// always empties a neighbour. Tile 1 is unconstrained. With weights
// 1000:1 nearly every first draw contradicts.
func poisonPallet(t testing.TB) []tile.Tile[int] {
	t.Helper()
	p := allowAllPallet(t, 2, 1000, 1)
	require.NoError(t, p[0].DisallowDirect(0))
	require.NoError(t, p[0].DisallowDirect(1))

	return p
}

// deadPallet: both tiles forbid everything orthogonally; every step
// contradicts.
func deadPallet(t testing.TB) []tile.Tile[int] {
	t.Helper()
	p := allowAllPallet(t, 2)
	for i := range p {
		require.NoError(t, p[i].DisallowDirect(0))
		require.NoError(t, p[i].DisallowDirect(1))
	}

	return p
}
