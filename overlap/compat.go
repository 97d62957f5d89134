package overlap

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wfc/gridgraph"
	"github.com/katalvlaran/wfc/tile"
)

// compatible reports whether b placed at (dx,dy) relative to a agrees with
// a on every cell covered by both windows.
// Complexity: O(W²).
func compatible[T comparable](a, b Pattern[T], dx, dy int) bool {
	s := a.Size
	for ay := 0; ay < s; ay++ {
		by := ay - dy
		if by < 0 || by >= s {
			continue
		}
		for ax := 0; ax < s; ax++ {
			bx := ax - dx
			if bx < 0 || bx >= s {
				continue
			}
			if a.ids[ay*s+ax] != b.ids[by*s+bx] {
				return false
			}
		}
	}

	return true
}

// buildPallet turns patterns into tiles. Pattern a is handled by one
// goroutine that tests it against every pattern at every kernel offset
// and writes only pallet[a], so the result does not depend on workers.
// pairs[a] is the number of compatible (offset, b) pairs of pattern a.
// Complexity: O(P²·K²·W²) time, O(P·K²·P/64) memory.
func buildPallet[T comparable](ctx context.Context, ps []Pattern[T], workers int) (pallet []tile.Tile[T], pairs []int, err error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	size := len(ps)
	kernel := tile.KernelForWindow(ps[0].Size)
	offsets := gridgraph.KernelOffsets(kernel / 2)

	pallet = make([]tile.Tile[T], size)
	pairs = make([]int, size)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for a := range ps {
		a := a // per-iteration copy; go directive is below 1.22
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := tile.DisallowAll(size, kernel, ps[a].Center())
			if err != nil {
				return err
			}
			t.ClearCenter()
			t.Weight = uint32(ps[a].Count)
			for _, d := range offsets {
				for b := range ps {
					if !compatible(ps[a], ps[b], d[0], d[1]) {
						continue
					}
					if err = t.AllowAt(d[0], d[1], b); err != nil {
						return err
					}
					pairs[a]++
				}
			}
			pallet[a] = t

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, nil, err
	}

	return pallet, pairs, nil
}
