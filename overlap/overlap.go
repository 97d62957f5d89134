package overlap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/wfc/gridgraph"
	"github.com/katalvlaran/wfc/tile"
	"github.com/katalvlaran/wfc/wave"
)

// Patterns extracts, deduplicates and (with opts.Mirror) mirrors the W×W
// windows of the [y][x] sample, in discovery order.
//
// Returns ErrEvenWindow, gridgraph.ErrEmptyGrid or
// gridgraph.ErrNonRectangular for a malformed sample, ErrSampleTooSmall if
// the sample is narrower or shorter than the window.
func Patterns[T comparable](sample [][]T, opts Options) ([]Pattern[T], error) {
	if opts.Window <= 0 || opts.Window%2 == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrEvenWindow, opts.Window)
	}
	width, height, err := gridgraph.Dimensions(sample)
	if err != nil {
		return nil, err
	}
	if width < opts.Window || height < opts.Window {
		return nil, fmt.Errorf("%w: %dx%d sample, window %d", ErrSampleTooSmall, width, height, opts.Window)
	}
	log := logger(opts)

	ps := extract(sample, width, height, opts.Window, interner[T]{})
	log.Debug().Int("windows", len(ps)).Int("window", opts.Window).Msg("patterns-extracted")
	ps = dedup(ps)
	log.Debug().Int("unique", len(ps)).Msg("patterns-deduplicated")
	if opts.Mirror {
		ps = dedup(mirror(ps))
		log.Debug().Int("unique", len(ps)).Msg("patterns-mirrored")
	}
	for i, p := range ps {
		log.Trace().Int("id", i).Int("count", p.Count).Interface("cells", p.Cells).Msg("pattern")
	}

	return ps, nil
}

// Synthesize builds the pallet for sample: one tile per pattern, weighted
// by its count, carrying its centre value, with a (2W-1)×(2W-1) mask
// allowing exactly the overlaps that agree.
func Synthesize[T comparable](sample [][]T, opts Options) ([]tile.Tile[T], error) {
	return SynthesizeContext(context.Background(), sample, opts)
}

// SynthesizeContext is Synthesize with cancellation of the compatibility
// test.
func SynthesizeContext[T comparable](ctx context.Context, sample [][]T, opts Options) ([]tile.Tile[T], error) {
	ps, err := Patterns(sample, opts)
	if err != nil {
		return nil, err
	}
	pallet, pairs, err := buildPallet(ctx, ps, opts.Workers)
	if err != nil {
		return nil, err
	}
	log := logger(opts)
	total := 0
	for id, n := range pairs {
		total += n
		log.Trace().Int("tile", id).Int("compatible", n).Msg("tile-neighbours")
	}
	log.Debug().
		Int("tiles", len(pallet)).
		Int("compatible-pairs", total).
		Msg("pallet-built")

	return pallet, nil
}

// New synthesizes the pallet of sample and returns a width×height wave
// over it, seeded with seed and configured with opts.Engine.
func New[T comparable](sample [][]T, width, height int, seed uint64, opts Options) (*wave.Wave[T], error) {
	pallet, err := Synthesize(sample, opts)
	if err != nil {
		return nil, err
	}

	return wave.New(pallet, width, height, seed, opts.Engine...)
}

func logger(opts Options) *zerolog.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	nop := zerolog.Nop()

	return &nop
}
