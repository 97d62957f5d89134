package observe_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/observe"
	"github.com/katalvlaran/wfc/tile"
	"github.com/katalvlaran/wfc/wave"
)

// checker returns two tiles that refuse themselves orthogonally.
func checker(t *testing.T) []tile.Tile[int] {
	t.Helper()
	p := make([]tile.Tile[int], 2)
	for i := range p {
		tl, err := tile.AllowAll(2, 3, i)
		require.NoError(t, err)
		require.NoError(t, tl.DisallowDirect(i))
		p[i] = tl
	}

	return p
}

// unconstrained returns n tiles that allow everything.
func unconstrained(t *testing.T, n int) []tile.Tile[int] {
	t.Helper()
	p := make([]tile.Tile[int], n)
	for i := range p {
		tl, err := tile.AllowAll(n, 3, i)
		require.NoError(t, err)
		p[i] = tl
	}

	return p
}

func decode(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}

	return out
}

func TestLogger_StepsAndFinish(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	w, err := wave.New(unconstrained(t, 2), 2, 2, 1, wave.WithObserver(observe.Logger(log)))
	require.NoError(t, err)

	n, err := w.Collapse()
	require.NoError(t, err)
	require.Equal(t, 4, n)

	events := decode(t, &buf)
	require.Len(t, events, 5)
	for i, ev := range events[:4] {
		assert.Equal(t, "debug", ev["level"])
		assert.Equal(t, "wave-step", ev["message"])
		assert.EqualValues(t, i+1, ev["step"])
		assert.Equal(t, false, ev["rolled_back"])
	}
	assert.Equal(t, "open", events[0]["state"])
	assert.Equal(t, "collapsed", events[3]["state"])

	last := events[4]
	assert.Equal(t, "info", last["level"])
	assert.Equal(t, "wave-finished", last["message"])
	assert.EqualValues(t, 4, last["steps"])
	assert.EqualValues(t, 0, last["rollbacks"])
}

func TestLogger_Contradiction(t *testing.T) {
	p := unconstrained(t, 2)
	for i := range p {
		require.NoError(t, p[i].DisallowDirect(0))
		require.NoError(t, p[i].DisallowDirect(1))
	}
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.InfoLevel)
	w, err := wave.New(p, 3, 3, 1,
		wave.WithObserver(observe.Logger(log)),
		wave.WithBacktracking(false))
	require.NoError(t, err)

	n, err := w.Collapse()
	require.NoError(t, err)
	require.Greater(t, n, 1)

	// Only the final step reports; earlier steps leave cells open.
	events := decode(t, &buf)
	require.Len(t, events, 1, "debug steps are filtered out")
	assert.Equal(t, "warn", events[0]["level"])
	assert.Equal(t, "contradiction", events[0]["state"])
	assert.EqualValues(t, n, events[0]["steps"])
}

func TestRecorder_Frames(t *testing.T) {
	rec := observe.NewRecorder(true)
	w, err := wave.New(checker(t), 4, 3, 5, wave.WithObserver(rec))
	require.NoError(t, err)

	_, err = w.CollapseAt(1, 1)
	require.NoError(t, err)

	require.Len(t, rec.Steps, 1)
	require.Len(t, rec.Frames, 1)
	tiles, err := w.Tiles()
	require.NoError(t, err)
	assert.Equal(t, tiles, rec.Frames[0])
	assert.Equal(t, 1, rec.Steps[0].X)

	rec.Reset()
	assert.Empty(t, rec.Steps)
	assert.Empty(t, rec.Frames)
}

func TestRecorder_PartialFrames(t *testing.T) {
	rec := observe.NewRecorder(true)
	w, err := wave.New(unconstrained(t, 3), 3, 2, 5, wave.WithObserver(rec))
	require.NoError(t, err)

	_, err = w.Collapse()
	require.NoError(t, err)
	require.Len(t, rec.Frames, 6)

	// Cells resolve in scan order (x outer, y inner); frame i has i+1 of them.
	for i, frame := range rec.Frames {
		resolved := 0
		for _, row := range frame {
			for _, id := range row {
				if id >= 0 {
					resolved++
				}
			}
		}
		assert.Equal(t, i+1, resolved)
		s := rec.Steps[i]
		assert.Equal(t, s.Tile, frame[s.Y][s.X])
	}
	assert.Equal(t, [2]int{0, 1}, [2]int{rec.Steps[1].X, rec.Steps[1].Y})
}

func TestMulti(t *testing.T) {
	a := observe.NewRecorder(false)
	b := observe.NewRecorder(false)
	w, err := wave.New(unconstrained(t, 2), 2, 2, 1, wave.WithObserver(observe.Multi(a, nil, b)))
	require.NoError(t, err)

	_, err = w.Collapse()
	require.NoError(t, err)
	assert.Len(t, a.Steps, 4)
	assert.Equal(t, a.Steps, b.Steps)
	assert.Nil(t, a.Frames)
}
