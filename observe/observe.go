// Package observe provides ready-made wave.Observer implementations:
// structured progress logging, step recording and fan-out.
package observe

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/wfc/wave"
)

// LogObserver writes one Debug event per step and one event once no cell
// is left open: Info on success, Warn when a contradiction was kept.
type LogObserver struct {
	log zerolog.Logger
}

// Logger returns an observer writing to log.
func Logger(log zerolog.Logger) *LogObserver {
	return &LogObserver{log: log}
}

// OnStep implements wave.Observer.
func (o *LogObserver) OnStep(v wave.View, r wave.StepResult) {
	state := v.State()
	o.log.Debug().
		Int("step", r.Step).
		Int("x", r.X).
		Int("y", r.Y).
		Int("tile", r.Tile).
		Bool("rolled_back", r.RolledBack).
		Stringer("state", state).
		Msg("wave-step")

	if !v.IsDone() {
		return
	}
	var ev *zerolog.Event
	if state == wave.Contradiction {
		ev = o.log.Warn()
	} else {
		ev = o.log.Info()
	}
	ev.Int("steps", v.Steps()).
		Int("rollbacks", v.Rollbacks()).
		Int("width", v.Width()).
		Int("height", v.Height()).
		Stringer("state", state).
		Msg("wave-finished")
}

// Recorder keeps every StepResult and, when built with frames, the
// [y][x] grid of resolved ids (-1 otherwise) after each step.
type Recorder struct {
	Steps  []wave.StepResult
	Frames [][][]int

	frames bool
}

// NewRecorder returns an empty Recorder; frames enables grid capture,
// which costs O(W·H) per step.
func NewRecorder(frames bool) *Recorder {
	return &Recorder{frames: frames}
}

// OnStep implements wave.Observer.
func (r *Recorder) OnStep(v wave.View, res wave.StepResult) {
	r.Steps = append(r.Steps, res)
	if !r.frames {
		return
	}
	frame := make([][]int, v.Height())
	for y := range frame {
		frame[y] = make([]int, v.Width())
		for x := range frame[y] {
			frame[y][x], _ = v.TileAt(x, y)
		}
	}
	r.Frames = append(r.Frames, frame)
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.Steps = r.Steps[:0]
	r.Frames = r.Frames[:0]
}

// Multi forwards each step to every non-nil observer, in order.
func Multi(obs ...wave.Observer) wave.Observer {
	return wave.ObserverFunc(func(v wave.View, r wave.StepResult) {
		for _, o := range obs {
			if o != nil {
				o.OnStep(v, r)
			}
		}
	})
}
