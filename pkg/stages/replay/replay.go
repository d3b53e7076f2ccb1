// Package replay implements the gesture replay stage.
package replay

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/user/pinchview/pkg/gesture"
	"github.com/user/pinchview/pkg/pipeline"
	"github.com/user/pinchview/pkg/ports"
	"github.com/user/pinchview/pkg/script"
	"github.com/user/pinchview/pkg/viewer"
	"github.com/user/pinchview/pkg/viewport"
)

// ErrNoPicker is returned for "pick: next" when no picker is configured.
var ErrNoPicker = errors.New("no content picker configured")

const defaultFPS = 30.0

// Stage drives a viewer session through a script and samples it once per frame.
type Stage struct {
	animator ports.Animator
	picker   ports.ContentPicker
	source   ports.ContentSource
	logger   ports.Logger
}

// NewStage creates a new replay stage. picker serves "pick: next" steps and
// may be nil.
func NewStage(animator ports.Animator, picker ports.ContentPicker, source ports.ContentSource, logger ports.Logger) *Stage {
	return &Stage{
		animator: animator,
		picker:   picker,
		source:   source,
		logger:   logger.WithComponent("replay"),
	}
}

// Execute replays the script.
//
// Every step occupies one frame: the step acts at its time, the frame is
// sampled, and the clock then advances by one frame interval. A wait step occupies as many
// frames as fit in its duration, rounded up. Gesture events the viewer rejects
// are counted and skipped; failed picks abort the replay.
func (s *Stage) Execute(ctx context.Context, input pipeline.ReplayInput) (pipeline.ReplayResult, error) {
	fps := input.Script.FPS
	if fps <= 0 {
		fps = input.FPS
	}
	if fps <= 0 {
		fps = defaultFPS
	}
	frameDur := time.Duration(float64(time.Second) / fps)

	ctrl, err := viewport.New(input.Layout.Controller, s.animator, s.logger)
	if err != nil {
		return pipeline.ReplayResult{}, err
	}
	picker := &scriptPicker{fallback: s.picker}
	v := viewer.New(ctrl, picker, s.source, s.logger)

	r := &run{
		viewer:   v,
		cfg:      input.Layout.Controller,
		frameDur: frameDur,
	}

	s.logger.Debug("Replaying %d steps at %.1f fps", len(input.Script.Steps), fps)

	for i, step := range input.Script.Steps {
		if err := ctx.Err(); err != nil {
			return pipeline.ReplayResult{}, err
		}

		// Time passes before the step acts, so a step's own frame shows it
		// before any of its animation has run.
		r.advance()

		switch step.Kind {
		case script.KindPick:
			picker.next = step.URI
			changed, err := v.Pick(ctx)
			if err != nil {
				return pipeline.ReplayResult{}, fmt.Errorf("step %d: %w", i+1, err)
			}
			if changed {
				r.stats.Picks++
			} else {
				r.stats.CancelledPicks++
			}
		case script.KindReset:
			v.Reset()
			r.stats.Resets++
		case script.KindPinch, script.KindPan:
			ev, _ := step.Event()
			if err := v.Handle(ev); err != nil {
				r.stats.Rejected++
				s.logger.Warn("Step %d rejected: %s", i+1, err)
				break
			}
			if ev.Kind == gesture.KindPinch && ev.Type == gesture.TypeUpdate {
				r.focalX, r.focalY = ev.Pinch.FocalX, ev.Pinch.FocalY
			}
		}

		frames := 1
		if step.Kind == script.KindWait {
			frames = waitFrames(step.WaitMs, fps)
		}
		for k := 0; k < frames; k++ {
			r.emit()
		}
	}

	if ended := v.EndGestures(); len(ended) > 0 {
		s.logger.Warn("Script ended with %d gestures in progress", len(ended))
	}

	cs := ctrl.Stats()
	r.stats.Steps = len(input.Script.Steps)
	r.stats.Frames = len(r.frames)
	r.stats.DurationMs = int(r.clock.Milliseconds())
	r.stats.PinchUpdates = cs.PinchUpdates
	r.stats.PanUpdates = cs.PanUpdates
	r.stats.ScaleClamps = cs.ScaleClamps
	r.stats.OffsetClamps = cs.OffsetClamps
	r.stats.Final = ctrl.Transform()

	s.logger.Debug("Replay produced %d frames over %d ms", r.stats.Frames, r.stats.DurationMs)

	return pipeline.ReplayResult{Frames: r.frames, Stats: r.stats}, nil
}

// run is the mutable state of one Execute call.
type run struct {
	viewer   *viewer.Viewer
	cfg      viewport.Config
	frameDur time.Duration

	clock    time.Duration
	lastTick time.Duration
	focalX   float64
	focalY   float64
	frames   []pipeline.FrameState
	stats    pipeline.ReplayStats
}

// advance brings the viewer's animations up to the current clock.
func (r *run) advance() viewer.Snapshot {
	snap := r.viewer.Frame(r.clock - r.lastTick)
	r.lastTick = r.clock
	return snap
}

// emit samples the viewer at the current clock and advances the clock by one frame.
func (r *run) emit() {
	snap := r.advance()

	bx, by := viewport.ComputeBounds(r.cfg, snap.Transform.Scale)
	fs := pipeline.FrameState{
		Index:       len(r.frames),
		TimestampMs: int(r.clock.Milliseconds()),
		Transform:   snap.Transform,
		BoundX:      bx,
		BoundY:      by,
		Animating:   snap.Animating,
		Pinching:    snap.Pinching,
		Panning:     snap.Panning,
		ContentURI:  snap.Content.URI,
		Image:       snap.Content.Image,
	}
	if snap.Pinching {
		fs.FocalX, fs.FocalY = r.focalX, r.focalY
	}
	r.frames = append(r.frames, fs)
	r.clock += r.frameDur
}

// scriptPicker answers picks from the current script step.
type scriptPicker struct {
	next     string
	fallback ports.ContentPicker
}

func (p *scriptPicker) Pick(ctx context.Context) (string, bool, error) {
	switch p.next {
	case script.PickCancel:
		return "", false, nil
	case script.PickNext:
		if p.fallback == nil {
			return "", false, ErrNoPicker
		}
		return p.fallback.Pick(ctx)
	default:
		return p.next, true, nil
	}
}

// waitFrames returns how many frames a wait of waitMs spans at fps, rounded up.
// The count comes from the exact rate, not the truncated frame interval, so a wait
// that is a whole number of frames gets exactly that many.
func waitFrames(waitMs int, fps float64) int {
	if waitMs <= 0 {
		return 0
	}
	return int(math.Ceil(float64(waitMs)*fps/1000 - 1e-9))
}
