// Package viewer wires the viewport controller, gesture detection and content
// picking into one image viewer session.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/user/pinchview/pkg/gesture"
	"github.com/user/pinchview/pkg/ports"
	"github.com/user/pinchview/pkg/viewport"
)

// ErrNoContent is returned for gesture events while nothing is shown.
var ErrNoContent = errors.New("no content shown")

// Snapshot is what the viewer would draw for one frame.
type Snapshot struct {
	Transform viewport.Transform
	Content   ports.Content
	HasImage  bool
	Animating bool
	Pinching  bool
	Panning   bool
}

// Viewer is one viewer session. Gestures are only recognised while content is
// shown, and picking new content keeps the current transform.
type Viewer struct {
	ctrl     *viewport.Controller
	detector *gesture.Detector
	picker   ports.ContentPicker
	source   ports.ContentSource
	logger   ports.Logger

	mu      sync.RWMutex
	content ports.Content
	shown   bool
}

// New creates a Viewer around ctrl.
func New(ctrl *viewport.Controller, picker ports.ContentPicker, source ports.ContentSource, logger ports.Logger) *Viewer {
	return &Viewer{
		ctrl:     ctrl,
		detector: gesture.Simultaneous(ctrl),
		picker:   picker,
		source:   source,
		logger:   logger.WithComponent("viewer"),
	}
}

// Controller returns the viewport controller.
func (v *Viewer) Controller() *viewport.Controller {
	return v.ctrl
}

// Content returns the shown content and whether there is any.
func (v *Viewer) Content() (ports.Content, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.content, v.shown
}

// Pick asks the picker for new content and shows it. It reports whether the
// content changed. A dismissed picker or a failed load keeps the old content.
func (v *Viewer) Pick(ctx context.Context) (bool, error) {
	uri, ok, err := v.picker.Pick(ctx)
	if err != nil {
		return false, fmt.Errorf("pick content: %w", err)
	}
	if !ok {
		v.logger.Debug("Pick cancelled")
		return false, nil
	}

	img, err := v.source.Load(ctx, uri)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", uri, err)
	}

	v.mu.Lock()
	v.content = ports.Content{URI: uri, Image: img}
	v.shown = true
	v.mu.Unlock()

	b := img.Bounds()
	v.logger.Debug("Showing %s (%dx%d)", uri, b.Dx(), b.Dy())
	return true, nil
}

// Reset animates the transform back to the identity.
func (v *Viewer) Reset() {
	v.ctrl.Reset()
}

// Handle delivers a gesture event. It returns ErrNoContent while nothing is
// shown and the detector's ordering errors for out-of-order events.
func (v *Viewer) Handle(ev gesture.Event) error {
	if _, shown := v.Content(); !shown {
		return fmt.Errorf("%s: %w", ev, ErrNoContent)
	}
	return v.detector.Handle(ev)
}

// EndGestures ends any gesture still in progress and returns the kinds ended.
func (v *Viewer) EndGestures() []gesture.Kind {
	return v.detector.Cancel()
}

// Clear removes the content. Active gestures end first, since their target
// is gone.
func (v *Viewer) Clear() []gesture.Kind {
	ended := v.detector.Cancel()
	v.mu.Lock()
	v.content = ports.Content{}
	v.shown = false
	v.mu.Unlock()
	return ended
}

// Frame advances animations by dt and returns what to draw.
func (v *Viewer) Frame(dt time.Duration) Snapshot {
	t := v.ctrl.Tick(dt)
	content, shown := v.Content()
	pinch, pan := v.detector.Phases()
	return Snapshot{
		Transform: t,
		Content:   content,
		HasImage:  shown,
		Animating: v.ctrl.Animating(),
		Pinching:  pinch == gesture.Active,
		Panning:   pan == gesture.Active,
	}
}
