package viewer

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/user/pinchview/pkg/adapters/logger"
	"github.com/user/pinchview/pkg/adapters/tween"
	"github.com/user/pinchview/pkg/gesture"
	"github.com/user/pinchview/pkg/mocks"
	"github.com/user/pinchview/pkg/viewport"
)

func newTestViewer(t *testing.T, picker *mocks.ContentPicker) (*Viewer, *mocks.ContentSource) {
	t.Helper()
	ctrl, err := viewport.New(viewport.DefaultConfig(400, 800), tween.New(tween.Linear), logger.NewNoop())
	if err != nil {
		t.Fatalf("viewport.New: %v", err)
	}
	source := mocks.NewContentSource()
	source.Add("a.png", image.NewRGBA(image.Rect(0, 0, 64, 48)))
	source.Add("b.png", image.NewRGBA(image.Rect(0, 0, 10, 10)))
	return New(ctrl, picker, source, logger.NewNoop()), source
}

func TestViewer_GesturesNeedContent(t *testing.T) {
	v, _ := newTestViewer(t, &mocks.ContentPicker{URI: "a.png"})

	err := v.Handle(gesture.PinchStart())
	if !errors.Is(err, ErrNoContent) {
		t.Fatalf("expected ErrNoContent, got %v", err)
	}

	if _, err := v.Pick(context.Background()); err != nil {
		t.Fatalf("Pick failed: %v", err)
	}
	if err := v.Handle(gesture.PinchStart()); err != nil {
		t.Errorf("expected gesture to be accepted, got %v", err)
	}
}

func TestViewer_PickKeepsTransform(t *testing.T) {
	picker := &mocks.ContentPicker{URI: "a.png"}
	v, _ := newTestViewer(t, picker)
	ctx := context.Background()

	if _, err := v.Pick(ctx); err != nil {
		t.Fatal(err)
	}
	for _, ev := range []gesture.Event{gesture.PinchStart(), gesture.PinchUpdate(2, 200, 400), gesture.PinchEnd()} {
		if err := v.Handle(ev); err != nil {
			t.Fatal(err)
		}
	}

	picker.URI = "b.png"
	changed, err := v.Pick(ctx)
	if err != nil || !changed {
		t.Fatalf("expected content change, got changed=%v err=%v", changed, err)
	}

	content, _ := v.Content()
	if content.URI != "b.png" {
		t.Errorf("expected b.png, got %s", content.URI)
	}
	if s := v.Controller().Transform().Scale; s != 2 {
		t.Errorf("picking must not reset the transform, scale=%f", s)
	}
}

func TestViewer_CancelledPickKeepsContent(t *testing.T) {
	picker := &mocks.ContentPicker{URI: "a.png"}
	v, _ := newTestViewer(t, picker)
	ctx := context.Background()

	if _, err := v.Pick(ctx); err != nil {
		t.Fatal(err)
	}

	picker.Cancelled = true
	changed, err := v.Pick(ctx)
	if err != nil || changed {
		t.Fatalf("expected unchanged without error, got changed=%v err=%v", changed, err)
	}
	if content, shown := v.Content(); !shown || content.URI != "a.png" {
		t.Errorf("expected a.png to stay, got %+v", content)
	}
}

func TestViewer_PickErrors(t *testing.T) {
	pickErr := errors.New("picker crashed")
	v, _ := newTestViewer(t, &mocks.ContentPicker{
		PickFunc: func(ctx context.Context) (string, bool, error) { return "", false, pickErr },
	})
	if _, err := v.Pick(context.Background()); !errors.Is(err, pickErr) {
		t.Errorf("expected wrapped picker error, got %v", err)
	}

	v2, _ := newTestViewer(t, &mocks.ContentPicker{URI: "missing.png"})
	if _, err := v2.Pick(context.Background()); err == nil {
		t.Error("expected load error")
	}
	if _, shown := v2.Content(); shown {
		t.Error("failed load must not show content")
	}
}

func TestViewer_ResetAndFrame(t *testing.T) {
	v, _ := newTestViewer(t, &mocks.ContentPicker{URI: "a.png"})
	if _, err := v.Pick(context.Background()); err != nil {
		t.Fatal(err)
	}
	v.Handle(gesture.PinchStart())
	v.Handle(gesture.PinchUpdate(3, 200, 400))

	snap := v.Frame(0)
	if !snap.Pinching || snap.Panning || snap.Transform.Scale != 3 {
		t.Errorf("unexpected snapshot: %+v", snap)
	}

	v.Handle(gesture.PinchEnd())
	v.Reset()

	snap = v.Frame(150 * time.Millisecond)
	if !snap.Animating || snap.Transform.Scale != 2 {
		t.Errorf("expected half-way reset, got %+v", snap)
	}
	snap = v.Frame(150 * time.Millisecond)
	if snap.Animating || snap.Transform != viewport.Identity {
		t.Errorf("expected identity, got %+v", snap)
	}
	if !snap.HasImage || snap.Content.URI != "a.png" {
		t.Errorf("expected content in snapshot, got %+v", snap.Content)
	}
}

func TestViewer_ClearEndsGestures(t *testing.T) {
	v, _ := newTestViewer(t, &mocks.ContentPicker{URI: "a.png"})
	if _, err := v.Pick(context.Background()); err != nil {
		t.Fatal(err)
	}
	v.Handle(gesture.PanStart())
	v.Handle(gesture.PanUpdate(20, 0))

	ended := v.Clear()
	if len(ended) != 1 || ended[0] != gesture.KindPan {
		t.Errorf("expected pan to be ended, got %v", ended)
	}
	if s := v.Controller().State(); s.LastX != 20 {
		t.Errorf("ending the pan should commit its offset, got %+v", s)
	}
	if err := v.Handle(gesture.PanStart()); !errors.Is(err, ErrNoContent) {
		t.Errorf("expected ErrNoContent after Clear, got %v", err)
	}
}

func TestViewer_OutOfOrderRejected(t *testing.T) {
	v, _ := newTestViewer(t, &mocks.ContentPicker{URI: "a.png"})
	if _, err := v.Pick(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := v.Handle(gesture.PanUpdate(50, 0)); !errors.Is(err, gesture.ErrNotActive) {
		t.Errorf("expected ErrNotActive, got %v", err)
	}
	if v.Controller().Transform().OffsetX != 0 {
		t.Error("rejected event must not reach the controller")
	}
	if ended := v.EndGestures(); len(ended) != 0 {
		t.Errorf("nothing should be active, got %v", ended)
	}
}
