package gesture

import (
	"fmt"
	"sync"
)

// Detector composes a pinch and a pan recognizer onto one Target. Events of both kinds
// may interleave freely; each kind must follow its own start, update..., end order.
type Detector struct {
	mu     sync.Mutex
	target Target
	pinch  *Recognizer
	pan    *Recognizer
}

// Simultaneous creates a Detector that recognises pinch and pan at the same time.
func Simultaneous(target Target) *Detector {
	return &Detector{
		target: target,
		pinch:  NewRecognizer(KindPinch),
		pan:    NewRecognizer(KindPan),
	}
}

// Handle validates ev against its recognizer and forwards it to the target.
// Out-of-order events return an error wrapping ErrNotActive or ErrAlreadyActive and
// are not forwarded.
func (d *Detector) Handle(ev Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	r, err := d.recognizer(ev.Kind)
	if err != nil {
		return err
	}
	if err := r.Transition(ev.Type); err != nil {
		return err
	}
	d.dispatch(ev)
	return nil
}

// Phases returns the current phase of the pinch and pan recognizers.
func (d *Detector) Phases() (pinch, pan Phase) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pinch.Phase(), d.pan.Phase()
}

// Active reports whether any gesture stream is in progress.
func (d *Detector) Active() bool {
	pinch, pan := d.Phases()
	return pinch == Active || pan == Active
}

// Cancel ends every active stream, delivering the matching end callbacks so the
// target commits its baseline. It returns the kinds that were ended.
func (d *Detector) Cancel() []Kind {
	d.mu.Lock()
	defer d.mu.Unlock()

	var ended []Kind
	for _, r := range []*Recognizer{d.pinch, d.pan} {
		if r.Phase() != Active {
			continue
		}
		_ = r.Transition(TypeEnd)
		d.dispatch(Event{Kind: r.Kind(), Type: TypeEnd})
		ended = append(ended, r.Kind())
	}
	return ended
}

func (d *Detector) recognizer(k Kind) (*Recognizer, error) {
	switch k {
	case KindPinch:
		return d.pinch, nil
	case KindPan:
		return d.pan, nil
	default:
		return nil, fmt.Errorf("unknown gesture kind %d", k)
	}
}

// dispatch calls the target. The caller holds the lock.
func (d *Detector) dispatch(ev Event) {
	switch ev.Kind {
	case KindPinch:
		switch ev.Type {
		case TypeStart:
			d.target.PinchStart()
		case TypeUpdate:
			d.target.PinchUpdate(ev.Pinch.Scale, ev.Pinch.FocalX, ev.Pinch.FocalY)
		case TypeEnd:
			d.target.PinchEnd()
		}
	case KindPan:
		switch ev.Type {
		case TypeStart:
			d.target.PanStart()
		case TypeUpdate:
			d.target.PanUpdate(ev.Pan.TranslationX, ev.Pan.TranslationY)
		case TypeEnd:
			d.target.PanEnd()
		}
	}
}
