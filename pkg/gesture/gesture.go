// Package gesture enforces the start/update/end contract of pinch and pan streams and
// composes both onto a single target.
//
// Each gesture kind runs its own two-state machine (Idle, Active). Simultaneous
// delivers interleaved events from both machines serially, so a user can pinch and
// drag in one continuous motion.
package gesture

import (
	"errors"
	"fmt"
)

// Sentinel errors for out-of-order delivery.
var (
	ErrNotActive     = errors.New("gesture not active")
	ErrAlreadyActive = errors.New("gesture already active")
)

// Kind identifies a gesture stream.
type Kind int

const (
	KindPinch Kind = iota
	KindPan
)

// String returns the name of the gesture kind.
func (k Kind) String() string {
	switch k {
	case KindPinch:
		return "pinch"
	case KindPan:
		return "pan"
	default:
		return "unknown"
	}
}

// Type is the position of an event within its stream.
type Type int

const (
	TypeStart Type = iota
	TypeUpdate
	TypeEnd
)

// String returns the name of the event type.
func (t Type) String() string {
	switch t {
	case TypeStart:
		return "start"
	case TypeUpdate:
		return "update"
	case TypeEnd:
		return "end"
	default:
		return "unknown"
	}
}

// ParseType parses "start", "update" or "end".
func ParseType(s string) (Type, error) {
	switch s {
	case "start":
		return TypeStart, nil
	case "update":
		return TypeUpdate, nil
	case "end":
		return TypeEnd, nil
	default:
		return 0, fmt.Errorf("unknown gesture event type %q", s)
	}
}

// PinchEvent carries pinch values, cumulative since the pinch started.
type PinchEvent struct {
	Scale  float64 // Scale ratio relative to the distance at start
	FocalX float64 // Midpoint of the two touches, viewport coordinates
	FocalY float64
}

// PanEvent carries pan values, cumulative since the pan started.
type PanEvent struct {
	TranslationX float64
	TranslationY float64
}

// Event is one callback from the recognition layer.
type Event struct {
	Kind  Kind
	Type  Type
	Pinch PinchEvent // Set for KindPinch updates
	Pan   PanEvent   // Set for KindPan updates
}

// String describes the event for logs.
func (e Event) String() string {
	if e.Type != TypeUpdate {
		return fmt.Sprintf("%s %s", e.Kind, e.Type)
	}
	switch e.Kind {
	case KindPinch:
		return fmt.Sprintf("pinch update scale=%.3f focal=(%.1f, %.1f)", e.Pinch.Scale, e.Pinch.FocalX, e.Pinch.FocalY)
	case KindPan:
		return fmt.Sprintf("pan update translation=(%.1f, %.1f)", e.Pan.TranslationX, e.Pan.TranslationY)
	}
	return "unknown event"
}

// PinchStart returns a pinch start event.
func PinchStart() Event { return Event{Kind: KindPinch, Type: TypeStart} }

// PinchUpdate returns a pinch update event.
func PinchUpdate(scale, focalX, focalY float64) Event {
	return Event{Kind: KindPinch, Type: TypeUpdate, Pinch: PinchEvent{Scale: scale, FocalX: focalX, FocalY: focalY}}
}

// PinchEnd returns a pinch end event.
func PinchEnd() Event { return Event{Kind: KindPinch, Type: TypeEnd} }

// PanStart returns a pan start event.
func PanStart() Event { return Event{Kind: KindPan, Type: TypeStart} }

// PanUpdate returns a pan update event.
func PanUpdate(tx, ty float64) Event {
	return Event{Kind: KindPan, Type: TypeUpdate, Pan: PanEvent{TranslationX: tx, TranslationY: ty}}
}

// PanEnd returns a pan end event.
func PanEnd() Event { return Event{Kind: KindPan, Type: TypeEnd} }

// PinchTarget receives pinch callbacks.
type PinchTarget interface {
	PinchStart()
	PinchUpdate(gestureScale, focalX, focalY float64)
	PinchEnd()
}

// PanTarget receives pan callbacks.
type PanTarget interface {
	PanStart()
	PanUpdate(tx, ty float64)
	PanEnd()
}

// Target receives both kinds of callbacks.
type Target interface {
	PinchTarget
	PanTarget
}
