package gesture

import "fmt"

// Phase is the state of a Recognizer.
type Phase int

const (
	Idle Phase = iota
	Active
)

// String returns the phase name.
func (p Phase) String() string {
	if p == Active {
		return "active"
	}
	return "idle"
}

// Recognizer is the state machine for one gesture kind:
// start moves Idle to Active, update keeps Active, end returns to Idle.
// It is not safe for concurrent use; Simultaneous serializes access.
type Recognizer struct {
	kind    Kind
	phase   Phase
	updates int
}

// NewRecognizer creates an idle recognizer for kind.
func NewRecognizer(kind Kind) *Recognizer {
	return &Recognizer{kind: kind}
}

// Kind returns the gesture kind this recognizer tracks.
func (r *Recognizer) Kind() Kind {
	return r.kind
}

// Phase returns the current phase.
func (r *Recognizer) Phase() Phase {
	return r.phase
}

// Updates returns the number of updates in the current (or last) stream.
func (r *Recognizer) Updates() int {
	return r.updates
}

// Transition validates t against the current phase and advances the machine.
// On error the phase is unchanged.
func (r *Recognizer) Transition(t Type) error {
	switch t {
	case TypeStart:
		if r.phase == Active {
			return fmt.Errorf("%s start: %w", r.kind, ErrAlreadyActive)
		}
		r.phase = Active
		r.updates = 0
	case TypeUpdate:
		if r.phase != Active {
			return fmt.Errorf("%s update: %w", r.kind, ErrNotActive)
		}
		r.updates++
	case TypeEnd:
		if r.phase != Active {
			return fmt.Errorf("%s end: %w", r.kind, ErrNotActive)
		}
		r.phase = Idle
	default:
		return fmt.Errorf("%s: unknown event type %d", r.kind, t)
	}
	return nil
}
