// Package script parses scripted gesture sessions for replay.
//
// A script is a YAML document with an optional frame rate and a list of steps.
// Each step names exactly one action:
//
//	fps: 30
//	steps:
//	  - pick: photos/harbour.jpg
//	  - pinch: start
//	  - pinch: update
//	    scale: 2
//	    focal: [300, 400]
//	  - pinch: end
//	  - pan: update
//	    translation: [40, -10]
//	  - reset: true
//	  - wait_ms: 400
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/pinchview/pkg/gesture"
)

// ErrInvalidScript is wrapped by every validation error.
var ErrInvalidScript = errors.New("invalid script")

// Special pick values.
const (
	PickNext   = "next"   // Take the next image from the configured picker
	PickCancel = "cancel" // The user dismissed the picker
)

// Kind identifies the action of a step.
type Kind int

const (
	KindPick Kind = iota
	KindPinch
	KindPan
	KindReset
	KindWait
)

// String returns the YAML key of the kind.
func (k Kind) String() string {
	switch k {
	case KindPick:
		return "pick"
	case KindPinch:
		return "pinch"
	case KindPan:
		return "pan"
	case KindReset:
		return "reset"
	case KindWait:
		return "wait_ms"
	default:
		return "unknown"
	}
}

// Step is one validated script action.
type Step struct {
	Kind Kind

	// Pinch and pan
	Phase        gesture.Type
	Scale        float64
	FocalX       float64
	FocalY       float64
	TranslationX float64
	TranslationY float64

	// Pick: a path, PickNext or PickCancel
	URI string

	// Wait
	WaitMs int
}

// Event returns the gesture event of a pinch or pan step.
func (s Step) Event() (gesture.Event, bool) {
	switch s.Kind {
	case KindPinch:
		ev := gesture.Event{Kind: gesture.KindPinch, Type: s.Phase}
		if s.Phase == gesture.TypeUpdate {
			ev.Pinch = gesture.PinchEvent{Scale: s.Scale, FocalX: s.FocalX, FocalY: s.FocalY}
		}
		return ev, true
	case KindPan:
		ev := gesture.Event{Kind: gesture.KindPan, Type: s.Phase}
		if s.Phase == gesture.TypeUpdate {
			ev.Pan = gesture.PanEvent{TranslationX: s.TranslationX, TranslationY: s.TranslationY}
		}
		return ev, true
	default:
		return gesture.Event{}, false
	}
}

// String describes the step for logs.
func (s Step) String() string {
	switch s.Kind {
	case KindPinch, KindPan:
		ev, _ := s.Event()
		return ev.String()
	case KindPick:
		return "pick " + s.URI
	case KindWait:
		return fmt.Sprintf("wait %d ms", s.WaitMs)
	default:
		return s.Kind.String()
	}
}

// Script is a parsed gesture session.
type Script struct {
	Name  string
	FPS   float64 // Zero when the script leaves the rate to the caller
	Steps []Step
}

// Count returns the number of steps of kind k.
func (s Script) Count(k Kind) int {
	n := 0
	for _, st := range s.Steps {
		if st.Kind == k {
			n++
		}
	}
	return n
}

type rawScript struct {
	Name  string    `yaml:"name"`
	FPS   float64   `yaml:"fps"`
	Steps []rawStep `yaml:"steps"`
}

type rawStep struct {
	Pick        *string   `yaml:"pick"`
	Pinch       *string   `yaml:"pinch"`
	Pan         *string   `yaml:"pan"`
	Reset       *bool     `yaml:"reset"`
	WaitMs      *int      `yaml:"wait_ms"`
	Scale       *float64  `yaml:"scale"`
	Focal       []float64 `yaml:"focal"`
	Translation []float64 `yaml:"translation"`
}

// Load reads and parses a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, err
	}
	s, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse parses and validates a script. Unknown keys are rejected.
func Parse(data []byte) (Script, error) {
	var raw rawScript
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Script{}, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}

	if raw.FPS < 0 || raw.FPS > 120 {
		return Script{}, fmt.Errorf("%w: fps %g out of range (0, 120]", ErrInvalidScript, raw.FPS)
	}
	if len(raw.Steps) == 0 {
		return Script{}, fmt.Errorf("%w: no steps", ErrInvalidScript)
	}

	s := Script{Name: raw.Name, FPS: raw.FPS, Steps: make([]Step, 0, len(raw.Steps))}
	for i, rs := range raw.Steps {
		st, err := rs.validate()
		if err != nil {
			return Script{}, fmt.Errorf("%w: step %d: %v", ErrInvalidScript, i+1, err)
		}
		s.Steps = append(s.Steps, st)
	}
	return s, nil
}

func (r rawStep) validate() (Step, error) {
	var kinds []Kind
	if r.Pick != nil {
		kinds = append(kinds, KindPick)
	}
	if r.Pinch != nil {
		kinds = append(kinds, KindPinch)
	}
	if r.Pan != nil {
		kinds = append(kinds, KindPan)
	}
	if r.Reset != nil {
		kinds = append(kinds, KindReset)
	}
	if r.WaitMs != nil {
		kinds = append(kinds, KindWait)
	}
	if len(kinds) != 1 {
		return Step{}, fmt.Errorf("expected exactly one action, got %d", len(kinds))
	}

	st := Step{Kind: kinds[0]}
	switch st.Kind {
	case KindPick:
		if *r.Pick == "" {
			return Step{}, errors.New("pick needs a path, \"next\" or \"cancel\"")
		}
		st.URI = *r.Pick
	case KindReset:
		if !*r.Reset {
			return Step{}, errors.New("reset must be true")
		}
	case KindWait:
		if *r.WaitMs <= 0 {
			return Step{}, fmt.Errorf("wait_ms %d must be positive", *r.WaitMs)
		}
		st.WaitMs = *r.WaitMs
	case KindPinch:
		phase, err := gesture.ParseType(*r.Pinch)
		if err != nil {
			return Step{}, err
		}
		st.Phase = phase
		if phase == gesture.TypeUpdate {
			if r.Scale == nil || *r.Scale <= 0 {
				return Step{}, errors.New("pinch update needs a positive scale")
			}
			if len(r.Focal) != 2 {
				return Step{}, errors.New("pinch update needs focal: [x, y]")
			}
			st.Scale, st.FocalX, st.FocalY = *r.Scale, r.Focal[0], r.Focal[1]
		}
	case KindPan:
		phase, err := gesture.ParseType(*r.Pan)
		if err != nil {
			return Step{}, err
		}
		st.Phase = phase
		if phase == gesture.TypeUpdate {
			if len(r.Translation) != 2 {
				return Step{}, errors.New("pan update needs translation: [x, y]")
			}
			st.TranslationX, st.TranslationY = r.Translation[0], r.Translation[1]
		}
	}

	if err := r.checkExtras(st); err != nil {
		return Step{}, err
	}
	return st, nil
}

// checkExtras rejects parameters that do not belong to the step.
func (r rawStep) checkExtras(st Step) error {
	pinchUpdate := st.Kind == KindPinch && st.Phase == gesture.TypeUpdate
	panUpdate := st.Kind == KindPan && st.Phase == gesture.TypeUpdate
	if (r.Scale != nil || r.Focal != nil) && !pinchUpdate {
		return fmt.Errorf("scale and focal only apply to pinch updates")
	}
	if r.Translation != nil && !panUpdate {
		return fmt.Errorf("translation only applies to pan updates")
	}
	return nil
}
