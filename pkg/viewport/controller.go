package viewport

import (
	"fmt"
	"sync"
	"time"

	"github.com/user/pinchview/pkg/ports"
)

// State is the full mutable record owned by a Controller.
type State struct {
	Scale     float64 `json:"scale"`
	LastScale float64 `json:"last_scale"`
	OffsetX   float64 `json:"offset_x"`
	OffsetY   float64 `json:"offset_y"`
	LastX     float64 `json:"last_x"`
	LastY     float64 `json:"last_y"`
}

// Transform returns the live part of the state.
func (s State) Transform() Transform {
	return Transform{Scale: s.Scale, OffsetX: s.OffsetX, OffsetY: s.OffsetY}
}

// Stats counts what the controller has done since construction.
type Stats struct {
	PinchUpdates int `json:"pinch_updates"`
	PanUpdates   int `json:"pan_updates"`
	Resets       int `json:"resets"`
	ScaleClamps  int `json:"scale_clamps"`  // Pinch updates whose scale hit a limit
	OffsetClamps int `json:"offset_clamps"` // Updates whose offset hit a bound
}

// Controller owns the viewport transform and reduces gesture events into it.
//
// All methods lock the controller for their whole read-modify-write, so gesture
// callbacks and UI actions may arrive from different goroutines. Calls within one
// gesture kind must still follow start, update..., end; out-of-order calls are not
// detected here (see package gesture).
type Controller struct {
	mu sync.RWMutex

	cfg    Config
	state  State
	stats  Stats
	anim   ports.Animator
	logger ports.Logger

	// In-flight reset transitions, one per channel. A gesture writing a channel
	// drops its transition.
	scaleAnim   ports.Transition
	offsetXAnim ports.Transition
	offsetYAnim ports.Transition
}

// New creates a Controller at the identity transform.
// A nil animator makes Reset jump to the identity immediately.
func New(cfg Config, animator ports.Animator, logger ports.Logger) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		cfg:    cfg,
		state:  State{Scale: 1, LastScale: 1},
		anim:   animator,
		logger: logger.WithComponent("viewport"),
	}, nil
}

// Config returns the controller's fixed configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// State returns a snapshot of the full state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Transform returns the live transform for rendering.
func (c *Controller) Transform() Transform {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Transform()
}

// Stats returns the update counters.
func (c *Controller) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// Bounds returns the translation bounds at the live scale.
func (c *Controller) Bounds() (boundX, boundY float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return ComputeBounds(c.cfg, c.state.Scale)
}

// PinchStart snapshots the live scale as the baseline for the coming pinch.
func (c *Controller) PinchStart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.LastScale = c.state.Scale
}

// PinchUpdate applies a pinch whose cumulative scale since PinchStart is
// gestureScale, anchored at the focal point (focalX, focalY) in viewport coordinates.
//
// The next scale derives from the baseline, never from the previous update, so small
// updates do not compound rounding error. Bounds take priority over keeping the focal
// point fixed.
func (c *Controller) PinchUpdate(gestureScale, focalX, focalY float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.scaleAnim, c.offsetXAnim, c.offsetYAnim = nil, nil, nil
	c.stats.PinchUpdates++

	raw := c.state.LastScale * gestureScale
	nextScale := Clamp(raw, c.cfg.MinScale, c.cfg.MaxScale)
	if nextScale != raw {
		c.stats.ScaleClamps++
	}

	centerX, centerY := c.cfg.Center()
	dx := focalX - centerX
	dy := focalY - centerY

	ratio := nextScale / c.state.Scale

	nextX := c.state.OffsetX + dx - dx*ratio
	nextY := c.state.OffsetY + dy - dy*ratio

	boundX, boundY := ComputeBounds(c.cfg, nextScale)
	c.setOffset(nextX, nextY, boundX, boundY)
	c.state.Scale = nextScale
}

// PinchEnd commits the live transform as the baseline for the next gesture.
func (c *Controller) PinchEnd() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.LastScale = c.state.Scale
	c.state.LastX = c.state.OffsetX
	c.state.LastY = c.state.OffsetY
	c.logger.Debug("Committed %s", c.state.Transform())
}

// PanStart begins a pan. The baseline was already committed by the last gesture end
// or reset, so nothing changes.
func (c *Controller) PanStart() {}

// PanUpdate applies a pan whose cumulative translation since PanStart is (tx, ty).
// Bounds are computed at the live scale, which a simultaneous pinch may have changed.
func (c *Controller) PanUpdate(tx, ty float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.offsetXAnim, c.offsetYAnim = nil, nil
	c.stats.PanUpdates++

	boundX, boundY := ComputeBounds(c.cfg, c.state.Scale)
	c.setOffset(c.state.LastX+tx, c.state.LastY+ty, boundX, boundY)
}

// PanEnd commits the live offset as the pan baseline.
func (c *Controller) PanEnd() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.LastX = c.state.OffsetX
	c.state.LastY = c.state.OffsetY
}

// Reset starts an animated transition back to the identity transform and
// re-baselines immediately, so a gesture starting mid-animation is computed relative
// to the identity rather than to the pre-reset position.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.Resets++
	from := c.state.Transform()

	if c.anim == nil || c.cfg.ResetDuration == 0 {
		c.state.Scale, c.state.OffsetX, c.state.OffsetY = 1, 0, 0
		c.scaleAnim, c.offsetXAnim, c.offsetYAnim = nil, nil, nil
	} else {
		c.scaleAnim = c.anim.Timing(from.Scale, 1, c.cfg.ResetDuration)
		c.offsetXAnim = c.anim.Timing(from.OffsetX, 0, c.cfg.ResetDuration)
		c.offsetYAnim = c.anim.Timing(from.OffsetY, 0, c.cfg.ResetDuration)
	}

	c.state.LastScale = 1
	c.state.LastX = 0
	c.state.LastY = 0

	c.logger.Debug("Resetting from %s over %s", from, c.cfg.ResetDuration)
}

// Animating reports whether any reset transition is still in flight.
func (c *Controller) Animating() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scaleAnim != nil || c.offsetXAnim != nil || c.offsetYAnim != nil
}

// Tick advances in-flight transitions by dt and returns the live transform.
// The host frame loop calls it once per frame. While the scale animates on its own,
// the offset is kept within the bounds of the live scale.
func (c *Controller) Tick(dt time.Duration) Transform {
	c.mu.Lock()
	defer c.mu.Unlock()

	scaling := c.scaleAnim != nil
	c.state.Scale, c.scaleAnim = advance(c.scaleAnim, c.state.Scale, dt)
	c.state.OffsetX, c.offsetXAnim = advance(c.offsetXAnim, c.state.OffsetX, dt)
	c.state.OffsetY, c.offsetYAnim = advance(c.offsetYAnim, c.state.OffsetY, dt)

	// A pan during a reset drops only the offset transitions, so the offset was
	// clamped against a larger scale. Follow the shrinking bounds.
	if scaling && c.offsetXAnim == nil && c.offsetYAnim == nil {
		boundX, boundY := ComputeBounds(c.cfg, c.state.Scale)
		c.setOffset(c.state.OffsetX, c.state.OffsetY, boundX, boundY)
	}

	return c.state.Transform()
}

// String describes the controller state for debugging.
func (c *Controller) String() string {
	s := c.State()
	return fmt.Sprintf("Controller{%s last=(%.3f, %.1f, %.1f)}", s.Transform(), s.LastScale, s.LastX, s.LastY)
}

// setOffset clamps and stores the offset. The caller holds the lock.
func (c *Controller) setOffset(x, y, boundX, boundY float64) {
	cx := Clamp(x, -boundX, boundX)
	cy := Clamp(y, -boundY, boundY)
	if cx != x || cy != y {
		c.stats.OffsetClamps++
	}
	c.state.OffsetX = cx
	c.state.OffsetY = cy
}

// advance samples t, returning the value to store and the transition to keep.
func advance(t ports.Transition, current float64, dt time.Duration) (float64, ports.Transition) {
	if t == nil {
		return current, nil
	}
	v, done := t.Advance(dt)
	if done {
		return v, nil
	}
	return v, t
}
