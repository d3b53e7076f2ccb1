package viewport

import (
	"fmt"

	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/floats/scalar"
)

// Transform is the render output of the controller.
type Transform struct {
	Scale   float64 `json:"scale"`
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
}

// Identity is the untransformed state the viewer starts in and resets to.
var Identity = Transform{Scale: 1}

// Affine returns the matrix mapping natural-layout content coordinates to viewport
// coordinates, scaling about (cx, cy) and then translating by the offset:
//
//	translate(cx+OffsetX, cy+OffsetY) * scale(Scale) * translate(-cx, -cy)
func (t Transform) Affine(cx, cy float64) f64.Aff3 {
	return f64.Aff3{
		t.Scale, 0, cx + t.OffsetX - t.Scale*cx,
		0, t.Scale, cy + t.OffsetY - t.Scale*cy,
	}
}

// Apply maps a natural-layout point to viewport coordinates.
func (t Transform) Apply(cx, cy, x, y float64) (float64, float64) {
	m := t.Affine(cx, cy)
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

// Invert maps a viewport point back to natural-layout coordinates.
// Scale is never zero for a validated config.
func (t Transform) Invert(cx, cy, x, y float64) (float64, float64) {
	return cx + (x-cx-t.OffsetX)/t.Scale, cy + (y-cy-t.OffsetY)/t.Scale
}

// ApproxEqual reports whether every component of t and o differs by at most tol.
func (t Transform) ApproxEqual(o Transform, tol float64) bool {
	return scalar.EqualWithinAbs(t.Scale, o.Scale, tol) &&
		scalar.EqualWithinAbs(t.OffsetX, o.OffsetX, tol) &&
		scalar.EqualWithinAbs(t.OffsetY, o.OffsetY, tol)
}

// String formats the transform for logs and the HUD.
func (t Transform) String() string {
	return fmt.Sprintf("scale=%.3f offset=(%.1f, %.1f)", t.Scale, t.OffsetX, t.OffsetY)
}
