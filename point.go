package easing

import (
	"fmt"
	"math"
)

// Point is a control point of an easing curve, or a point on one.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Clamp returns a new point with x and y limited to [0, 1]. NaN coordinates
// are returned unchanged.
func (pt Point) Clamp() Point {
	return Point{
		X: clamp01(pt.X),
		Y: clamp01(pt.Y),
	}
}

// InUnitSquare reports whether both coordinates lie in [0, 1].
func (pt Point) InUnitSquare() bool {
	return pt.X >= 0 && pt.X <= 1 && pt.Y >= 0 && pt.Y <= 1
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
