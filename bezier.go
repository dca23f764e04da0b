package easing

import (
	"fmt"
	"log/slog"

	"golang.org/x/exp/constraints"
)

const (
	sampleTableSize          = 11
	sampleStepSize           = 1.0 / (sampleTableSize - 1)
	newtonIterations         = 4
	newtonMinSlope           = 0.001
	subdivisionPrecision     = 1e-7
	subdivisionMaxIterations = 10
)

var _ Function = CubicBezier{}

// Number is the set of numeric types accepted by [From].
type Number interface {
	constraints.Float | constraints.Integer
}

// CubicBezier is a timing function defined by a cubic Bézier curve with fixed
// end points (0, 0) and (1, 1), as used by CSS's cubic-bezier() easing
// function.
//
// The zero value is not useful; use [New] or [From] to construct curves. A
// CubicBezier is immutable and may be used concurrently by multiple
// goroutines.
type CubicBezier struct {
	p1, p2 Point
	x, y   cubicPoly
	// samples[k] is x(k / (sampleTableSize-1)).
	samples [sampleTableSize]float64
}

// New returns the easing curve with the control points p1 and p2. Coordinates
// outside of [0, 1] are clamped.
func New(p1, p2 Point) CubicBezier {
	if !p1.InUnitSquare() || !p2.InUnitSquare() {
		Logger().Debug("clamping control points to unit square",
			slog.String("p1", p1.String()),
			slog.String("p2", p2.String()))
	}
	p1 = p1.Clamp()
	p2 = p2.Clamp()

	c := CubicBezier{
		p1: p1,
		p2: p2,
		x:  newCubicPoly(p1.X, p2.X),
		y:  newCubicPoly(p1.Y, p2.Y),
	}
	for i := range c.samples {
		c.samples[i] = c.x.eval(float64(i) * sampleStepSize)
	}
	return c
}

// From is like [New] but accepts the control point coordinates as any
// numeric type, in the same order as CSS's cubic-bezier(x1, y1, x2, y2).
func From[T Number](x1, y1, x2, y2 T) CubicBezier {
	return New(Pt(float64(x1), float64(y1)), Pt(float64(x2), float64(y2)))
}

// ControlPoints returns the curve's clamped control points.
func (c CubicBezier) ControlPoints() (Point, Point) {
	return c.p1, c.p2
}

func (c CubicBezier) String() string {
	return fmt.Sprintf("cubic-bezier(%g, %g, %g, %g)", c.p1.X, c.p1.Y, c.p2.X, c.p2.Y)
}

// Eval returns the point on the curve at parameter t.
func (c CubicBezier) Eval(t float64) Point {
	return Point{
		X: c.x.eval(t),
		Y: c.y.eval(t),
	}
}

// Y implements [Function]. It returns the eased output for the progress x.
//
// The result is a numerical approximation. Y(0) and Y(1) are exactly 0 and 1.
// The behavior for x outside of [0, 1] is unspecified.
func (c CubicBezier) Y(x float64) float64 {
	switch x {
	case 0:
		return 0
	case 1:
		return 1
	}
	return c.y.eval(c.Param(x))
}

// Param returns the curve parameter t for which the curve's x coordinate
// equals x.
//
// The initial guess comes from the sample table and gets refined by
// Newton-Raphson iteration, or by binary subdivision where the curve is too
// flat for Newton's method to be stable.
func (c CubicBezier) Param(x float64) float64 {
	switch x {
	case 0:
		return 0
	case 1:
		return 1
	}

	const lastSample = sampleTableSize - 1
	i := 1
	for i != lastSample && c.samples[i] <= x {
		i++
	}
	i--
	intervalStart := float64(i) * sampleStepSize

	dist := (x - c.samples[i]) / (c.samples[i+1] - c.samples[i])
	guess := intervalStart + dist*sampleStepSize

	switch slope := c.x.deriv(guess); {
	case slope >= newtonMinSlope:
		return c.newtonRaphson(x, guess)
	case slope == 0:
		return guess
	default:
		return c.subdivide(x, intervalStart, intervalStart+sampleStepSize)
	}
}

func (c CubicBezier) newtonRaphson(x, t float64) float64 {
	for range newtonIterations {
		slope := c.x.deriv(t)
		if slope == 0 {
			break
		}
		t -= (c.x.eval(t) - x) / slope
	}
	return t
}

// subdivide bisects [a, b] until x(t) is within subdivisionPrecision of x,
// giving up after subdivisionMaxIterations steps.
func (c CubicBezier) subdivide(x, a, b float64) float64 {
	var t float64
	for range subdivisionMaxIterations {
		t = a + (b-a)/2
		d := c.x.eval(t) - x
		if d > 0 {
			b = t
		} else {
			a = t
		}
		if d < subdivisionPrecision && d > -subdivisionPrecision {
			break
		}
	}
	return t
}

// cubicPoly is one coordinate of a cubic Bézier whose end points are 0 and 1,
// in power basis: ((a t + b) t + c) t.
type cubicPoly struct {
	a, b, c float64
}

func newCubicPoly(v1, v2 float64) cubicPoly {
	return cubicPoly{
		a: 1.0 - 3.0*v2 + 3.0*v1,
		b: 3.0*v2 - 6.0*v1,
		c: 3.0 * v1,
	}
}

func (p cubicPoly) eval(t float64) float64 {
	return ((p.a*t+p.b)*t + p.c) * t
}

// deriv returns the first derivative at t.
func (p cubicPoly) deriv(t float64) float64 {
	return 3.0*p.a*t*t + 2.0*p.b*t + p.c
}
