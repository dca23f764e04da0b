package easing

import "iter"

// Function maps normalized progress in [0, 1] to an eased output. The output
// is usually in [0, 1] too, but need not be.
type Function interface {
	Y(x float64) float64
}

// Func adapts an ordinary function to the [Function] interface.
type Func func(x float64) float64

// Y implements [Function].
func (f Func) Y(x float64) float64 {
	return f(x)
}

// Linear is the identity easing function.
var Linear Function = Func(func(x float64) float64 { return x })

// The predefined cubic Bézier timing functions of CSS.
var (
	Ease      = From(0.25, 0.1, 0.25, 1.0)
	EaseIn    = From(0.42, 0.0, 1.0, 1.0)
	EaseOut   = From(0.0, 0.0, 0.58, 1.0)
	EaseInOut = From(0.42, 0.0, 0.58, 1.0)
)

// Samples evaluates f at n evenly spaced inputs, from 0 to 1 inclusive, and
// yields the points (x, f(x)). For n < 2, only the point at x = 0 is
// produced (or nothing, for n < 1).
func Samples(f Function, n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if n == 1 {
			yield(Pt(0, f.Y(0)))
			return
		}
		for i := range n {
			x := float64(i) / float64(n-1)
			if i == n-1 {
				x = 1
			}
			if !yield(Pt(x, f.Y(x))) {
				return
			}
		}
	}
}
