package easing

import "math"

// Exact is like [CubicBezier.Y] but inverts the curve's x coordinate
// analytically with [SolveCubic] instead of iterating from the sample table.
// It is considerably slower than Y and exists mainly to measure Y's error.
func (c CubicBezier) Exact(x float64) float64 {
	switch x {
	case 0:
		return 0
	case 1:
		return 1
	}
	return c.y.eval(c.exactParam(x))
}

// exactParam returns the root of x(t) - x in [0, 1] with the smallest
// residual. Roots are clamped to [0, 1] first, which absorbs rounding error
// at the ends of the range.
func (c CubicBezier) exactParam(x float64) float64 {
	roots, n := SolveCubic(-x, c.x.c, c.x.b, c.x.a)
	best := math.NaN()
	bestErr := math.Inf(1)
	for _, t := range roots[:n] {
		if math.IsNaN(t) || t < -1e-9 || t > 1+1e-9 {
			continue
		}
		t = clamp01(t)
		if err := math.Abs(c.x.eval(t) - x); err < bestErr {
			best, bestErr = t, err
		}
	}
	return best
}
