package easing

import (
	"fmt"
	"math"
	"slices"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"
)

// wellBehaved are curves whose x(t) has no stationary points in the interior,
// so that the initial guess is always refined by Newton's method.
var wellBehaved = []CubicBezier{
	Ease,
	EaseIn,
	EaseOut,
	EaseInOut,
	From(1.0/3.0, 1.0/3.0, 2.0/3.0, 2.0/3.0),
	From(0.1, 0.7, 1.0, 0.1),
	From(0.68, 0.0, 0.27, 1.0),
	From(0.0, 0.0, 1.0, 1.0),
	From(0.9, 0.1, 0.1, 0.9),
	From(0.6, 0.2, 0.4, 0.8),
}

func TestCubicBezierBoundaries(t *testing.T) {
	curves := append(slices.Clone(wellBehaved), From(1, 0, 0, 1), From(0, 1, 1, 0), From(0, 0, 0, 0))
	for _, c := range curves {
		if y := c.Y(0); y != 0 {
			t.Errorf("%v: Y(0) = %v, want 0", c, y)
		}
		if y := c.Y(1); y != 1 {
			t.Errorf("%v: Y(1) = %v, want 1", c, y)
		}
	}
}

func TestCubicBezierParam(t *testing.T) {
	const n = 1000
	for _, c := range wellBehaved {
		worst := 0.0
		for i := 1; i < n; i++ {
			x := float64(i) / n
			ts := c.Param(x)
			worst = max(worst, math.Abs(c.x.eval(ts)-x))
		}
		if worst >= 1e-4 {
			t.Errorf("%v: got residual of %g, want less than 1e-4", c, worst)
		}
	}
}

func TestCubicBezierClamp(t *testing.T) {
	got := From(-0.5, 2.0, 0.58, 1.0)
	want := From(0.0, 1.0, 0.58, 1.0)
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	p1, p2 := got.ControlPoints()
	diff(t, Pt(0, 1), p1)
	diff(t, Pt(0.58, 1), p2)
}

func TestCubicBezierLinear(t *testing.T) {
	c := From(1.0/3.0, 1.0/3.0, 2.0/3.0, 2.0/3.0)
	for i := range 101 {
		x := float64(i) / 100
		if y := c.Y(x); !scalar.EqualWithinAbs(y, x, 1e-9) {
			t.Errorf("Y(%v) = %v, want %v", x, y, x)
		}
	}
}

func TestCubicBezierKnownValues(t *testing.T) {
	tests := []struct {
		curve CubicBezier
		x     float64
		want  float64
	}{
		{EaseInOut, 0.5, 0.5},
		{EaseInOut, 0.25, 0.129162},
		{EaseInOut, 0.75, 0.870838},
		{Ease, 0.25, 0.408511},
		{Ease, 0.5, 0.802403},
		{EaseIn, 0.5, 0.315357},
		{EaseOut, 0.5, 0.684643},
		{EaseOut, 0.1, 0.160572},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v@%v", tt.curve, tt.x), func(t *testing.T) {
			diff(t, tt.want, tt.curve.Y(tt.x), cmpopts.EquateApprox(0, 1e-3))
		})
	}
}

func TestCubicBezierSymmetry(t *testing.T) {
	for i := 1; i < 100; i++ {
		x := float64(i) / 100
		sum := EaseInOut.Y(x) + EaseInOut.Y(1-x)
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("Y(%v) + Y(%v) = %v, want 1", x, 1-x, sum)
		}
	}
}

func TestCubicBezierDeterminism(t *testing.T) {
	for _, c := range wellBehaved {
		for i := 1; i < 100; i++ {
			x := float64(i) / 100
			if a, b := c.Y(x), c.Y(x); math.Float64bits(a) != math.Float64bits(b) {
				t.Fatalf("%v: Y(%v) returned %v and %v", c, x, a, b)
			}
		}
	}
}

func TestCubicBezierConcurrent(t *testing.T) {
	c := Ease
	want := make([]float64, 100)
	for i := range want {
		want[i] = c.Y(float64(i) / 100)
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range want {
				if got := c.Y(float64(i) / 100); got != want[i] {
					t.Errorf("Y(%v) = %v, want %v", float64(i)/100, got, want[i])
				}
			}
		}()
	}
	wg.Wait()
}

func TestCubicBezierStationaryPoint(t *testing.T) {
	// x(t) = 4t³ - 6t² + 3t, whose derivative 3(2t-1)² vanishes at t = 0.5.
	c := From(1.0, 0.0, 0.0, 1.0)

	if ts := c.Param(0.5); ts != 0.5 {
		t.Errorf("Param(0.5) = %v, want 0.5", ts)
	}
	if y := c.Y(0.5); y != 0.5 {
		t.Errorf("Y(0.5) = %v, want 0.5", y)
	}

	// Close to the stationary point the slope of the initial guess falls
	// below the Newton threshold and subdivision takes over.
	for _, x := range []float64{0.4999, 0.49999, 0.50001, 0.5001} {
		ts := c.Param(x)
		if ts < 0.4 || ts > 0.6 {
			t.Errorf("Param(%v) = %v, want a value in [0.4, 0.6]", x, ts)
		}
		if r := math.Abs(c.x.eval(ts) - x); r >= 1e-4 {
			t.Errorf("Param(%v): got residual of %g, want less than 1e-4", x, r)
		}
		if (x < 0.5) != (ts < 0.5) {
			t.Errorf("Param(%v) = %v is on the wrong side of 0.5", x, ts)
		}
	}
}

func TestCubicBezierSubdivide(t *testing.T) {
	c := From(1.0, 0.0, 0.0, 1.0)
	// Ten steps of subdivision on an interval of width 0.1.
	ts := c.subdivide(0.5001, 0.5, 0.6)
	if r := math.Abs(c.x.eval(ts) - 0.5001); r >= 1e-6 {
		t.Errorf("got residual of %g, want less than 1e-6", r)
	}

	// A root at the first midpoint terminates immediately.
	ts = c.subdivide(0.5, 0.4, 0.6)
	if math.Abs(ts-0.5) > 1e-12 {
		t.Errorf("got %v, want 0.5", ts)
	}
}

func TestCubicBezierSampleTable(t *testing.T) {
	c := EaseInOut
	if c.samples[0] != 0 {
		t.Errorf("first sample is %v, want 0", c.samples[0])
	}
	if math.Abs(c.samples[sampleTableSize-1]-1) > 1e-15 {
		t.Errorf("last sample is %v, want 1", c.samples[sampleTableSize-1])
	}
	for i := 1; i < sampleTableSize; i++ {
		if c.samples[i] < c.samples[i-1] {
			t.Errorf("samples aren't monotonic: %v", c.samples)
			break
		}
	}
}

func TestCubicPolyDeriv(t *testing.T) {
	for _, c := range wellBehaved {
		for _, p := range []cubicPoly{c.x, c.y} {
			for i := range 11 {
				ts := float64(i) / 10
				want := fd.Derivative(p.eval, ts, &fd.Settings{Formula: fd.Central})
				if got := p.deriv(ts); !scalar.EqualWithinAbs(got, want, 1e-6) {
					t.Errorf("deriv(%v) = %v, want %v", ts, got, want)
				}
			}
		}
	}
}

func TestCubicBezierEval(t *testing.T) {
	c := From(0.42, 0.0, 0.58, 1.0)
	diff(t, Pt(0, 0), c.Eval(0))
	diff(t, Pt(1, 1), c.Eval(1), cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(0.5, 0.5), c.Eval(0.5), cmpopts.EquateApprox(0, 1e-12))
}

func TestFrom(t *testing.T) {
	if got, want := From(0, 0, 1, 1), New(Pt(0, 0), Pt(1, 1)); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	c32 := From[float32](0.42, 0, 0.58, 1)
	for i := 1; i < 10; i++ {
		x := float64(i) / 10
		diff(t, EaseInOut.Y(x), c32.Y(x), cmpopts.EquateApprox(0, 1e-6))
	}
}

func TestCubicBezierExact(t *testing.T) {
	for _, c := range wellBehaved {
		for i := range 101 {
			x := float64(i) / 100
			if got, want := c.Y(x), c.Exact(x); math.Abs(got-want) > 1e-3 {
				t.Errorf("%v: Y(%v) = %v, want %v", c, x, got, want)
			}
		}
	}
}

func BenchmarkCubicBezierY(b *testing.B) {
	for range b.N {
		for i := 1; i < 100; i++ {
			Ease.Y(float64(i) / 100)
		}
	}
}

func BenchmarkCubicBezierExact(b *testing.B) {
	for range b.N {
		for i := 1; i < 100; i++ {
			Ease.Exact(float64(i) / 100)
		}
	}
}
