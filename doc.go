// Package easing implements cubic Bézier timing functions, as used for
// animations and transitions and as specified by CSS's cubic-bezier() easing
// function.
//
// A timing function maps normalized progress x ∈ [0, 1] to an eased output.
// For a cubic Bézier timing function, the curve (x(t), y(t)) starts at (0, 0),
// ends at (1, 1), and is shaped by two control points. Evaluating the function
// at x requires finding the parameter t for which x(t) = x and then
// evaluating y(t). As there is no convenient closed form for inverting x(t),
// [CubicBezier] approximates t numerically:
//
//   - At construction, x(t) is sampled at 11 evenly spaced values of t.
//   - The samples bracket x and provide an initial guess by linear
//     interpolation.
//   - The guess is refined with four iterations of Newton's method, or, if
//     the curve is nearly flat near the guess, with up to ten steps of
//     binary subdivision.
//
// This is the same approach used by most browser engines, and its results
// are accurate to well within 1e-4 for all valid curves. [CubicBezier.Exact]
// computes t analytically instead and can be used to verify that claim.
//
// Control points are clamped to the unit square. This guarantees that x(t)
// is monotonic, and thus that the timing function is well-defined.
//
// # CSS
//
// [Parse] understands CSS easing functions, that is the predefined keywords
// ([Linear], [Ease], [EaseIn], [EaseOut], and [EaseInOut]) and
// cubic-bezier(x1, y1, x2, y2).
//
// # Logging
//
// The package doesn't log by default. See [SetLogger].
package easing
