package easing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrSyntax is returned by [Parse] for input that isn't a supported
	// easing function.
	ErrSyntax = errors.New("invalid easing function")
	// ErrRange is returned by [Parse] for cubic-bezier() functions whose x
	// coordinates lie outside of [0, 1].
	ErrRange = errors.New("x coordinate out of range")
)

var keywords = map[string]Function{
	"linear":      Linear,
	"ease":        Ease,
	"ease-in":     EaseIn,
	"ease-out":    EaseOut,
	"ease-in-out": EaseInOut,
}

// Parse parses a CSS easing function. It accepts the keywords linear, ease,
// ease-in, ease-out, and ease-in-out, as well as cubic-bezier(x1, y1, x2, y2).
//
// CSS requires x1 and x2 to lie in [0, 1] and Parse reports an error wrapping
// [ErrRange] if they don't. The y coordinates may be any number, but will be
// clamped to [0, 1] by [New].
func Parse(s string) (Function, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if f, ok := keywords[in]; ok {
		return f, nil
	}

	args, ok := strings.CutPrefix(in, "cubic-bezier")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	args = strings.TrimSpace(args)
	args, ok = strings.CutPrefix(args, "(")
	if !ok {
		return nil, fmt.Errorf("%w: %q: missing opening parenthesis", ErrSyntax, s)
	}
	args, ok = strings.CutSuffix(args, ")")
	if !ok {
		return nil, fmt.Errorf("%w: %q: missing closing parenthesis", ErrSyntax, s)
	}

	fields := strings.Split(args, ",")
	if len(fields) != 4 {
		return nil, fmt.Errorf("%w: %q: got %d arguments, want 4", ErrSyntax, s, len(fields))
	}
	var coords [4]float64
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: argument %d: %w", ErrSyntax, s, i+1, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %q: argument %d is not a finite number", ErrSyntax, s, i+1)
		}
		coords[i] = v
	}

	x1, y1, x2, y2 := coords[0], coords[1], coords[2], coords[3]
	if !(x1 >= 0 && x1 <= 1) || !(x2 >= 0 && x2 <= 1) {
		return nil, fmt.Errorf("%w: %q", ErrRange, s)
	}
	return New(Pt(x1, y1), Pt(x2, y2)), nil
}
