// Command cubicbezier evaluates CSS easing functions.
//
// Usage:
//
//	cubicbezier [flags] CURVE [X...]
//
// CURVE is a CSS easing function, such as ease-in or
// "cubic-bezier(0.1, 0.7, 1.0, 0.1)". Without any X, the curve is sampled at
// evenly spaced inputs, see --samples.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cubicbezier: %s\n", err)
		os.Exit(1)
	}
}
