package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"honnef.co/go/easing"
)

const (
	formatText = "text"
	formatCSV  = "csv"
)

type options struct {
	samples int
	format  string
	exact   bool
	verbose bool
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := cobra.Command{
		Use:   "cubicbezier CURVE [X...]",
		Short: "Evaluate CSS easing functions",
		Long: `Evaluate a CSS easing function at the given inputs.

CURVE is one of linear, ease, ease-in, ease-out, ease-in-out or
cubic-bezier(x1, y1, x2, y2). Inputs outside of [0, 1] are clamped.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				setLogger(cmd.ErrOrStderr())
				defer resetLogger()
			}
			defer flushLogger()
			return run(cmd.OutOrStdout(), args[0], args[1:], opts)
		},
	}

	addFlags(cmd.Flags(), &opts)

	return &cmd
}

func addFlags(flags *pflag.FlagSet, opts *options) {
	flags.IntVarP(&opts.samples, "samples", "n", 11, "Number of evenly spaced inputs to use when no X is given.")
	flags.StringVarP(&opts.format, "format", "f", formatText, "Output format, text or csv.")
	flags.BoolVar(&opts.exact, "exact", false, "Invert cubic-bezier curves analytically instead of iteratively.")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug information to stderr.")
}

func run(w io.Writer, curve string, inputs []string, opts options) error {
	if opts.format != formatText && opts.format != formatCSV {
		return fmt.Errorf("unsupported format %q", opts.format)
	}

	f, err := easing.Parse(curve)
	if err != nil {
		return err
	}
	if c, ok := f.(easing.CubicBezier); ok && opts.exact {
		f = easing.Func(c.Exact)
	}
	getLogger().Debug("parsed curve", zap.String("curve", curve), zap.Bool("exact", opts.exact))

	var pts []easing.Point
	if len(inputs) == 0 {
		if opts.samples < 1 {
			return fmt.Errorf("invalid number of samples %d", opts.samples)
		}
		for pt := range easing.Samples(f, opts.samples) {
			pts = append(pts, pt)
		}
	} else {
		for _, in := range inputs {
			x, err := strconv.ParseFloat(in, 64)
			if err != nil {
				return fmt.Errorf("invalid input %q: %w", in, err)
			}
			if math.IsNaN(x) {
				return fmt.Errorf("invalid input %q", in)
			}
			if x < 0 || x > 1 {
				getLogger().Warn("clamping input", zap.Float64("x", x))
				x = min(max(x, 0), 1)
			}
			pts = append(pts, easing.Pt(x, f.Y(x)))
		}
	}

	switch opts.format {
	case formatCSV:
		return writeCSV(w, pts)
	default:
		return writeText(w, pts)
	}
}

func writeText(w io.Writer, pts []easing.Point) error {
	for _, pt := range pts {
		if _, err := fmt.Fprintf(w, "%g\t%g\n", pt.X, pt.Y); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(w io.Writer, pts []easing.Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, pt := range pts {
		rec := []string{
			strconv.FormatFloat(pt.X, 'g', -1, 64),
			strconv.FormatFloat(pt.Y, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
