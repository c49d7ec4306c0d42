// Package cli holds the plot settings shared by the commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/spf13/pflag"
	"github.com/willbeason/escape-fractal/pkg/canvas"
	"github.com/willbeason/escape-fractal/pkg/palette"
	"github.com/willbeason/escape-fractal/pkg/plot"
	"github.com/willbeason/escape-fractal/pkg/transforms"
)

// DefaultC draws the classic Julia set.
const DefaultC = complex(-1, 0)

// PlotFlags are the user-facing plot settings.
type PlotFlags struct {
	Config plot.Config

	// Julia selects a Julia set with constant C; otherwise the Mandelbrot set is drawn.
	Julia bool
	C     ComplexValue

	Palette  string
	Axes     bool
	Progress bool
}

func NewPlotFlags() *PlotFlags {
	return &PlotFlags{
		Config:  plot.DefaultConfig(),
		Julia:   true,
		C:       ComplexValue(DefaultC),
		Palette: "spectrum",
		Axes:    true,
	}
}

// Bind registers the settings on fs, using the current values as defaults.
func (f *PlotFlags) Bind(fs *pflag.FlagSet) {
	cfg := &f.Config

	fs.Float64Var(&cfg.Zoom, "zoom", cfg.Zoom, "pixels per unit of the complex plane")
	fs.Float64Var(&cfg.XOffset, "x-offset", cfg.XOffset, "real coordinate at the centre of the plot")
	fs.Float64Var(&cfg.YOffset, "y-offset", cfg.YOffset, "imaginary coordinate at the centre of the plot")

	fs.BoolVar(&f.Julia, "julia", f.Julia, "plot a Julia set; --julia=false plots the Mandelbrot set")
	fs.Var(&f.C, "c", "Julia set constant, as re,im")

	fs.IntVar(&cfg.MaxIterations, "max-iterations", cfg.MaxIterations, "iteration budget per point")
	fs.Float64Var(&cfg.StabilityThreshold, "stability-threshold", cfg.StabilityThreshold, "magnitude past which a point is unstable")
	fs.Float64Var(&cfg.ZeroThreshold, "zero-threshold", cfg.ZeroThreshold,
		"magnitude under which a point is assumed stable; 0 disables the shortcut")

	fs.IntVar(&cfg.Width, "width", cfg.Width, "image width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "image height in pixels")
	fs.IntVar(&cfg.Step, "step", cfg.Step, "sample every step pixels")

	fs.StringVar(&f.Palette, "palette", f.Palette, "color palette: spectrum or graded")
	fs.BoolVar(&f.Axes, "axes", f.Axes, "draw the real and imaginary axes")
	fs.BoolVar(&f.Progress, "progress", f.Progress, "log each completed row")
}

func (f *PlotFlags) Mode() transforms.Mode {
	if f.Julia {
		return transforms.Julia{C: complex128(f.C)}
	}
	return transforms.Mandelbrot{}
}

// Render validates the settings, then plots onto a fresh canvas. A summary
// is written to out.
func (f *PlotFlags) Render(ctx context.Context, out io.Writer) (*canvas.Canvas, error) {
	if err := f.Config.Validate(); err != nil {
		return nil, err
	}

	colors, err := palette.Named(f.Palette)
	if err != nil {
		return nil, err
	}

	mode := f.Mode()
	fmt.Fprintln(out, "Type:", mode)
	fmt.Fprintln(out, "zoom factor", f.Config.Zoom)

	c := canvas.ForConfig(f.Config)
	if f.Axes {
		c.DrawAxes(f.Config.Mapper, canvas.AxisColor)
	}

	var opts []plot.Option
	if f.Progress {
		opts = append(opts, plot.OnRow(func(row, rows int) {
			log.Printf("row %d/%d", row, rows)
		}))
	}

	stats, err := plot.Plot(ctx, f.Config, mode, c, colors, opts...)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(out, "most iterations", stats.MostIterations)
	fmt.Fprintf(out, "%d points: %d stable, %d unstable\n", stats.Pixels, stats.Stable, stats.Unstable)

	return c, nil
}
