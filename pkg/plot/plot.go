// Package plot drives the escape-time classifier across a pixel window.
package plot

import (
	"context"
	"image/color"

	"github.com/willbeason/escape-fractal/pkg/escape"
	"github.com/willbeason/escape-fractal/pkg/transforms"
)

// A Sink receives plotted pixels, in centred plot coordinates.
type Sink interface {
	Plot(x, y int, c color.Color)
}

// A Colorer chooses the color of a point that escaped after n iterations.
type Colorer interface {
	ColorFor(n int) color.RGBA
}

type options struct {
	onRow func(row, rows int)
}

type Option func(*options)

// OnRow is called after each completed row with the rows done so far.
func OnRow(f func(row, rows int)) Option {
	return func(o *options) {
		o.onRow = f
	}
}

// Plot classifies every sampled pixel of cfg's window, bottom row first and
// left to right within a row, and hands unstable pixels to sink.
//
// The configuration is validated before any pixel is computed. Cancelling ctx
// stops the plot between rows; the Stats gathered so far are returned along
// with the context's error.
func Plot(ctx context.Context, cfg Config, mode transforms.Mode, sink Sink, colors Colorer, opts ...Option) (Stats, error) {
	var stats Stats

	if err := cfg.Validate(); err != nil {
		return stats, err
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	view := cfg.Viewport()
	xs := view.Xs(cfg.Step)
	ys := view.Ys(cfg.Step)

	for i, py := range ys {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		stats.Merge(plotRow(cfg, mode, sink, colors, xs, py))

		if o.onRow != nil {
			o.onRow(i+1, len(ys))
		}
	}

	return stats, nil
}

func plotRow(cfg Config, mode transforms.Mode, sink Sink, colors Colorer, xs []int, py int) Stats {
	var stats Stats

	for _, px := range xs {
		z0 := cfg.Point(px, py)
		r := escape.Classify(z0, mode.Constant(z0), cfg.Params)
		stats.Observe(r)

		switch {
		case !r.Stable:
			sink.Plot(px, py, colors.ColorFor(r.Iterations))
		case cfg.StableColor != nil:
			sink.Plot(px, py, cfg.StableColor)
		}
	}

	return stats
}
