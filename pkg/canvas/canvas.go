// Package canvas is an off-screen raster that plots can be drawn into.
package canvas

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/willbeason/escape-fractal/pkg/plane"
	"github.com/willbeason/escape-fractal/pkg/plot"
)

// AxisColor is the default color of the coordinate axes.
var AxisColor = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}

// A Canvas accepts pixels in centred plot coordinates.
type Canvas struct {
	dc   *gg.Context
	view plane.Viewport

	// step is the side of the square drawn for each plotted sample.
	step int
}

// New returns a width x height canvas filled with background.
//
// Each plotted sample fills a step x step square so that coarse plots leave
// no gaps.
func New(width, height, step int, background color.Color) *Canvas {
	if step < 1 {
		step = 1
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(background)
	dc.Clear()

	return &Canvas{
		dc:   dc,
		view: plane.Viewport{Width: width, Height: height},
		step: step,
	}
}

// ForConfig returns a black canvas sized for cfg.
func ForConfig(cfg plot.Config) *Canvas {
	return New(cfg.Width, cfg.Height, cfg.Step, color.Black)
}

// Plot colors the sample at plot pixel (x, y).
func (c *Canvas) Plot(x, y int, col color.Color) {
	c.dc.SetColor(col)

	for dy := 0; dy < c.step; dy++ {
		for dx := 0; dx < c.step; dx++ {
			sx, sy := c.view.Screen(x+dx, y+dy)
			if c.view.Contains(sx, sy) {
				c.dc.SetPixel(sx, sy)
			}
		}
	}
}

var _ plot.Sink = &Canvas{}

// DrawAxes draws the real and imaginary axes as they fall under m.
// Axes outside the canvas are skipped.
func (c *Canvas) DrawAxes(m plane.Mapper, col color.Color) {
	px, py := m.Pixel(0)
	sx, sy := c.view.Screen(int(math.Round(px)), int(math.Round(py)))

	w := float64(c.view.Width)
	h := float64(c.view.Height)

	c.dc.SetColor(col)
	c.dc.SetLineWidth(1)

	if sy >= 0 && sy < c.view.Height {
		c.dc.DrawLine(0, float64(sy)+0.5, w, float64(sy)+0.5)
		c.dc.Stroke()
	}
	if sx >= 0 && sx < c.view.Width {
		c.dc.DrawLine(float64(sx)+0.5, 0, float64(sx)+0.5, h)
		c.dc.Stroke()
	}
}

// Viewport is the pixel window of the canvas.
func (c *Canvas) Viewport() plane.Viewport {
	return c.view
}

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}
