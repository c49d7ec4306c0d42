// Package palette maps iteration counts to colors.
package palette

import (
	"fmt"
	"image/color"
	"math"
)

const (
	DefaultSize   = 750
	DefaultOffset = 25
)

// A Palette is a fixed table of colors indexed by iteration count.
//
// Offset shifts which entry the first iterations land on. It only changes
// the look of a plot.
type Palette struct {
	Colors []color.RGBA
	Offset int
}

// ColorFor returns the color for a pixel that escaped after n iterations.
func (p Palette) ColorFor(n int) color.RGBA {
	size := len(p.Colors)
	i := (n + p.Offset) % size
	if i < 0 {
		i += size
	}
	return p.Colors[i]
}

// Default is a 750-entry hue sweep offset by 25.
func Default() Palette {
	return Palette{Colors: Spectrum(DefaultSize), Offset: DefaultOffset}
}

// Spectrum returns size fully saturated colors sweeping once around the hue circle.
func Spectrum(size int) []color.RGBA {
	colors := make([]color.RGBA, size)
	for i := range colors {
		colors[i] = hsv(float64(i)/float64(size), 1, 1)
	}
	return colors
}

// Graded returns a monochrome ramp where entry a is gray(a*step), wrapping at 256.
func Graded(step int) []color.RGBA {
	if step < 1 {
		step = 1
	}

	size := (256 + step - 1) / step
	colors := make([]color.RGBA, size)
	for i := range colors {
		y := uint8(i * step)
		colors[i] = color.RGBA{R: y, G: y, B: y, A: 0xff}
	}
	return colors
}

// Named returns one of the built-in palettes.
func Named(name string) (Palette, error) {
	switch name {
	case "", "spectrum":
		return Default(), nil
	case "graded":
		return Palette{Colors: Graded(4)}, nil
	default:
		return Palette{}, fmt.Errorf("unknown palette %q", name)
	}
}

func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(h, 1)
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 0xff}
}
