package plane

import (
	"math"
	"testing"
)

func TestToComplex(t *testing.T) {
	tests := []struct {
		p      int
		zoom   float64
		offset float64
		want   float64
	}{
		{0, 200, 0, 0},
		{200, 200, 0, 1},
		{-500, 200, 0, -2.5},
		{100, 200, -0.127, 0.373},
		{-400, 250, 0.986, -0.614},
	}

	for _, tt := range tests {
		got := ToComplex(tt.p, tt.zoom, tt.offset)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("ToComplex(%d, %g, %g): got %g, want %g", tt.p, tt.zoom, tt.offset, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	zooms := []float64{1, 3, 200, 1234.5, -50}
	offsets := []float64{0, -0.127, 0.8735919899874842, 17}

	for _, zoom := range zooms {
		for _, offset := range offsets {
			for p := -600; p <= 600; p += 37 {
				got := ToPixel(ToComplex(p, zoom, offset), zoom, offset)
				if math.Abs(got-float64(p)) > 1e-6 {
					t.Errorf("round trip of %d at zoom %g offset %g: got %g", p, zoom, offset, got)
				}
			}
		}
	}
}

func TestMapper(t *testing.T) {
	m := Mapper{Zoom: 200, XOffset: -0.5, YOffset: 0.25}

	z := m.Point(100, -50)
	if z != complex(0, 0) {
		t.Errorf("Point(100, -50): got %v, want 0", z)
	}

	x, y := m.Pixel(complex(0.5, 1.25))
	if x != 200 || y != 200 {
		t.Errorf("Pixel(0.5+1.25i): got (%g, %g), want (200, 200)", x, y)
	}

	rx, ry := m.Readback(100, -50)
	if rx != real(z) || ry != imag(z) {
		t.Errorf("Readback disagrees with Point: got (%g, %g), want %v", rx, ry, z)
	}
}

func TestViewport(t *testing.T) {
	v := Viewport{Width: 1000, Height: 800}

	tests := []struct {
		px, py   int
		col, row int
	}{
		{-500, -400, 0, 799},
		{499, 399, 999, 0},
		{0, 0, 500, 399},
	}

	for _, tt := range tests {
		col, row := v.Screen(tt.px, tt.py)
		if col != tt.col || row != tt.row {
			t.Errorf("Screen(%d, %d): got (%d, %d), want (%d, %d)", tt.px, tt.py, col, row, tt.col, tt.row)
		}
		if !v.Contains(col, row) {
			t.Errorf("Screen(%d, %d) = (%d, %d) is outside the viewport", tt.px, tt.py, col, row)
		}

		px, py := v.Plot(col, row)
		if px != tt.px || py != tt.py {
			t.Errorf("Plot(%d, %d): got (%d, %d), want (%d, %d)", col, row, px, py, tt.px, tt.py)
		}
	}
}

func TestViewportSamples(t *testing.T) {
	v := Viewport{Width: 10, Height: 5}

	xs := v.Xs(1)
	if len(xs) != 10 || xs[0] != -5 || xs[9] != 4 {
		t.Errorf("Xs(1): got %v", xs)
	}

	ys := v.Ys(2)
	want := []int{-2, 0, 2}
	if len(ys) != len(want) {
		t.Fatalf("Ys(2): got %v, want %v", ys, want)
	}
	for i := range want {
		if ys[i] != want[i] {
			t.Errorf("Ys(2): got %v, want %v", ys, want)
			break
		}
	}
}
