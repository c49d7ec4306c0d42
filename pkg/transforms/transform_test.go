package transforms

import "testing"

func TestConstant(t *testing.T) {
	points := []complex128{0, complex(0.25, 0), complex(-1.5, 0.75)}
	j := Julia{C: complex(-1, 0)}

	for _, z0 := range points {
		if got := j.Constant(z0); got != j.C {
			t.Errorf("Julia.Constant(%v): got %v, want %v", z0, got, j.C)
		}
		if got := (Mandelbrot{}).Constant(z0); got != z0 {
			t.Errorf("Mandelbrot.Constant(%v): got %v, want %v", z0, got, z0)
		}
	}
}

func TestQuadratic(t *testing.T) {
	tests := []struct {
		z, c, want complex128
	}{
		{0, complex(-1, 0), complex(-1, 0)},
		{complex(-1, 0), complex(-1, 0), 0},
		// (1+2i)^2 = -3+4i
		{complex(1, 2), complex(0.5, -0.5), complex(-2.5, 3.5)},
		{complex(0, 1), 0, complex(-1, 0)},
	}

	for _, tt := range tests {
		if got := Quadratic(tt.z, tt.c); got != tt.want {
			t.Errorf("Quadratic(%v, %v): got %v, want %v", tt.z, tt.c, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	if got := (Julia{C: complex(-1, 0)}).String(); got != "Julia, c = (-1+0i)" {
		t.Errorf("Julia: got %q", got)
	}
	if got := (Mandelbrot{}).String(); got != "Mandelbrot" {
		t.Errorf("Mandelbrot: got %q", got)
	}
}
