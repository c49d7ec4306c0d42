package transforms

// Mandelbrot uses each point as its own recurrence constant.
type Mandelbrot struct{}

func (Mandelbrot) Constant(z0 complex128) complex128 {
	return z0
}

func (Mandelbrot) String() string {
	return "Mandelbrot"
}

var _ Mode = Mandelbrot{}
