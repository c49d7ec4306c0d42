package plane

// A Viewport is the pixel window a plot is drawn into.
//
// Plot pixels are centred on the origin with y increasing upward, covering
// [-Width/2, Width/2) horizontally and [-Height/2, Height/2) vertically.
// Screen positions are raster columns and rows counted from the top-left.
type Viewport struct {
	Width, Height int
}

func (v Viewport) left() int {
	return -v.Width / 2
}

func (v Viewport) bottom() int {
	return -v.Height / 2
}

// Screen converts plot pixel (px, py) to a raster column and row.
func (v Viewport) Screen(px, py int) (int, int) {
	col := px - v.left()
	row := v.Height - 1 - (py - v.bottom())
	return col, row
}

// Plot converts a raster column and row back to a plot pixel.
func (v Viewport) Plot(col, row int) (int, int) {
	px := col + v.left()
	py := v.Height - 1 - row + v.bottom()
	return px, py
}

// Contains reports whether the raster position lies inside the viewport.
func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && col < v.Width && row >= 0 && row < v.Height
}

// Xs returns the horizontal plot pixels sampled every step pixels, left to right.
func (v Viewport) Xs(step int) []int {
	return samples(v.left(), v.left()+v.Width, step)
}

// Ys returns the vertical plot pixels sampled every step pixels, bottom to top.
func (v Viewport) Ys(step int) []int {
	return samples(v.bottom(), v.bottom()+v.Height, step)
}

func samples(from, to, step int) []int {
	if step < 1 {
		step = 1
	}

	result := make([]int, 0, (to-from+step-1)/step)
	for p := from; p < to; p += step {
		result = append(result, p)
	}
	return result
}
