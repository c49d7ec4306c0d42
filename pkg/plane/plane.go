package plane

// ToComplex maps a pixel coordinate along one axis into the mathematical plane.
//
// zoom must be non-zero; configurations are validated before plotting.
func ToComplex(p int, zoom, offset float64) float64 {
	return float64(p)/zoom + offset
}

// ToPixel is the inverse of ToComplex.
func ToPixel(v, zoom, offset float64) float64 {
	return (v - offset) * zoom
}

// A Mapper converts between plot pixels and points of the complex plane.
type Mapper struct {
	// Zoom is the number of pixels per unit of the complex plane.
	Zoom float64

	// XOffset and YOffset are the mathematical coordinates of the plot's centre.
	XOffset, YOffset float64
}

// Point returns the complex number at plot pixel (px, py).
func (m Mapper) Point(px, py int) complex128 {
	return complex(ToComplex(px, m.Zoom, m.XOffset), ToComplex(py, m.Zoom, m.YOffset))
}

// Pixel returns the (possibly fractional) plot pixel of z.
func (m Mapper) Pixel(z complex128) (float64, float64) {
	return ToPixel(real(z), m.Zoom, m.XOffset), ToPixel(imag(z), m.Zoom, m.YOffset)
}

// Readback reports the mathematical coordinates of a selected plot position.
// Positions from pointer events need not fall on whole pixels.
func (m Mapper) Readback(px, py float64) (float64, float64) {
	return px/m.Zoom + m.XOffset, py/m.Zoom + m.YOffset
}
