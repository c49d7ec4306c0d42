package transforms

// A Mode decides the recurrence constant used for a starting point.
//
// The escape-time classifier never sees the Mode; the plotting loop asks it
// for c once per pixel and passes the pair (z0, c) on.
type Mode interface {
	Constant(z0 complex128) complex128
	String() string
}

// Quadratic is one step of the map z -> z*z + c.
func Quadratic(z, c complex128) complex128 {
	return z*z + c
}
