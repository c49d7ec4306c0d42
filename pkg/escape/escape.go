// Package escape classifies points of the complex plane by iterating
// z -> z*z + c and watching how quickly |z| grows.
package escape

import (
	"math"
	"math/cmplx"

	"github.com/willbeason/escape-fractal/pkg/transforms"
)

const (
	DefaultMaxIterations      = 100
	DefaultStabilityThreshold = 2.0
	DefaultZeroThreshold      = 0.01
)

// Params bound a single classification.
type Params struct {
	// MaxIterations is the iteration budget. At most MaxIterations-1 steps run.
	MaxIterations int

	// StabilityThreshold is the magnitude past which a sequence is taken to diverge.
	StabilityThreshold float64

	// ZeroThreshold enables an early exit once |z| drops below it.
	//
	// The exit is a heuristic: a sequence this close to zero is assumed to have
	// settled into a bounded basin. That is not proven for every c, so raise
	// MaxIterations together with setting ZeroThreshold to 0 when an exact
	// escape-time answer matters. Zero disables the shortcut.
	ZeroThreshold float64
}

func DefaultParams() Params {
	return Params{
		MaxIterations:      DefaultMaxIterations,
		StabilityThreshold: DefaultStabilityThreshold,
		ZeroThreshold:      DefaultZeroThreshold,
	}
}

// Result is the verdict for one point.
type Result struct {
	// Iterations is the step at which the verdict was reached.
	Iterations int
	Stable     bool
}

// Classify iterates z0 under z*z + c and reports whether it stays bounded.
//
// The first step whose magnitude exceeds StabilityThreshold decides the point
// unstable. A magnitude that overflows to +Inf, or becomes NaN, counts as
// exceeding any threshold.
func Classify(z0, c complex128, p Params) Result {
	z := z0
	var a int

	for a = 1; a < p.MaxIterations; a++ {
		z = transforms.Quadratic(z, c)
		size := cmplx.Abs(z)

		if size > p.StabilityThreshold || math.IsNaN(size) {
			return Result{Iterations: a, Stable: false}
		}

		if size < p.ZeroThreshold {
			return Result{Iterations: a, Stable: true}
		}
	}

	// Budget exhausted; report the last step reached.
	return Result{Iterations: a - 1, Stable: true}
}
