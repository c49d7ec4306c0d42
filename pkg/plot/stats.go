package plot

import "github.com/willbeason/escape-fractal/pkg/escape"

// Stats summarize the results of a plot.
//
// Stats form a commutative reduction, so partial Stats over any split of the
// pixels merge into the same total.
type Stats struct {
	// MostIterations is the largest iteration count seen.
	MostIterations int

	Pixels   int
	Stable   int
	Unstable int
}

// Observe folds one result into s.
func (s *Stats) Observe(r escape.Result) {
	if r.Iterations > s.MostIterations {
		s.MostIterations = r.Iterations
	}

	s.Pixels++
	if r.Stable {
		s.Stable++
	} else {
		s.Unstable++
	}
}

// Merge folds another partial result into s.
func (s *Stats) Merge(o Stats) {
	if o.MostIterations > s.MostIterations {
		s.MostIterations = o.MostIterations
	}

	s.Pixels += o.Pixels
	s.Stable += o.Stable
	s.Unstable += o.Unstable
}
