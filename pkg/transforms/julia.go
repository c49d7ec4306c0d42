package transforms

import "fmt"

// Julia fixes the recurrence constant for every point of the plot.
type Julia struct {
	C complex128
}

func (j Julia) Constant(complex128) complex128 {
	return j.C
}

func (j Julia) String() string {
	return fmt.Sprintf("Julia, c = %v", j.C)
}

var _ Mode = Julia{}
