package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// ComplexValue is a flag holding a complex number, written either as
// "re,im" or in Go syntax such as "-1+0i".
type ComplexValue complex128

func (c *ComplexValue) String() string {
	z := complex128(*c)
	return fmt.Sprintf("%g,%g", real(z), imag(z))
}

func (c *ComplexValue) Set(s string) error {
	z, err := ParseComplex(s)
	if err != nil {
		return err
	}
	*c = ComplexValue(z)
	return nil
}

func (c *ComplexValue) Type() string {
	return "complex"
}

var _ pflag.Value = new(ComplexValue)

// ParseComplex reads "re,im" or any form strconv.ParseComplex accepts.
func ParseComplex(s string) (complex128, error) {
	s = strings.TrimSpace(s)

	if re, im, ok := strings.Cut(s, ","); ok {
		r, err := strconv.ParseFloat(strings.TrimSpace(re), 64)
		if err != nil {
			return 0, fmt.Errorf("real part of %q: %w", s, err)
		}
		i, err := strconv.ParseFloat(strings.TrimSpace(im), 64)
		if err != nil {
			return 0, fmt.Errorf("imaginary part of %q: %w", s, err)
		}
		return complex(r, i), nil
	}

	z, err := strconv.ParseComplex(s, 128)
	if err != nil {
		return 0, fmt.Errorf("parsing complex %q: %w", s, err)
	}
	return z, nil
}
