package plot

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/willbeason/escape-fractal/pkg/escape"
	"github.com/willbeason/escape-fractal/pkg/plane"
)

const (
	DefaultWidth  = 1000
	DefaultHeight = 800

	// DefaultZoom fits roughly -2.5 to 2.5 across the default width.
	DefaultZoom = 200
)

// ErrInvalidConfig is wrapped by every configuration failure.
var ErrInvalidConfig = errors.New("invalid plot configuration")

// ConfigError names the setting that made a Config unusable.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrInvalidConfig, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// Config is everything a plot reads. It is not modified while plotting.
type Config struct {
	plane.Mapper
	escape.Params

	Width, Height int

	// Step is the pixel sampling stride. Larger steps are faster and coarser.
	Step int

	// StableColor, if set, is plotted for stable points. Otherwise they are
	// left as background.
	StableColor color.Color
}

func DefaultConfig() Config {
	return Config{
		Mapper: plane.Mapper{Zoom: DefaultZoom},
		Params: escape.DefaultParams(),
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Step:   1,
	}
}

// Viewport is the pixel window the plot covers.
func (cfg Config) Viewport() plane.Viewport {
	return plane.Viewport{Width: cfg.Width, Height: cfg.Height}
}

// Validate reports the first unusable setting.
func (cfg Config) Validate() error {
	switch {
	case !finite(cfg.Zoom) || cfg.Zoom <= 0:
		return &ConfigError{Field: "zoom", Reason: fmt.Sprintf("must be positive, got %g", cfg.Zoom)}
	case !finite(cfg.XOffset):
		return &ConfigError{Field: "x offset", Reason: fmt.Sprintf("must be finite, got %g", cfg.XOffset)}
	case !finite(cfg.YOffset):
		return &ConfigError{Field: "y offset", Reason: fmt.Sprintf("must be finite, got %g", cfg.YOffset)}
	case cfg.MaxIterations < 1:
		return &ConfigError{Field: "max iterations", Reason: fmt.Sprintf("must be at least 1, got %d", cfg.MaxIterations)}
	case !finite(cfg.ZeroThreshold) || cfg.ZeroThreshold < 0:
		return &ConfigError{Field: "zero threshold", Reason: fmt.Sprintf("must be non-negative, got %g", cfg.ZeroThreshold)}
	case !finite(cfg.StabilityThreshold) || cfg.StabilityThreshold <= cfg.ZeroThreshold:
		return &ConfigError{
			Field:  "stability threshold",
			Reason: fmt.Sprintf("must exceed zero threshold %g, got %g", cfg.ZeroThreshold, cfg.StabilityThreshold),
		}
	case cfg.Width < 1 || cfg.Height < 1:
		return &ConfigError{Field: "size", Reason: fmt.Sprintf("must be positive, got %dx%d", cfg.Width, cfg.Height)}
	case cfg.Step < 1:
		return &ConfigError{Field: "step", Reason: fmt.Sprintf("must be at least 1, got %d", cfg.Step)}
	}

	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
