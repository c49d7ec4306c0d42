package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/willbeason/escape-fractal/pkg/plot"
	"github.com/willbeason/escape-fractal/pkg/transforms"
)

func TestParseComplex(t *testing.T) {
	tests := []struct {
		in   string
		want complex128
	}{
		{"-1,0", complex(-1, 0)},
		{" -0.512511498387847167, 0.521295573094847167 ", complex(-0.512511498387847167, 0.521295573094847167)},
		{"-1+0i", complex(-1, 0)},
		{"0.25", complex(0.25, 0)},
		{"2+2i", complex(2, 2)},
	}

	for _, tt := range tests {
		got, err := ParseComplex(tt.in)
		if err != nil {
			t.Errorf("ParseComplex(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseComplex(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "x,1", "1,y", "one"} {
		if _, err := ParseComplex(bad); err == nil {
			t.Errorf("ParseComplex(%q): want error", bad)
		}
	}
}

func TestBind(t *testing.T) {
	f := NewPlotFlags()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.Bind(fs)

	err := fs.Parse([]string{
		"--zoom=400", "--x-offset=-0.127", "--y-offset=0.986",
		"--julia=false", "--max-iterations=250", "--zero-threshold=0",
		"--width=320", "--height=200", "--step=2", "--c=0.3,-0.5",
	})
	if err != nil {
		t.Fatal(err)
	}

	cfg := f.Config
	if cfg.Zoom != 400 || cfg.XOffset != -0.127 || cfg.YOffset != 0.986 {
		t.Errorf("mapping: got %+v", cfg.Mapper)
	}
	if cfg.MaxIterations != 250 || cfg.ZeroThreshold != 0 || cfg.StabilityThreshold != 2 {
		t.Errorf("params: got %+v", cfg.Params)
	}
	if cfg.Width != 320 || cfg.Height != 200 || cfg.Step != 2 {
		t.Errorf("window: got %dx%d step %d", cfg.Width, cfg.Height, cfg.Step)
	}
	if complex128(f.C) != complex(0.3, -0.5) {
		t.Errorf("c: got %v", f.C)
	}
	if _, ok := f.Mode().(transforms.Mandelbrot); !ok {
		t.Errorf("mode: got %v, want Mandelbrot", f.Mode())
	}
}

func TestDefaults(t *testing.T) {
	f := NewPlotFlags()

	mode, ok := f.Mode().(transforms.Julia)
	if !ok || mode.C != DefaultC {
		t.Errorf("mode: got %v, want Julia with c = %v", f.Mode(), DefaultC)
	}
	if f.C.String() != "-1,0" {
		t.Errorf("c flag default: got %q", f.C.String())
	}
	if err := f.Config.Validate(); err != nil {
		t.Errorf("default config: %v", err)
	}
}

func TestRender(t *testing.T) {
	f := NewPlotFlags()
	f.Config.Width, f.Config.Height = 50, 40
	f.Config.Zoom = 20

	var out bytes.Buffer
	c, err := f.Render(context.Background(), &out)
	if err != nil {
		t.Fatal(err)
	}

	if c.Viewport().Width != 50 || c.Viewport().Height != 40 {
		t.Errorf("canvas: got %+v", c.Viewport())
	}
	for _, want := range []string{"Type: Julia, c = (-1+0i)", "zoom factor 20", "most iterations"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRenderInvalid(t *testing.T) {
	f := NewPlotFlags()
	f.Config.StabilityThreshold = 0.001

	var out bytes.Buffer
	_, err := f.Render(context.Background(), &out)
	if !errors.Is(err, plot.ErrInvalidConfig) {
		t.Fatalf("got %v, want ErrInvalidConfig", err)
	}
	if out.Len() != 0 {
		t.Errorf("wrote output before failing: %q", out.String())
	}

	f = NewPlotFlags()
	f.Palette = "sepia"
	if _, err := f.Render(context.Background(), &out); err == nil {
		t.Error("unknown palette: want error")
	}
}
