package config

import (
	"errors"
	"flag"
	"image/color"
	"io"
	"testing"

	fractal "github.com/marben/progressive_fractal"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	c := Register(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return c
}

func TestDefaults(t *testing.T) {
	c := parse(t)
	win, err := c.Window()
	if err != nil {
		t.Fatal(err)
	}
	if win.Region != fractal.SeahorseValley || win.W != 1920 || win.H != 1080 {
		t.Errorf("window = %+v", win)
	}
	p, err := c.Params()
	if err != nil {
		t.Fatal(err)
	}
	if want := (fractal.Params{Power: 2, TrapFactor: 1, MaxIterations: 1000}); p != want {
		t.Errorf("params = %+v, want %+v", p, want)
	}
	m, err := c.Mapper()
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Palette) != fractal.PaletteBuckets {
		t.Errorf("palette has %d colours, want %d", len(m.Palette), fractal.PaletteBuckets)
	}
	stops, err := fractal.ParseStops(DefaultStops)
	if err != nil {
		t.Fatal(err)
	}
	want := fractal.NewGradientPalette(fractal.PaletteBuckets, stops...)
	for i := range want {
		if m.Palette[i] != want[i] {
			t.Fatalf("colour %d = %v, want %v", i, m.Palette[i], want[i])
		}
	}
}

func TestFlags(t *testing.T) {
	c := parse(t, "-region", "Dragon", "-width", "64", "-height", "48", "-iter", "300",
		"-type", "julia", "-p", "-0.8", "-q", "0.156", "-equation", "phoenix", "-alg", "gaussian-integer", "-trap", "3")
	win, err := c.Window()
	if err != nil {
		t.Fatal(err)
	}
	if win.Region != fractal.ValleyOfTheDragon || win.W != 64 || win.H != 48 {
		t.Errorf("window = %+v", win)
	}
	p, err := c.Params()
	if err != nil {
		t.Fatal(err)
	}
	want := fractal.Params{
		Power:         2,
		TrapFactor:    3,
		P:             -0.8,
		Q:             0.156,
		MaxIterations: 300,
		Equation:      fractal.EquationPhoenix,
		Type:          fractal.TypeJulia,
		Algorithm:     fractal.AlgorithmGaussianInteger,
	}
	if p != want {
		t.Errorf("params = %+v, want %+v", p, want)
	}
}

func TestBounds(t *testing.T) {
	c := parse(t, "-bounds", "-1, 1, -0.5, 0.5", "-region", "nowhere")
	win, err := c.Window()
	if err != nil {
		t.Fatal(err)
	}
	want := fractal.Region{Xmin: -1, Xmax: 1, Ymin: -0.5, Ymax: 0.5}
	if win.Region != want {
		t.Errorf("region = %+v, want %+v", win.Region, want)
	}

	for _, bounds := range []string{"1,2,3", "a,1,0,1", "1,-1,0,1"} {
		c := parse(t, "-bounds", bounds)
		if _, err := c.Window(); !errors.Is(err, fractal.ErrInvalidWindow) {
			t.Errorf("bounds %q: err = %v, want ErrInvalidWindow", bounds, err)
		}
	}
}

func TestInvalid(t *testing.T) {
	if _, err := parse(t, "-region", "nowhere").Window(); !errors.Is(err, fractal.ErrInvalidWindow) {
		t.Errorf("unknown region: err = %v", err)
	}
	if _, err := parse(t, "-width", "0").Window(); !errors.Is(err, fractal.ErrInvalidWindow) {
		t.Errorf("zero width: err = %v", err)
	}
	for _, args := range [][]string{
		{"-equation", "cubic"},
		{"-type", "newton"},
		{"-alg", "distance"},
		{"-iter", "0"},
		{"-power", "1"},
		{"-alg", "gaussian-integer", "-trap", "0"},
	} {
		if _, err := parse(t, args...).Params(); !errors.Is(err, fractal.ErrInvalidParams) {
			t.Errorf("%v: err = %v, want ErrInvalidParams", args, err)
		}
	}
	if _, err := parse(t, "-palette", "#12").Mapper(); err == nil {
		t.Error("bad palette accepted")
	}
}

func TestNewMapper(t *testing.T) {
	m, err := NewMapper("HUE", 120)
	if err != nil {
		t.Fatal(err)
	}
	if m.Palette[0] != (color.RGBA{0, 0xff, 0, 0xff}) {
		t.Errorf("hue 120 starts at %v, want green", m.Palette[0])
	}

	m, err = NewMapper("#ff0000,#0000ff", 0)
	if err != nil {
		t.Fatal(err)
	}
	first, last := m.Palette[0], m.Palette[len(m.Palette)-1]
	if first != (color.RGBA{0xff, 0, 0, 0xff}) || last != (color.RGBA{0, 0, 0xff, 0xff}) {
		t.Errorf("gradient runs from %v to %v", first, last)
	}
}
