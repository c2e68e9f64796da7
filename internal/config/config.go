// Package config binds the render settings shared by the commands to flags.
package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	fractal "github.com/marben/progressive_fractal"
)

// DefaultStops is the palette used when -palette is not given.
const DefaultStops = "#000764,#206bcb,#edffff,#ffaa00,#000200"

type Config struct {
	Region    string
	Bounds    string
	Width     int
	Height    int
	MaxIter   int
	Power     int
	Trap      int
	P, Q      float64
	Equation  string
	Type      string
	Algorithm string
	Palette   string
	Hue       float64
}

// Register defines the render flags on fs.
func Register(fs *flag.FlagSet) *Config {
	c := &Config{}
	fs.StringVar(&c.Region, "region", "seahorse", "landmark region: "+strings.Join(fractal.RegionNames(), ", "))
	fs.StringVar(&c.Bounds, "bounds", "", "explicit bounds xmin,xmax,ymin,ymax (overrides -region)")
	fs.IntVar(&c.Width, "width", 1920, "image width")
	fs.IntVar(&c.Height, "height", 1080, "image height")
	fs.IntVar(&c.MaxIter, "iter", 1000, "maximum iterations")
	fs.IntVar(&c.Power, "power", 2, "exponent of the power equation")
	fs.IntVar(&c.Trap, "trap", 1, "lattice scale of the gaussian-integer trap")
	fs.Float64Var(&c.P, "p", 0, "real part of the julia constant")
	fs.Float64Var(&c.Q, "q", 0, "imaginary part of the julia constant / phoenix factor")
	fs.StringVar(&c.Equation, "equation", "power", "power, manowar, phoenix or z4z3z2")
	fs.StringVar(&c.Type, "type", "mandelbrot", "mandelbrot or julia")
	fs.StringVar(&c.Algorithm, "alg", "escape-time", "escape-time or gaussian-integer")
	fs.StringVar(&c.Palette, "palette", DefaultStops, `comma separated hex stops, or "hue"`)
	fs.Float64Var(&c.Hue, "hue", 0, "starting hue in degrees of the hue palette")
	return c
}

func (c *Config) Window() (fractal.Window, error) {
	w := fractal.Window{W: c.Width, H: c.Height}
	if c.Bounds != "" {
		r, err := parseBounds(c.Bounds)
		if err != nil {
			return w, err
		}
		w.Region = r
	} else {
		r, ok := fractal.LookupRegion(c.Region)
		if !ok {
			return w, fmt.Errorf("%w: unknown region %q", fractal.ErrInvalidWindow, c.Region)
		}
		w.Region = r
	}
	return w, w.Validate()
}

func (c *Config) Params() (fractal.Params, error) {
	p := fractal.Params{
		Power:         c.Power,
		TrapFactor:    c.Trap,
		P:             c.P,
		Q:             c.Q,
		MaxIterations: c.MaxIter,
	}
	var err error
	if p.Equation, err = fractal.ParseEquation(c.Equation); err != nil {
		return p, err
	}
	if p.Type, err = fractal.ParseFractalType(c.Type); err != nil {
		return p, err
	}
	if p.Algorithm, err = fractal.ParseAlgorithm(c.Algorithm); err != nil {
		return p, err
	}
	return p, p.Validate()
}

// Mapper builds the colour mapper for the configured palette.
func (c *Config) Mapper() (*fractal.ColorMapper, error) {
	return NewMapper(c.Palette, c.Hue)
}

// NewMapper builds a PaletteBuckets sized mapper from a palette flag value.
func NewMapper(palette string, hue float64) (*fractal.ColorMapper, error) {
	if strings.EqualFold(palette, "hue") {
		return fractal.NewColorMapper(fractal.NewHuePalette(fractal.PaletteBuckets, hue)), nil
	}
	stops, err := fractal.ParseStops(palette)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	return fractal.NewColorMapper(fractal.NewGradientPalette(fractal.PaletteBuckets, stops...)), nil
}

func parseBounds(s string) (fractal.Region, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return fractal.Region{}, fmt.Errorf("%w: bounds %q: want xmin,xmax,ymin,ymax", fractal.ErrInvalidWindow, s)
	}
	var v [4]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fractal.Region{}, fmt.Errorf("%w: bounds %q: %v", fractal.ErrInvalidWindow, s, err)
		}
		v[i] = f
	}
	return fractal.Region{Xmin: v[0], Xmax: v[1], Ymin: v[2], Ymax: v[3]}, nil
}
