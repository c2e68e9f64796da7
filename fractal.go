package fractal

import (
	"fmt"
	"sort"
	"strings"
)

// Region of the complex plane
type Region struct {
	Xmin, Xmax float64 // real axis
	Ymin, Ymax float64 // imaginary axis
}

// Landmarks of the Mandelbrot set, usable as presets.
var (
	FullSet              = Region{Xmin: -2.5, Xmax: 1.0, Ymin: -1.25, Ymax: 1.25}
	SeahorseValley       = Region{Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15}
	ElephantValley       = Region{Xmin: -1.85, Xmax: -1.75, Ymin: -0.10, Ymax: -0.02}
	SpiralMinibrot       = Region{Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325}
	TripleSpiral         = Region{Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980}
	ValleyOfTheDragon    = Region{Xmin: -0.7400, Xmax: -0.7350, Ymin: 0.1800, Ymax: 0.1850}
	MinibrotInMiniSpiral = Region{Xmin: -1.7390, Xmax: -1.7375, Ymin: -0.0235, Ymax: -0.0220}
)

var regionsByName = map[string]Region{
	"full":          FullSet,
	"seahorse":      SeahorseValley,
	"elephant":      ElephantValley,
	"spiral":        SpiralMinibrot,
	"triple-spiral": TripleSpiral,
	"dragon":        ValleyOfTheDragon,
	"mini-spiral":   MinibrotInMiniSpiral,
}

// LookupRegion returns the landmark registered under name.
func LookupRegion(name string) (Region, bool) {
	r, ok := regionsByName[strings.ToLower(name)]
	return r, ok
}

// RegionNames lists the landmark names accepted by LookupRegion.
func RegionNames() []string {
	names := make([]string, 0, len(regionsByName))
	for n := range regionsByName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Window is a region sampled at a pixel resolution.
// It must not change while a render is running.
type Window struct {
	Region
	W, H int
}

func (w Window) Validate() error {
	if w.W <= 0 || w.H <= 0 {
		return fmt.Errorf("%w: resolution %dx%d", ErrInvalidWindow, w.W, w.H)
	}
	if !(w.Xmax > w.Xmin) || !(w.Ymax > w.Ymin) {
		return fmt.Errorf("%w: bounds re[%g, %g] im[%g, %g]", ErrInvalidWindow, w.Xmin, w.Xmax, w.Ymin, w.Ymax)
	}
	return nil
}

// PixelToComplex maps a pixel to the complex plane. Row 0 is the top edge (Ymax).
func (w Window) PixelToComplex(col, row int) complex128 {
	re := w.Xmin + float64(col)*(w.Xmax-w.Xmin)/float64(w.W)
	im := w.Ymax - float64(row)*(w.Ymax-w.Ymin)/float64(w.H)
	return complex(re, im)
}

// Algorithm selects how raw values are produced and coloured.
type Algorithm int

const (
	AlgorithmEscapeTime Algorithm = iota
	AlgorithmGaussianInteger
)

// Equation is the iterated complex function.
type Equation int

const (
	EquationPower   Equation = iota // z^n + c
	EquationManowar                 // z^2 + z_prev + c
	EquationPhoenix                 // z^2 + c + Q*z_prev
	EquationZ4Z3Z2                  // z^4 + z^3 + z^2 + c
)

// FractalType decides what the pixel coordinate seeds.
type FractalType int

const (
	TypeMandelbrot FractalType = iota
	TypeJulia
)

var (
	algorithmNames = map[Algorithm]string{
		AlgorithmEscapeTime:      "escape-time",
		AlgorithmGaussianInteger: "gaussian-integer",
	}
	equationNames = map[Equation]string{
		EquationPower:   "power",
		EquationManowar: "manowar",
		EquationPhoenix: "phoenix",
		EquationZ4Z3Z2:  "z4z3z2",
	}
	typeNames = map[FractalType]string{
		TypeMandelbrot: "mandelbrot",
		TypeJulia:      "julia",
	}
)

func (a Algorithm) String() string   { return enumName(algorithmNames, a) }
func (e Equation) String() string    { return enumName(equationNames, e) }
func (t FractalType) String() string { return enumName(typeNames, t) }

func ParseAlgorithm(s string) (Algorithm, error)     { return parseEnum(algorithmNames, s) }
func ParseEquation(s string) (Equation, error)       { return parseEnum(equationNames, s) }
func ParseFractalType(s string) (FractalType, error) { return parseEnum(typeNames, s) }

func enumName[T ~int](names map[T]string, v T) string {
	if n, ok := names[v]; ok {
		return n
	}
	return fmt.Sprintf("unknown(%d)", int(v))
}

func parseEnum[T ~int](names map[T]string, s string) (T, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for v, n := range names {
		if n == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown name %q", ErrInvalidParams, s)
}

// Params are the evaluation parameters of one render. Read only to the scheduler.
type Params struct {
	Power         int
	TrapFactor    int
	P, Q          float64
	MaxIterations int
	Equation      Equation
	Type          FractalType
	Algorithm     Algorithm
}

func (p Params) Validate() error {
	if p.MaxIterations <= 0 {
		return fmt.Errorf("%w: max iterations %d", ErrInvalidParams, p.MaxIterations)
	}
	if _, ok := algorithmNames[p.Algorithm]; !ok {
		return fmt.Errorf("%w: algorithm %d", ErrInvalidParams, int(p.Algorithm))
	}
	if _, ok := equationNames[p.Equation]; !ok {
		return fmt.Errorf("%w: equation %d", ErrInvalidParams, int(p.Equation))
	}
	if p.Equation == EquationPower && p.Power < 2 {
		return fmt.Errorf("%w: power %d, want >= 2", ErrInvalidParams, p.Power)
	}
	if _, ok := typeNames[p.Type]; !ok {
		return fmt.Errorf("%w: fractal type %d", ErrInvalidParams, int(p.Type))
	}
	if p.Algorithm == AlgorithmGaussianInteger && p.TrapFactor <= 0 {
		return fmt.Errorf("%w: trap factor %d, want > 0", ErrInvalidParams, p.TrapFactor)
	}
	return nil
}
