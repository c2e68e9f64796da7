// Package render is the numeric side of the engine: it iterates complex
// equations for the rows the scheduler asks for.
package render

import (
	"fmt"
	"math"
	"math/cmplx"

	fractal "github.com/marben/progressive_fractal"
)

// Kernel implements fractal.IterationKernel on the CPU.
type Kernel struct {
	// OnRow is called before each row is evaluated, if set.
	OnRow func(row, state int)
}

var _ fractal.IterationKernel = Kernel{}

func (k Kernel) EvaluateRow(req fractal.RowRequest) ([]int, error) {
	if k.OnRow != nil {
		k.OnRow(req.Row, req.State)
	}
	o, err := newOrbit(req.Params)
	if err != nil {
		return nil, err
	}

	win, p := req.Window, req.Params
	out := make([]int, win.W)
	copy(out, req.Existing)

	// per row setup
	im := imag(win.PixelToComplex(0, req.Row))
	dx := (win.Xmax - win.Xmin) / float64(win.W)
	julia := complex(p.P, p.Q)
	trap := float64(p.TrapFactor)

	for col := range fractal.Columns(req.State, win.W) {
		pt := complex(win.Xmin+float64(col)*dx, im)
		z, c := complex128(0), pt
		if p.Type == fractal.TypeJulia {
			z, c = pt, julia
		}

		if p.Algorithm == fractal.AlgorithmGaussianInteger {
			out[col] = o.gaussianTrap(z, c, trap)
		} else {
			out[col] = o.escape(z, c)
		}
	}
	return out, nil
}

type orbit struct {
	step   func(z, prev, c complex128) complex128
	degree float64
	max    int
}

func newOrbit(p fractal.Params) (orbit, error) {
	o := orbit{max: p.MaxIterations, degree: 2}
	switch p.Equation {
	case fractal.EquationPower:
		n := p.Power
		o.degree = float64(n)
		o.step = func(z, _, c complex128) complex128 { return ipow(z, n) + c }
	case fractal.EquationManowar:
		o.step = func(z, prev, c complex128) complex128 { return z*z + prev + c }
	case fractal.EquationPhoenix:
		q := complex(p.Q, 0)
		o.step = func(z, prev, c complex128) complex128 { return z*z + c + q*prev }
	case fractal.EquationZ4Z3Z2:
		o.degree = 4
		o.step = func(z, _, c complex128) complex128 {
			z2 := z * z
			return z2*z2 + z2*z + z2 + c
		}
	default:
		return o, fmt.Errorf("%w: equation %s", fractal.ErrInvalidParams, p.Equation)
	}
	return o, nil
}

// escape returns the smooth escape count in fixed point (×BucketSize),
// or fractal.Unpainted when the orbit stays bounded.
func (o orbit) escape(z, c complex128) int {
	prev := complex128(0)
	for i := range o.max {
		z, prev = o.step(z, prev, c), z
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			// Smooth iteration count
			mu := float64(i) + 1 - math.Log(math.Log(cmplx.Abs(z)))/math.Log(o.degree)
			return max(0, int(mu*fractal.BucketSize))
		}
	}
	// Inside the set
	return fractal.Unpainted
}

// maxLatticeDist is the largest distance from a point to its nearest Gaussian integer.
var maxLatticeDist = math.Sqrt2 / 2

// gaussianTrap returns the closest approach of the orbit to the Gaussian
// integer lattice scaled by 1/factor, normalised into [0, EscapeModulus).
func (o orbit) gaussianTrap(z, c complex128, factor float64) int {
	prev := complex128(0)
	minTrap := math.MaxFloat64
	for range o.max {
		z, prev = o.step(z, prev, c), z

		w := z * complex(factor, 0)
		d := cmplx.Abs(w - complex(math.Round(real(w)), math.Round(imag(w))))
		if d < minTrap {
			minTrap = d
		}

		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			break
		}
	}
	t := min(1, minTrap/maxLatticeDist)
	return int(t * (fractal.EscapeModulus - fractal.BucketSize))
}

func ipow(z complex128, n int) complex128 {
	r := z
	for i := 1; i < n; i++ {
		r *= z
	}
	return r
}
