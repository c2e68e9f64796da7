package remote

import "context"

//go:generate irpc $GOFILE

// RowEvaluator is fractal.IterationKernel as served to the network.
type RowEvaluator interface {
	EvaluateRow(ctx context.Context, r Row) ([]int, error)
}

// Row is a fractal.RowRequest flattened into wire types.
type Row struct {
	Row      int
	State    int
	Existing []int

	Xmin, Xmax, Ymin, Ymax float64
	W, H                   int

	Power         int
	TrapFactor    int
	P, Q          float64
	MaxIterations int
	Equation      int
	Type          int
	Algorithm     int
}
