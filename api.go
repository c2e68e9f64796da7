package fractal

import (
	"context"
	"image"
)

// IterationKernel computes raw iteration values for one scan row.
//
// The returned slice has one entry per column of the window. Only the
// columns selected by req.State are read back; the kernel may copy
// req.Existing for the others.
type IterationKernel interface {
	EvaluateRow(req RowRequest) ([]int, error)
}

// KernelFunc adapts a function to IterationKernel.
type KernelFunc func(req RowRequest) ([]int, error)

func (f KernelFunc) EvaluateRow(req RowRequest) ([]int, error) { return f(req) }

// RowRequest carries everything a kernel needs to evaluate a single row.
type RowRequest struct {
	Row      int
	State    int
	Existing []int // current ResultGrid values of the row, read only
	Window   Window
	Params   Params
}

// FrameSink receives progress snapshots of a running render.
// Frames handed to a sink are never mutated by the scheduler afterwards.
type FrameSink interface {
	Progress(f Frame)
	Complete(f Frame, grid *ResultGrid)
}

// Frame is an immutable snapshot of the framebuffer.
type Frame struct {
	Image    *image.RGBA
	Progress float64
	Final    bool
}

// CancellationGate is polled by the scheduler at checkpoint rows.
type CancellationGate interface {
	Cancelled() bool
}

// GateFunc adapts a plain function to CancellationGate.
type GateFunc func() bool

func (f GateFunc) Cancelled() bool { return f() }

// ContextGate reports cancellation once ctx is done.
func ContextGate(ctx context.Context) CancellationGate {
	return GateFunc(func() bool { return ctx.Err() != nil })
}

// AnyGate is cancelled as soon as one of its gates is. Nil gates are skipped.
func AnyGate(gates ...CancellationGate) CancellationGate {
	return GateFunc(func() bool {
		for _, g := range gates {
			if g != nil && g.Cancelled() {
				return true
			}
		}
		return false
	})
}

// SinkFuncs adapts callbacks to FrameSink. Nil callbacks are ignored.
type SinkFuncs struct {
	OnProgress func(f Frame)
	OnComplete func(f Frame, grid *ResultGrid)
}

func (s SinkFuncs) Progress(f Frame) {
	if s.OnProgress != nil {
		s.OnProgress(f)
	}
}

func (s SinkFuncs) Complete(f Frame, grid *ResultGrid) {
	if s.OnComplete != nil {
		s.OnComplete(f, grid)
	}
}

var _ FrameSink = SinkFuncs{}
