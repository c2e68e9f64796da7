// Package remote moves row evaluation to other processes over irpc.
//
// A worker serves its kernel with NewService; the render side wraps the
// generated client in a Kernel, or spreads rows over many workers with a Pool.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/marben/irpc"
	fractal "github.com/marben/progressive_fractal"
)

// ErrNoWorkers is returned by a Pool without workers or fallback.
var ErrNoWorkers = errors.New("remote: no workers connected")

// NewService exposes k as an irpc service.
func NewService(k fractal.IterationKernel) *RowEvaluatorIrpcService {
	return NewRowEvaluatorIrpcService(kernelEvaluator{k})
}

type kernelEvaluator struct {
	k fractal.IterationKernel
}

func (e kernelEvaluator) EvaluateRow(ctx context.Context, r Row) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return e.k.EvaluateRow(r.request())
}

// NewRow flattens req for the wire.
func NewRow(req fractal.RowRequest) Row {
	w, p := req.Window, req.Params
	return Row{
		Row:           req.Row,
		State:         req.State,
		Existing:      req.Existing,
		Xmin:          w.Xmin,
		Xmax:          w.Xmax,
		Ymin:          w.Ymin,
		Ymax:          w.Ymax,
		W:             w.W,
		H:             w.H,
		Power:         p.Power,
		TrapFactor:    p.TrapFactor,
		P:             p.P,
		Q:             p.Q,
		MaxIterations: p.MaxIterations,
		Equation:      int(p.Equation),
		Type:          int(p.Type),
		Algorithm:     int(p.Algorithm),
	}
}

func (r Row) request() fractal.RowRequest {
	return fractal.RowRequest{
		Row:      r.Row,
		State:    r.State,
		Existing: r.Existing,
		Window: fractal.Window{
			Region: fractal.Region{Xmin: r.Xmin, Xmax: r.Xmax, Ymin: r.Ymin, Ymax: r.Ymax},
			W:      r.W,
			H:      r.H,
		},
		Params: fractal.Params{
			Power:         r.Power,
			TrapFactor:    r.TrapFactor,
			P:             r.P,
			Q:             r.Q,
			MaxIterations: r.MaxIterations,
			Equation:      fractal.Equation(r.Equation),
			Type:          fractal.FractalType(r.Type),
			Algorithm:     fractal.Algorithm(r.Algorithm),
		},
	}
}

// Kernel evaluates rows on a remote RowEvaluator.
type Kernel struct {
	Evaluator RowEvaluator
}

var _ fractal.IterationKernel = Kernel{}

func (k Kernel) EvaluateRow(req fractal.RowRequest) ([]int, error) {
	vals, err := k.Evaluator.EvaluateRow(context.Background(), NewRow(req))
	if err != nil {
		return nil, fmt.Errorf("remote: %w", err)
	}
	return vals, nil
}

// Pool hands rows to connected workers in turn. A worker whose connection
// is gone is dropped and the row goes to the next one. With no worker left
// the row is evaluated by Fallback, if set.
type Pool struct {
	Fallback fractal.IterationKernel

	m       sync.Mutex
	workers []RowEvaluator
	next    int
}

var _ fractal.IterationKernel = (*Pool)(nil)

// Add registers a worker. The returned func removes it again.
func (p *Pool) Add(ev RowEvaluator) (remove func()) {
	p.m.Lock()
	defer p.m.Unlock()
	p.workers = append(p.workers, ev)
	return func() { p.remove(ev) }
}

// Len is the number of workers.
func (p *Pool) Len() int {
	p.m.Lock()
	defer p.m.Unlock()
	return len(p.workers)
}

func (p *Pool) remove(ev RowEvaluator) {
	p.m.Lock()
	defer p.m.Unlock()
	for i, w := range p.workers {
		if w == ev {
			p.workers = append(p.workers[:i], p.workers[i+1:]...)
			return
		}
	}
}

func (p *Pool) pick() (RowEvaluator, bool) {
	p.m.Lock()
	defer p.m.Unlock()
	if len(p.workers) == 0 {
		return nil, false
	}
	p.next %= len(p.workers)
	ev := p.workers[p.next]
	p.next++
	return ev, true
}

func (p *Pool) EvaluateRow(req fractal.RowRequest) ([]int, error) {
	for {
		ev, ok := p.pick()
		if !ok {
			if p.Fallback == nil {
				return nil, ErrNoWorkers
			}
			return p.Fallback.EvaluateRow(req)
		}

		vals, err := ev.EvaluateRow(context.Background(), NewRow(req))
		if err == nil {
			return vals, nil
		}
		if !disconnected(err) {
			return nil, fmt.Errorf("remote: %w", err)
		}
		fractal.Logger().Info("worker dropped", "err", err)
		p.remove(ev)
	}
}

func disconnected(err error) bool {
	return errors.Is(err, irpc.ErrEndpointClosed) ||
		errors.Is(err, irpc.ErrEndpointClosedByCounterpart) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, net.ErrClosed)
}
