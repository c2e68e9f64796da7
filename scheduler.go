package fractal

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"iter"
	"time"
)

const (
	// Passes is the number of refinement passes of a render.
	Passes = 2
	// CheckpointRows visited rows separate two cancellation checks / progress frames.
	CheckpointRows = 15
)

// RowStride is the distance between rows visited in pass. It is also the
// block size pixels of that pass are painted with.
func RowStride(pass int) int {
	return Passes - pass
}

// StateFor returns the column state code of row in pass:
// 2 even columns of an even row in the coarse pass,
// 1 odd columns of an even row in the refining pass,
// 0 every column of an odd row.
func StateFor(row, pass int) int {
	if row%2 != 0 {
		return 0
	}
	if pass == 0 {
		return 2
	}
	return 1
}

// Columns yields the columns of a width wide row that state selects.
func Columns(state, width int) iter.Seq[int] {
	step := 1
	if state > 0 {
		step = 2
	}
	return func(yield func(int) bool) {
		for col := state % 2; col < width; col += step {
			if !yield(col) {
				return
			}
		}
	}
}

// Progress is the fraction reported after rows visited rows of an image
// height rows tall. Only two thirds of the range belong to the scan.
func Progress(rows, height int) float64 {
	return min(1, 2*float64(rows)/(3*float64(height)))
}

// Scheduler renders a window in Passes interlaced passes.
// Sink and Gate are optional.
type Scheduler struct {
	Kernel IterationKernel
	Mapper *ColorMapper
	Sink   FrameSink
	Gate   CancellationGate
}

// Result of Render. Frame and Grid belong to the caller once Render returns.
type Result struct {
	Grid      *ResultGrid
	Frame     *image.RGBA
	Rows      int // rows evaluated, over both passes
	Cancelled bool
	Elapsed   time.Duration
}

// Render evaluates every pixel of win exactly once, writing raw values into
// grid and colours into a fresh framebuffer. grid may hold values of a
// previous render; the kernel sees them in RowRequest.Existing and the
// framebuffer starts out painted with them.
//
// Cancellation is checked every CheckpointRows rows. A cancelled render
// returns with Cancelled set and grid holding every row evaluated so far.
// A kernel error aborts the render and is returned as is, wrapped.
func (s *Scheduler) Render(win Window, p Params, grid *ResultGrid) (Result, error) {
	if err := s.validate(win, p, grid); err != nil {
		return Result{}, err
	}

	log := Logger().With("w", win.W, "h", win.H, "algorithm", p.Algorithm)
	start := time.Now()
	fb := image.NewRGBA(image.Rect(0, 0, win.W, win.H))
	s.seed(fb, grid, p.Algorithm)
	res := Result{Grid: grid, Frame: fb}

	visited := 0
	for pass := range Passes {
		stride := RowStride(pass)
		log.Debug("pass started", "pass", pass, "stride", stride)

		for row := 0; row < win.H; row += stride {
			visited++
			if visited%CheckpointRows == 0 {
				if s.Gate != nil && s.Gate.Cancelled() {
					res.Cancelled = true
					res.Elapsed = time.Since(start)
					log.Info("render cancelled", "rows", res.Rows, "pass", pass, "elapsed", res.Elapsed)
					return res, nil
				}
				if s.Sink != nil {
					s.Sink.Progress(Frame{Image: cloneRGBA(fb), Progress: Progress(visited, win.H)})
				}
			}

			if err := s.renderRow(fb, win, p, grid, row, pass); err != nil {
				res.Elapsed = time.Since(start)
				return res, err
			}
			res.Rows++
		}
	}

	res.Elapsed = time.Since(start)
	log.Info("render finished", "rows", res.Rows, "elapsed", res.Elapsed)
	if s.Sink != nil {
		s.Sink.Complete(Frame{Image: cloneRGBA(fb), Progress: Progress(visited, win.H), Final: true}, grid)
	}
	return res, nil
}

// seed paints the cells grid already holds, so a re-render starts from
// the image of the previous one. Rows are still evaluated again.
func (s *Scheduler) seed(fb *image.RGBA, grid *ResultGrid, alg Algorithm) {
	for y := range grid.Height() {
		for x, v := range grid.Row(y) {
			if v != Unpainted {
				fb.SetRGBA(x, y, s.Mapper.Color(v, alg))
			}
		}
	}
}

func (s *Scheduler) renderRow(fb *image.RGBA, win Window, p Params, grid *ResultGrid, row, pass int) error {
	state := StateFor(row, pass)
	existing := grid.Row(row)
	vals, err := s.Kernel.EvaluateRow(RowRequest{
		Row:      row,
		State:    state,
		Existing: existing,
		Window:   win,
		Params:   p,
	})
	if err != nil {
		return fmt.Errorf("row %d: %w", row, err)
	}
	if len(vals) < win.W {
		return fmt.Errorf("row %d: %w: %d values, want %d", row, ErrRowLength, len(vals), win.W)
	}

	stroke := RowStride(pass)
	for col := range Columns(state, win.W) {
		v := vals[col]
		existing[col] = v
		paint(fb, col, row, stroke, s.Mapper.Color(v, p.Algorithm))
	}
	return nil
}

func (s *Scheduler) validate(win Window, p Params, grid *ResultGrid) error {
	if s.Kernel == nil || s.Mapper == nil {
		return errors.New("scheduler needs a kernel and a colour mapper")
	}
	if err := win.Validate(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if err := grid.fits(win); err != nil {
		return err
	}
	return s.Mapper.Validate(p)
}

// paint fills a size×size block centred on the top-left corner of pixel
// (x, y), clipped to fb. Even sizes reach up and left of the pixel.
func paint(fb *image.RGBA, x, y, size int, c color.RGBA) {
	x0, y0 := x-size/2, y-size/2
	r := image.Rect(x0, y0, x0+size, y0+size).Intersect(fb.Rect)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			fb.SetRGBA(px, py, c)
		}
	}
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := &image.RGBA{
		Pix:    make([]uint8, len(src.Pix)),
		Stride: src.Stride,
		Rect:   src.Rect,
	}
	copy(dst.Pix, src.Pix)
	return dst
}
