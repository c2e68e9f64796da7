package fractal

import (
	"context"
)

// Job is a render running on its own goroutine.
type Job struct {
	frames chan Frame
	done   chan struct{}
	cancel context.CancelFunc

	res Result
	err error
}

// Start runs s.Render in the background. The render stops at the next
// checkpoint once ctx is done or Cancel is called. s.Sink, if set, still
// receives every frame, on the render goroutine.
func Start(ctx context.Context, s Scheduler, win Window, p Params, grid *ResultGrid) *Job {
	ctx, cancel := context.WithCancel(ctx)
	j := &Job{
		frames: make(chan Frame, 1),
		done:   make(chan struct{}),
		cancel: cancel,
	}

	s.Gate = AnyGate(s.Gate, ContextGate(ctx))
	s.Sink = jobSink{job: j, next: s.Sink}

	go func() {
		defer close(j.done)
		defer close(j.frames)
		defer cancel()
		j.res, j.err = s.Render(win, p, grid)
	}()
	return j
}

// Frames delivers snapshots in increasing progress order. A consumer that
// falls behind skips to the newest frame. The final frame of a completed
// render is always delivered last; the channel is closed when the render ends.
func (j *Job) Frames() <-chan Frame {
	return j.frames
}

// Done is closed when the render has returned.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

func (j *Job) Cancel() {
	j.cancel()
}

// Wait blocks until the render returns.
func (j *Job) Wait() (Result, error) {
	<-j.done
	return j.res, j.err
}

// push never blocks: a frame the consumer has not taken yet is replaced.
// Only the render goroutine sends, so the loop ends after at most one drop.
func (j *Job) push(f Frame) {
	for {
		select {
		case j.frames <- f:
			return
		default:
		}
		select {
		case <-j.frames:
		default:
		}
	}
}

type jobSink struct {
	job  *Job
	next FrameSink
}

func (s jobSink) Progress(f Frame) {
	if s.next != nil {
		s.next.Progress(f)
	}
	s.job.push(f)
}

func (s jobSink) Complete(f Frame, grid *ResultGrid) {
	if s.next != nil {
		s.next.Complete(f, grid)
	}
	s.job.push(f)
}
