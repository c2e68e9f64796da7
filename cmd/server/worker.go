package main

import (
	"context"
	"errors"
	"image"
	"log"
	"sync"

	fractal "github.com/marben/progressive_fractal"
)

var errBusy = errors.New("a render is already running")

// update is what viewers receive: a frame plus the render state it belongs to.
type update struct {
	Frame     fractal.Frame
	Cancelled bool
}

// renderSession owns one window's ResultGrid and runs renders of it one at a time.
// Frames are fanned out to any number of viewers.
type renderSession struct {
	win    fractal.Window
	params fractal.Params

	m       sync.Mutex
	sched   fractal.Scheduler
	grid    *fractal.ResultGrid
	job     *fractal.Job // nil when idle
	latest  update
	viewers map[chan update]struct{}
}

func newRenderSession(sched fractal.Scheduler, win fractal.Window, params fractal.Params) *renderSession {
	return &renderSession{
		win:     win,
		params:  params,
		sched:   sched,
		grid:    fractal.NewResultGrid(win.W, win.H),
		latest:  update{Frame: fractal.Frame{Image: image.NewRGBA(image.Rect(0, 0, win.W, win.H))}},
		viewers: make(map[chan update]struct{}),
	}
}

// start renders the window on a new job. The grid keeps values of earlier
// renders, so a restarted render shows the cancelled one's image from its
// first frame while every row is evaluated again.
func (rs *renderSession) start(ctx context.Context) error {
	rs.m.Lock()
	defer rs.m.Unlock()
	if rs.job != nil {
		return errBusy
	}
	rs.job = fractal.Start(ctx, rs.sched, rs.win, rs.params, rs.grid)
	go rs.follow(rs.job)
	return nil
}

func (rs *renderSession) follow(job *fractal.Job) {
	for f := range job.Frames() {
		rs.publish(update{Frame: f})
	}
	res, err := job.Wait()
	switch {
	case err != nil:
		log.Printf("render failed: %v", err)
	case res.Cancelled:
		log.Printf("render cancelled after %d rows", res.Rows)
	default:
		log.Printf("render finished in %s", res.Elapsed)
	}

	// the session is idle before viewers hear the render stopped
	rs.m.Lock()
	defer rs.m.Unlock()
	rs.job = nil
	if err == nil && res.Cancelled {
		rs.broadcast(update{Frame: fractal.Frame{Image: res.Frame, Progress: rs.latest.Frame.Progress}, Cancelled: true})
	}
}

// cancel stops the running render at its next checkpoint.
func (rs *renderSession) cancel() bool {
	rs.m.Lock()
	defer rs.m.Unlock()
	if rs.job == nil {
		return false
	}
	rs.job.Cancel()
	return true
}

// recolor repaints the stored values with a new mapper. New renders use it too.
func (rs *renderSession) recolor(mapper *fractal.ColorMapper) error {
	if err := mapper.Validate(rs.params); err != nil {
		return err
	}

	rs.m.Lock()
	if rs.job != nil {
		rs.m.Unlock()
		return errBusy
	}
	rs.sched.Mapper = mapper
	img := mapper.Recolor(rs.grid, rs.params.Algorithm)
	final := rs.latest.Frame.Final
	rs.m.Unlock()

	rs.publish(update{Frame: fractal.Frame{Image: img, Progress: rs.progress(), Final: final}})
	return nil
}

func (rs *renderSession) publish(u update) {
	rs.m.Lock()
	defer rs.m.Unlock()
	rs.broadcast(u)
}

// broadcast needs rs.m held.
func (rs *renderSession) broadcast(u update) {
	rs.latest = u
	for ch := range rs.viewers {
		offer(ch, u)
	}
}

// subscribe returns a channel that immediately holds the newest update.
func (rs *renderSession) subscribe() (<-chan update, func()) {
	ch := make(chan update, 1)
	rs.m.Lock()
	rs.viewers[ch] = struct{}{}
	offer(ch, rs.latest)
	rs.m.Unlock()

	return ch, func() {
		rs.m.Lock()
		delete(rs.viewers, ch)
		rs.m.Unlock()
	}
}

func (rs *renderSession) snapshot() update {
	rs.m.Lock()
	defer rs.m.Unlock()
	return rs.latest
}

func (rs *renderSession) progress() float64 {
	rs.m.Lock()
	defer rs.m.Unlock()
	return rs.latest.Frame.Progress
}

// offer replaces an update the viewer has not picked up yet.
// Callers hold rs.m, so there is a single sender per channel.
func offer(ch chan update, u update) {
	for {
		select {
		case ch <- u:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
