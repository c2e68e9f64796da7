package fractal

import "fmt"

// Unpainted marks a ResultGrid cell that holds no escape value.
// Any negative value means inside the set, non escaping or not yet computed.
const Unpainted = -1

// ResultGrid stores one raw kernel value per pixel, row major.
// It outlives the render so a cancelled render still leaves usable values.
type ResultGrid struct {
	w, h int
	vals []int
}

// NewResultGrid returns a w×h grid filled with Unpainted.
func NewResultGrid(w, h int) *ResultGrid {
	g := &ResultGrid{w: w, h: h, vals: make([]int, w*h)}
	g.Reset()
	return g
}

func (g *ResultGrid) Width() int  { return g.w }
func (g *ResultGrid) Height() int { return g.h }

// Row returns the backing slice of row y. Writes go straight to the grid.
func (g *ResultGrid) Row(y int) []int {
	return g.vals[y*g.w : (y+1)*g.w : (y+1)*g.w]
}

func (g *ResultGrid) At(col, row int) int {
	return g.vals[row*g.w+col]
}

func (g *ResultGrid) Set(col, row, v int) {
	g.vals[row*g.w+col] = v
}

// Reset marks every cell Unpainted.
func (g *ResultGrid) Reset() {
	for i := range g.vals {
		g.vals[i] = Unpainted
	}
}

// Clone returns a deep copy.
func (g *ResultGrid) Clone() *ResultGrid {
	c := &ResultGrid{w: g.w, h: g.h, vals: make([]int, len(g.vals))}
	copy(c.vals, g.vals)
	return c
}

// fits reports whether the grid was allocated for win.
func (g *ResultGrid) fits(win Window) error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrGridSize)
	}
	if g.w != win.W || g.h != win.H {
		return fmt.Errorf("%w: grid %dx%d, window %dx%d", ErrGridSize, g.w, g.h, win.W, win.H)
	}
	return nil
}
