package fractal

import "testing"

func TestResultGrid(t *testing.T) {
	g := NewResultGrid(3, 2)
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", g.Width(), g.Height())
	}
	for y := range 2 {
		for x := range 3 {
			if v := g.At(x, y); v != Unpainted {
				t.Fatalf("At(%d,%d) = %d, want Unpainted", x, y, v)
			}
		}
	}

	g.Row(1)[2] = 42
	if v := g.At(2, 1); v != 42 {
		t.Errorf("Row does not alias the grid: At(2,1) = %d", v)
	}
	if len(g.Row(0)) != 3 || cap(g.Row(0)) != 3 {
		t.Errorf("Row(0) len/cap = %d/%d, want 3/3", len(g.Row(0)), cap(g.Row(0)))
	}

	c := g.Clone()
	g.Set(0, 0, 7)
	if c.At(0, 0) != Unpainted || c.At(2, 1) != 42 {
		t.Error("Clone shares storage with the original")
	}

	g.Reset()
	if g.At(0, 0) != Unpainted || g.At(2, 1) != Unpainted {
		t.Error("Reset left values behind")
	}
}
