package fractal

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/gg"
)

func TestColorMapperIndex(t *testing.T) {
	m := NewColorMapper(NewRampPalette(PaletteBuckets))
	tests := []struct {
		v    int
		alg  Algorithm
		want int
	}{
		{0, AlgorithmEscapeTime, 0},
		{9, AlgorithmEscapeTime, 0},
		{10, AlgorithmEscapeTime, 1},
		{10199, AlgorithmEscapeTime, 1019},
		{10200, AlgorithmEscapeTime, 0},
		{25437, AlgorithmEscapeTime, 503},
		{10199, AlgorithmGaussianInteger, 1019},
		{25437, AlgorithmGaussianInteger, 2543},
		{-1, AlgorithmEscapeTime, -1},
		{-1, AlgorithmGaussianInteger, -1},
	}
	for _, tt := range tests {
		if got := m.Index(tt.v, tt.alg); got != tt.want {
			t.Errorf("Index(%d, %s) = %d, want %d", tt.v, tt.alg, got, tt.want)
		}
	}
}

func TestColorMapperColor(t *testing.T) {
	p := NewRampPalette(PaletteBuckets)
	m := NewColorMapper(p)
	if got := m.Color(-3, AlgorithmEscapeTime); got != (color.RGBA{A: 0xff}) {
		t.Errorf("Color(-3) = %v, want black", got)
	}
	if got := m.Color(10200+57, AlgorithmEscapeTime); got != p[5] {
		t.Errorf("Color(10257, escape) = %v, want %v", got, p[5])
	}
	if got := m.Color(57, AlgorithmGaussianInteger); got != p[5] {
		t.Errorf("Color(57, trap) = %v, want %v", got, p[5])
	}
}

func TestColorMapperValidate(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		params  Params
		wantErr bool
	}{
		{"escape covered by iterations", 51, Params{MaxIterations: 50}, false},
		{"escape short", 50, Params{MaxIterations: 50}, true},
		{"escape capped at modulus", PaletteBuckets, Params{MaxIterations: 100000}, false},
		{"trap needs every bucket", 500, Params{MaxIterations: 50, Algorithm: AlgorithmGaussianInteger}, true},
		{"trap full palette", PaletteBuckets, Params{MaxIterations: 50, Algorithm: AlgorithmGaussianInteger}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewColorMapper(NewRampPalette(tt.size)).Validate(tt.params)
			if gotErr := err != nil; gotErr != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrPaletteTooSmall) {
				t.Errorf("err = %v, want ErrPaletteTooSmall", err)
			}
		})
	}
}

func TestRecolorMatchesRender(t *testing.T) {
	m := NewColorMapper(NewHuePalette(PaletteBuckets, 30))
	s := Scheduler{Kernel: newStubKernel(), Mapper: m}
	grid := NewResultGrid(12, 7)
	res, err := s.Render(testWindow(12, 7), testParams(), grid)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	img := m.Recolor(grid, AlgorithmEscapeTime)
	if string(img.Pix) != string(res.Frame.Pix) {
		t.Error("Recolor differs from the rendered frame")
	}

	other := NewColorMapper(NewGradientPalette(PaletteBuckets, gg.Red, gg.Blue))
	img = other.Recolor(grid, AlgorithmEscapeTime)
	if got, want := img.RGBAAt(3, 2), other.Color(grid.At(3, 2), AlgorithmEscapeTime); got != want {
		t.Errorf("recoloured pixel = %v, want %v", got, want)
	}
}

func TestNewGradientPalette(t *testing.T) {
	p := NewGradientPalette(5, gg.Black, gg.White)
	if len(p) != 5 {
		t.Fatalf("len = %d, want 5", len(p))
	}
	if p[0] != (color.RGBA{A: 0xff}) {
		t.Errorf("p[0] = %v, want black", p[0])
	}
	if p[4] != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("p[4] = %v, want white", p[4])
	}
	for i := 1; i < len(p); i++ {
		if p[i].R < p[i-1].R {
			t.Errorf("ramp not increasing at %d: %v < %v", i, p[i], p[i-1])
		}
	}

	three := NewGradientPalette(3, gg.Red, gg.Green, gg.Blue)
	want := Palette{
		{R: 0xff, A: 0xff},
		{G: 0xff, A: 0xff},
		{B: 0xff, A: 0xff},
	}
	for i := range want {
		if three[i] != want[i] {
			t.Errorf("three[%d] = %v, want %v", i, three[i], want[i])
		}
	}

	if got := NewGradientPalette(4); got[0] != (color.RGBA{A: 0xff}) {
		t.Errorf("default palette starts at %v, want black", got[0])
	}
}

func TestNewHuePalette(t *testing.T) {
	p := NewHuePalette(6, 0)
	want := Palette{
		{R: 0xff, A: 0xff},
		{R: 0xff, G: 0xff, A: 0xff},
		{G: 0xff, A: 0xff},
		{G: 0xff, B: 0xff, A: 0xff},
		{B: 0xff, A: 0xff},
		{R: 0xff, B: 0xff, A: 0xff},
	}
	for i := range want {
		if p[i] != want[i] {
			t.Errorf("p[%d] = %v, want %v", i, p[i], want[i])
		}
	}
}

func TestParseStops(t *testing.T) {
	stops, err := ParseStops("#000764, 206bcb,#fff")
	if err != nil {
		t.Fatalf("ParseStops: %v", err)
	}
	if len(stops) != 3 {
		t.Fatalf("got %d stops, want 3", len(stops))
	}
	if got := toRGBA(stops[2]); got != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("stop 2 = %v, want white", got)
	}

	for _, bad := range []string{"#12345", "zzzzzz", "#00000g"} {
		if _, err := ParseStops(bad); err == nil {
			t.Errorf("ParseStops(%q) succeeded", bad)
		}
	}
}
