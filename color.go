package fractal

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/gogpu/gg"
)

const (
	// EscapeModulus bounds escape-time values so high iteration counts cycle through the palette.
	EscapeModulus = 10200
	// BucketSize raw values share one palette entry.
	BucketSize = 10
	// PaletteBuckets is the number of indices an escape-time value can map to.
	PaletteBuckets = EscapeModulus / BucketSize
)

// Palette is indexed by bucketed raw values.
type Palette []color.RGBA

// ColorMapper turns raw kernel values into colours.
type ColorMapper struct {
	Palette Palette
	Inside  color.RGBA // colour of negative values
}

func NewColorMapper(p Palette) *ColorMapper {
	return &ColorMapper{Palette: p, Inside: color.RGBA{A: 0xff}}
}

// Index returns the palette index of v, or -1 for negative values.
func (m *ColorMapper) Index(v int, alg Algorithm) int {
	if v < 0 {
		return -1
	}
	if alg == AlgorithmEscapeTime {
		return (v % EscapeModulus) / BucketSize
	}
	return v / BucketSize
}

// Color maps v through the palette. Indices beyond the palette are a
// configuration error caught by Validate.
func (m *ColorMapper) Color(v int, alg Algorithm) color.RGBA {
	i := m.Index(v, alg)
	if i < 0 {
		return m.Inside
	}
	return m.Palette[i]
}

// RequiredPaletteSize is the palette length that covers every index the
// kernel can produce for p. Kernel values are fixed point: iterations×BucketSize.
func RequiredPaletteSize(p Params) int {
	if p.Algorithm == AlgorithmEscapeTime {
		return min(PaletteBuckets, p.MaxIterations+1)
	}
	return PaletteBuckets
}

func (m *ColorMapper) Validate(p Params) error {
	if need := RequiredPaletteSize(p); len(m.Palette) < need {
		return fmt.Errorf("%w: have %d colours, %s with %d iterations needs %d",
			ErrPaletteTooSmall, len(m.Palette), p.Algorithm, p.MaxIterations, need)
	}
	return nil
}

// Recolor paints a new framebuffer from stored values without running the kernel.
func (m *ColorMapper) Recolor(grid *ResultGrid, alg Algorithm) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, grid.Width(), grid.Height()))
	for y := range grid.Height() {
		for x, v := range grid.Row(y) {
			img.SetRGBA(x, y, m.Color(v, alg))
		}
	}
	return img
}

// NewGradientPalette spreads n colours evenly over the stops.
// Without stops it ramps black to white.
func NewGradientPalette(n int, stops ...gg.RGBA) Palette {
	switch len(stops) {
	case 0:
		stops = []gg.RGBA{gg.Black, gg.White}
	case 1:
		stops = append(stops, stops[0])
	}
	p := make(Palette, n)
	segs := float64(len(stops) - 1)
	for i := range p {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1) * segs
		}
		s := min(int(t), len(stops)-2)
		p[i] = toRGBA(stops[s].Lerp(stops[s+1], t-float64(s)))
	}
	return p
}

// NewHuePalette walks the hue wheel once, starting at offset degrees.
func NewHuePalette(n int, offset float64) Palette {
	p := make(Palette, n)
	for i := range p {
		p[i] = toRGBA(gg.HSL(offset+360*float64(i)/float64(n), 1, 0.5))
	}
	return p
}

// NewRampPalette gives every index a distinct colour. Useful for checking placement.
func NewRampPalette(n int) Palette {
	p := make(Palette, n)
	for i := range p {
		p[i] = color.RGBA{R: uint8(i), G: uint8(i >> 8), B: 0x80, A: 0xff}
	}
	return p
}

// ParseStops parses comma separated hex colours like "#000764,#206bcb,#ffffff".
func ParseStops(s string) ([]gg.RGBA, error) {
	var stops []gg.RGBA
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimPrefix(strings.TrimSpace(f), "#")
		if f == "" {
			continue
		}
		switch len(f) {
		case 3, 4, 6, 8:
		default:
			return nil, fmt.Errorf("colour %q: want 3, 4, 6 or 8 hex digits", f)
		}
		if strings.Trim(strings.ToLower(f), "0123456789abcdef") != "" {
			return nil, fmt.Errorf("colour %q: not hex", f)
		}
		stops = append(stops, gg.Hex(f))
	}
	return stops, nil
}

func toRGBA(c gg.RGBA) color.RGBA {
	return color.RGBAModel.Convert(c.Color()).(color.RGBA)
}
