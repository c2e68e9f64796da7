package fractal

import (
	"errors"
	"testing"
)

func TestWindowValidate(t *testing.T) {
	tests := []struct {
		name    string
		win     Window
		wantErr bool
	}{
		{"ok", Window{Region: SeahorseValley, W: 10, H: 10}, false},
		{"zero width", Window{Region: SeahorseValley, W: 0, H: 10}, true},
		{"zero height", Window{Region: SeahorseValley, W: 10, H: 0}, true},
		{"inverted real", Window{Region: Region{Xmin: 1, Xmax: 0, Ymin: 0, Ymax: 1}, W: 10, H: 10}, true},
		{"inverted imaginary", Window{Region: Region{Xmin: 0, Xmax: 1, Ymin: 1, Ymax: 0}, W: 10, H: 10}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.win.Validate()
			if gotErr := err != nil; gotErr != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidWindow) {
				t.Errorf("err = %v, want ErrInvalidWindow", err)
			}
		})
	}
}

func TestPixelToComplex(t *testing.T) {
	w := Window{Region: Region{Xmin: -2, Xmax: 2, Ymin: -1, Ymax: 1}, W: 4, H: 2}
	tests := []struct {
		col, row int
		want     complex128
	}{
		{0, 0, complex(-2, 1)},
		{2, 1, complex(0, 0)},
		{3, 1, complex(1, 0)},
	}
	for _, tt := range tests {
		if got := w.PixelToComplex(tt.col, tt.row); got != tt.want {
			t.Errorf("PixelToComplex(%d, %d) = %v, want %v", tt.col, tt.row, got, tt.want)
		}
	}
}

func TestLookupRegion(t *testing.T) {
	for _, name := range RegionNames() {
		r, ok := LookupRegion(name)
		if !ok {
			t.Errorf("LookupRegion(%q) not found", name)
			continue
		}
		if err := (Window{Region: r, W: 1, H: 1}).Validate(); err != nil {
			t.Errorf("region %q: %v", name, err)
		}
	}
	if r, ok := LookupRegion("Seahorse"); !ok || r != SeahorseValley {
		t.Errorf("LookupRegion(Seahorse) = %v, %v", r, ok)
	}
	if _, ok := LookupRegion("nowhere"); ok {
		t.Error("LookupRegion(nowhere) found")
	}
}

func TestParseEnums(t *testing.T) {
	for a := range algorithmNames {
		got, err := ParseAlgorithm(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAlgorithm(%q) = %v, %v", a, got, err)
		}
	}
	for e := range equationNames {
		got, err := ParseEquation(e.String())
		if err != nil || got != e {
			t.Errorf("ParseEquation(%q) = %v, %v", e, got, err)
		}
	}
	for ft := range typeNames {
		got, err := ParseFractalType(" " + ft.String() + " ")
		if err != nil || got != ft {
			t.Errorf("ParseFractalType(%q) = %v, %v", ft, got, err)
		}
	}
	if _, err := ParseEquation("z^7"); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("ParseEquation(z^7) err = %v, want ErrInvalidParams", err)
	}
	if got := Algorithm(9).String(); got != "unknown(9)" {
		t.Errorf("Algorithm(9).String() = %q", got)
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		p       Params
		wantErr bool
	}{
		{"power", Params{Power: 2, MaxIterations: 1}, false},
		{"manowar ignores power", Params{MaxIterations: 1, Equation: EquationManowar}, false},
		{"julia trap", Params{Power: 3, TrapFactor: 1, MaxIterations: 1, Type: TypeJulia, Algorithm: AlgorithmGaussianInteger}, false},
		{"no iterations", Params{Power: 2}, true},
		{"unknown algorithm", Params{Power: 2, MaxIterations: 10, Algorithm: Algorithm(7)}, true},
		{"unknown equation", Params{Power: 2, MaxIterations: 10, Equation: Equation(9)}, true},
		{"power below two", Params{Power: 1, MaxIterations: 10}, true},
		{"unknown type", Params{Power: 2, MaxIterations: 10, Type: FractalType(5)}, true},
		{"trap factor zero", Params{Power: 2, MaxIterations: 10, Algorithm: AlgorithmGaussianInteger}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidParams) {
				t.Errorf("err = %v, want ErrInvalidParams", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}
