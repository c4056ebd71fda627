package pagemesh

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestGenerateScenarios(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want []float32
	}{
		{
			name: "two by one",
			spec: NewSpec(100, 200, 2, 1),
			want: []float32{0, 0, 50, 0, 100, 0, 0, 200, 50, 200, 100, 200},
		},
		{
			name: "single cell is the page corners",
			spec: NewSpec(320, 480, 1, 1),
			want: []float32{0, 0, 320, 0, 0, 480, 320, 480},
		},
		{
			name: "one by two",
			spec: NewSpec(10, 10, 1, 2),
			want: []float32{0, 0, 10, 0, 0, 5, 10, 5, 0, 10, 10, 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verts := make([]float32, tt.spec.BufferLen())
			if err := Generate(verts, tt.spec); err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if !slices.Equal(verts, tt.want) {
				t.Errorf("Generate() = %v, want %v", verts, tt.want)
			}
		})
	}
}

func TestGenerateFormula(t *testing.T) {
	specs := []Spec{
		NewSpec(1080, 1920, 30, 50),
		NewSpec(7, 3, 13, 17),
		NewSpec(0.5, 1e4, 1, 9),
		NewSpec(333.3, 777.7, 3, 7),
	}
	for _, s := range specs {
		t.Run(s.String(), func(t *testing.T) {
			verts := make([]float32, s.BufferLen())
			if err := Generate(verts, s); err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			for y := 0; y <= s.MeshHeight; y++ {
				for x := 0; x <= s.MeshWidth; x++ {
					i := y*(s.MeshWidth+1) + x
					wantX := float64(s.PageWidth) * float64(x) / float64(s.MeshWidth)
					wantY := float64(s.PageHeight) * float64(y) / float64(s.MeshHeight)
					if !near(verts[2*i], wantX) || !near(verts[2*i+1], wantY) {
						t.Fatalf("vertex (%d,%d) = (%v,%v), want (%v,%v)",
							x, y, verts[2*i], verts[2*i+1], wantX, wantY)
					}
				}
			}
		})
	}
}

func TestGenerateCorners(t *testing.T) {
	specs := []Spec{
		NewSpec(333.3, 777.7, 3, 7),
		NewSpec(1080, 1920, 30, 50),
		NewSpec(0.1, 0.3, 11, 13),
		NewSpec(1234.5678, 9.87654, 97, 89),
	}
	for _, s := range specs {
		verts := make([]float32, s.BufferLen())
		if err := Generate(verts, s); err != nil {
			t.Fatalf("Generate(%v) error = %v", s, err)
		}
		if verts[0] != 0 || verts[1] != 0 {
			t.Errorf("%v: first vertex = (%v,%v), want (0,0)", s, verts[0], verts[1])
		}
		n := len(verts)
		if verts[n-2] != s.PageWidth || verts[n-1] != s.PageHeight {
			t.Errorf("%v: last vertex = (%v,%v), want (%v,%v)",
				s, verts[n-2], verts[n-1], s.PageWidth, s.PageHeight)
		}
	}
}

func TestGenerateRowsAreLinear(t *testing.T) {
	s := NewSpec(1000, 600, 25, 4)
	verts := make([]float32, s.BufferLen())
	if err := Generate(verts, s); err != nil {
		t.Fatal(err)
	}
	step := float64(s.PageWidth) / float64(s.MeshWidth)
	for y := 0; y <= s.MeshHeight; y++ {
		row := verts[2*y*s.Columns() : 2*(y+1)*s.Columns()]
		for x := 1; x <= s.MeshWidth; x++ {
			prev, cur := row[2*(x-1)], row[2*x]
			if cur <= prev {
				t.Fatalf("row %d: x[%d]=%v not greater than x[%d]=%v", y, x, cur, x-1, prev)
			}
			if math.Abs(float64(cur-prev)-step) > 1e-4*step {
				t.Errorf("row %d: step %d = %v, want %v", y, x, cur-prev, step)
			}
			if row[2*x+1] != row[1] {
				t.Errorf("row %d: y changes within row: %v != %v", y, row[2*x+1], row[1])
			}
		}
	}
}

func TestGenerateIdempotent(t *testing.T) {
	s := NewSpec(1080, 1920, 30, 50)
	a := make([]float32, s.BufferLen())
	b := make([]float32, s.BufferLen())
	if err := Generate(a, s); err != nil {
		t.Fatal(err)
	}
	if err := Generate(b, s); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a, b) {
		t.Error("two Generate calls with identical inputs differ")
	}
	// Regenerating over stale contents yields the same grid.
	if err := Generate(a, s); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a, b) {
		t.Error("Generate over a filled buffer differs from a fresh one")
	}
}

func TestGenerateErrors(t *testing.T) {
	valid := NewSpec(100, 200, 2, 1)
	tests := []struct {
		name  string
		verts []float32
		spec  Spec
		want  error
		field string
	}{
		{"zero mesh width", make([]float32, 4), NewSpec(100, 200, 0, 1), ErrInvalidDimension, "MeshWidth"},
		{"zero mesh height", make([]float32, 6), NewSpec(100, 200, 2, 0), ErrInvalidDimension, "MeshHeight"},
		{"negative mesh width", make([]float32, 6), NewSpec(100, 200, -1, 1), ErrInvalidDimension, "MeshWidth"},
		{"zero page width", make([]float32, 12), NewSpec(0, 200, 2, 1), ErrInvalidDimension, "PageWidth"},
		{"negative page height", make([]float32, 12), NewSpec(100, -1, 2, 1), ErrInvalidDimension, "PageHeight"},
		{"NaN page width", make([]float32, 12), NewSpec(float32(math.NaN()), 200, 2, 1), ErrInvalidDimension, "PageWidth"},
		{"infinite page height", make([]float32, 12), NewSpec(100, float32(math.Inf(1)), 2, 1), ErrInvalidDimension, "PageHeight"},
		{"nil buffer", nil, valid, ErrInvalidBuffer, ""},
		{"short buffer", make([]float32, 11), valid, ErrSizeMismatch, ""},
		{"long buffer", make([]float32, 13), valid, ErrSizeMismatch, ""},
		{"empty buffer", []float32{}, valid, ErrSizeMismatch, ""},
		{"mesh width wraps buffer length", []float32{}, NewSpec(100, 100, math.MaxInt/2, 1), ErrInvalidDimension, "MeshWidth"},
		{"max int mesh height", make([]float32, 8), NewSpec(100, 100, 1, math.MaxInt), ErrInvalidDimension, "MeshHeight"},
		{"vertex product wraps", make([]float32, 8), NewSpec(100, 100, math.MaxInt32, math.MaxInt32), ErrInvalidDimension, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range tt.verts {
				tt.verts[i] = -7
			}
			err := Generate(tt.verts, tt.spec)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Generate() error = %v, want %v", err, tt.want)
			}
			for i, v := range tt.verts {
				if v != -7 {
					t.Fatalf("verts[%d] = %v, buffer was written on error", i, v)
				}
			}
			if tt.field != "" {
				var de *DimensionError
				if !errors.As(err, &de) {
					t.Fatalf("error %T is not a *DimensionError", err)
				}
				if de.Field != tt.field {
					t.Errorf("DimensionError.Field = %q, want %q", de.Field, tt.field)
				}
			}
		})
	}
}

func TestGenerateSizeError(t *testing.T) {
	err := Generate(make([]float32, 5), NewSpec(1, 1, 1, 1))
	var se *SizeError
	if !errors.As(err, &se) {
		t.Fatalf("Generate() error = %v, want *SizeError", err)
	}
	if se.Want != 8 || se.Got != 5 {
		t.Errorf("SizeError = %+v, want {Want:8 Got:5}", *se)
	}
}

func TestGenerateBottomLeftOrigin(t *testing.T) {
	s := NewSpec(100, 200, 2, 1)
	verts := make([]float32, s.BufferLen())
	if err := Generate(verts, s, WithOrigin(OriginBottomLeft)); err != nil {
		t.Fatal(err)
	}
	want := []float32{0, 200, 50, 200, 100, 200, 0, 0, 50, 0, 100, 0}
	if !slices.Equal(verts, want) {
		t.Errorf("Generate(bottom-left) = %v, want %v", verts, want)
	}
}

func TestGenerateWithTransform(t *testing.T) {
	s := NewSpec(10, 20, 1, 1)
	verts := make([]float32, s.BufferLen())
	if err := Generate(verts, s, WithTransform(Translate(5, -5))); err != nil {
		t.Fatal(err)
	}
	want := []float32{5, -5, 15, -5, 5, 15, 15, 15}
	if !slices.Equal(verts, want) {
		t.Errorf("Generate(translate) = %v, want %v", verts, want)
	}
}

func BenchmarkGenerate(b *testing.B) {
	s := NewSpec(1080, 1920, 30, 50)
	verts := make([]float32, s.BufferLen())
	b.ReportAllocs()
	for b.Loop() {
		if err := Generate(verts, s); err != nil {
			b.Fatal(err)
		}
	}
}

// near reports whether got is the float32 rounding of want, within one ulp.
func near(got float32, want float64) bool {
	diff := math.Abs(float64(got) - want)
	return diff <= math.Max(1e-6, math.Abs(want)*1.2e-7)
}
