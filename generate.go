package pagemesh

import (
	"context"
	"log/slog"
)

// Generate fills verts with the vertex grid described by s.
//
// Vertices are written in row-major order: row y (0..MeshHeight) is the
// outer loop and column x (0..MeshWidth) the inner one, so the vertex at
// (x, y) has index i = y*(MeshWidth+1) + x and occupies verts[2i] and
// verts[2i+1]. Its coordinates are
//
//	fx = PageWidth  * x / MeshWidth
//	fy = PageHeight * y / MeshHeight
//
// verts must be non-nil and exactly s.BufferLen() long. Validation happens
// before any write; on error verts is left untouched. Generate keeps no
// reference to verts after it returns and is safe to call concurrently on
// distinct buffers.
func Generate(verts []float32, s Spec, opts ...Option) error {
	if err := check(verts, s); err != nil {
		return err
	}
	o := buildOptions(opts)
	fill(verts, s, o)

	logGenerated(s, o)
	return nil
}

// logGenerated reports a filled mesh at debug level.
func logGenerated(s Spec, o options) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("pagemesh: generated mesh",
		"spec", s.String(),
		"vertices", s.VertexCount(),
		"origin", o.origin.String(),
		"transformed", !o.transform.IsIdentity())
}

// check validates s and then the buffer against it.
func check(verts []float32, s Spec) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if verts == nil {
		return ErrInvalidBuffer
	}
	if want := s.BufferLen(); len(verts) != want {
		return &SizeError{Want: want, Got: len(verts)}
	}
	return nil
}

// fill writes the grid without validation. Arithmetic is done in float64
// and rounded once, so the last column and row land exactly on the page
// edges.
func fill(verts []float32, s Spec, o options) {
	w, h := float64(s.PageWidth), float64(s.PageHeight)
	mw, mh := float64(s.MeshWidth), float64(s.MeshHeight)
	identity := o.transform.IsIdentity()

	i := 0
	for y := 0; y <= s.MeshHeight; y++ {
		row := float64(y)
		if o.origin == OriginBottomLeft {
			row = mh - row
		}
		fy := float32(h * row / mh)
		for x := 0; x <= s.MeshWidth; x++ {
			v := Vertex{X: float32(w * float64(x) / mw), Y: fy}
			if !identity {
				v = o.transform.TransformVertex(v)
			}
			verts[i] = v.X
			verts[i+1] = v.Y
			i += 2
		}
	}
}
