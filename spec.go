package pagemesh

import (
	"fmt"
	"math"
)

// Spec describes a page mesh: the page rectangle and the number of cells
// along each axis.
//
// A mesh of MeshWidth×MeshHeight cells has (MeshWidth+1)×(MeshHeight+1)
// vertices, one per grid intersection.
type Spec struct {
	PageWidth  float32
	PageHeight float32
	MeshWidth  int
	MeshHeight int
}

// NewSpec is a convenience function to create a Spec.
func NewSpec(pageWidth, pageHeight float32, meshWidth, meshHeight int) Spec {
	return Spec{
		PageWidth:  pageWidth,
		PageHeight: pageHeight,
		MeshWidth:  meshWidth,
		MeshHeight: meshHeight,
	}
}

// maxVertexCount bounds VertexCount so that BufferLen fits in an int.
const maxVertexCount = math.MaxInt / 2

// Validate reports whether s describes a non-degenerate mesh whose buffer
// length is representable as an int.
// The returned error is a *DimensionError naming the first rejected field.
func (s Spec) Validate() error {
	if s.MeshWidth < 1 || s.MeshWidth >= maxVertexCount {
		return &DimensionError{Field: "MeshWidth", Value: float64(s.MeshWidth)}
	}
	if s.MeshHeight < 1 || s.MeshHeight >= maxVertexCount {
		return &DimensionError{Field: "MeshHeight", Value: float64(s.MeshHeight)}
	}
	// Both counts fit; reject the product before Columns*Rows can wrap.
	if s.Columns() > maxVertexCount/s.Rows() {
		return &DimensionError{Field: "MeshHeight", Value: float64(s.MeshHeight)}
	}
	if !positiveFinite(s.PageWidth) {
		return &DimensionError{Field: "PageWidth", Value: float64(s.PageWidth)}
	}
	if !positiveFinite(s.PageHeight) {
		return &DimensionError{Field: "PageHeight", Value: float64(s.PageHeight)}
	}
	return nil
}

// Columns returns the number of vertices per row.
func (s Spec) Columns() int { return s.MeshWidth + 1 }

// Rows returns the number of vertex rows.
func (s Spec) Rows() int { return s.MeshHeight + 1 }

// VertexCount returns the number of grid vertices.
// The result is only meaningful for a spec that passes Validate.
func (s Spec) VertexCount() int { return s.Columns() * s.Rows() }

// BufferLen returns the number of float32 values needed to hold every
// vertex as an interleaved (x, y) pair.
func (s Spec) BufferLen() int { return 2 * s.VertexCount() }

// CellWidth returns the horizontal distance between adjacent columns.
func (s Spec) CellWidth() float32 {
	return float32(float64(s.PageWidth) / float64(s.MeshWidth))
}

// CellHeight returns the vertical distance between adjacent rows.
func (s Spec) CellHeight() float32 {
	return float32(float64(s.PageHeight) / float64(s.MeshHeight))
}

// Index returns the vertex index of the grid intersection at (col, row).
func (s Spec) Index(col, row int) int {
	return row*s.Columns() + col
}

func (s Spec) String() string {
	return fmt.Sprintf("%gx%g/%dx%d", s.PageWidth, s.PageHeight, s.MeshWidth, s.MeshHeight)
}

func positiveFinite(v float32) bool {
	f := float64(v)
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
