package pagemesh

import (
	"encoding/binary"
	"math"
)

// Grid owns a vertex buffer for one mesh Spec.
//
// The backing slice returned by Verts is laid out exactly as Generate
// writes it and can be handed to a bitmap-mesh draw call directly.
// A Grid is not safe for concurrent mutation.
type Grid struct {
	spec  Spec
	opts  options
	verts []float32
}

// NewGrid allocates a buffer for s and fills it.
func NewGrid(s Spec, opts ...Option) (*Grid, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	g := &Grid{
		spec:  s,
		opts:  buildOptions(opts),
		verts: make([]float32, s.BufferLen()),
	}
	fill(g.verts, g.spec, g.opts)
	logGenerated(g.spec, g.opts)
	return g, nil
}

// Spec returns the mesh description the grid was built from.
func (g *Grid) Spec() Spec { return g.spec }

// Verts returns the backing vertex buffer.
func (g *Grid) Verts() []float32 { return g.verts }

// Len returns the number of vertices.
func (g *Grid) Len() int { return len(g.verts) / 2 }

// Vertex returns the vertex at index i.
// It panics if i is out of range.
func (g *Grid) Vertex(i int) Vertex {
	return Vertex{X: g.verts[2*i], Y: g.verts[2*i+1]}
}

// At returns the vertex at column col and row row.
// It panics if either is out of range.
func (g *Grid) At(col, row int) Vertex {
	if col < 0 || col > g.spec.MeshWidth || row < 0 || row > g.spec.MeshHeight {
		panic("pagemesh: grid position out of range")
	}
	return g.Vertex(g.spec.Index(col, row))
}

// Set overwrites the vertex at column col and row row.
func (g *Grid) Set(col, row int, v Vertex) {
	if col < 0 || col > g.spec.MeshWidth || row < 0 || row > g.spec.MeshHeight {
		panic("pagemesh: grid position out of range")
	}
	i := 2 * g.spec.Index(col, row)
	g.verts[i] = v.X
	g.verts[i+1] = v.Y
}

// Row returns the interleaved coordinates of one row as a subslice of the
// backing buffer.
// It panics if row is out of range.
func (g *Grid) Row(row int) []float32 {
	if row < 0 || row > g.spec.MeshHeight {
		panic("pagemesh: grid row out of range")
	}
	n := 2 * g.spec.Columns()
	return g.verts[row*n : (row+1)*n : (row+1)*n]
}

// Reset regenerates the flat grid, discarding any transforms applied since
// the grid was built.
func (g *Grid) Reset() {
	fill(g.verts, g.spec, g.opts)
}

// Transform maps every vertex through m in place.
func (g *Grid) Transform(m Matrix) {
	if m.IsIdentity() {
		return
	}
	for i := 0; i < len(g.verts); i += 2 {
		v := m.TransformVertex(Vertex{X: g.verts[i], Y: g.verts[i+1]})
		g.verts[i] = v.X
		g.verts[i+1] = v.Y
	}
}

// Bounds returns the component-wise minimum and maximum vertex.
func (g *Grid) Bounds() (lo, hi Vertex) {
	lo = Vertex{X: float32(math.Inf(1)), Y: float32(math.Inf(1))}
	hi = Vertex{X: float32(math.Inf(-1)), Y: float32(math.Inf(-1))}
	for i := 0; i < len(g.verts); i += 2 {
		x, y := g.verts[i], g.verts[i+1]
		lo.X = min(lo.X, x)
		lo.Y = min(lo.Y, y)
		hi.X = max(hi.X, x)
		hi.Y = max(hi.Y, y)
	}
	return lo, hi
}

// Bytes returns the vertex buffer encoded as little-endian float32 values,
// VertexStride bytes per vertex, ready for a GPU buffer upload.
func (g *Grid) Bytes() []byte {
	return AppendBytes(make([]byte, 0, 4*len(g.verts)), g.verts)
}

// AppendBytes appends the little-endian encoding of verts to dst.
func AppendBytes(dst []byte, verts []float32) []byte {
	for _, f := range verts {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
	}
	return dst
}
