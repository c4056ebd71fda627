package pagemesh

// TriangleIndices returns a triangle-list index buffer covering every
// cell of the mesh, or nil if s is invalid.
//
// Each cell (x, y) is split along its top-left to bottom-right diagonal
// into two triangles, both wound counter-clockwise in y-down coordinates:
//
//	tl ---- tr
//	|  \     |
//	|    \   |
//	bl ---- br
//
//	(tl, bl, br) (tl, br, tr)
func TriangleIndices(s Spec) []uint32 {
	idx, err := AppendTriangleIndices(nil, s)
	if err != nil {
		return nil
	}
	return idx
}

// AppendTriangleIndices appends the TriangleIndices of s to dst.
func AppendTriangleIndices(dst []uint32, s Spec) ([]uint32, error) {
	if err := s.Validate(); err != nil {
		return dst, err
	}
	dst = grow(dst, 6*s.MeshWidth*s.MeshHeight)
	cols := uint32(s.Columns())
	for y := 0; y < s.MeshHeight; y++ {
		for x := 0; x < s.MeshWidth; x++ {
			tl := uint32(y)*cols + uint32(x)
			tr := tl + 1
			bl := tl + cols
			br := bl + 1
			dst = append(dst, tl, bl, br, tl, br, tr)
		}
	}
	return dst, nil
}

// LineIndices returns a line-list index buffer with one segment per grid
// edge, or nil if s is invalid. Horizontal edges come first, row by row,
// followed by vertical edges, column by column.
func LineIndices(s Spec) []uint32 {
	idx, err := AppendLineIndices(nil, s)
	if err != nil {
		return nil
	}
	return idx
}

// AppendLineIndices appends the LineIndices of s to dst.
func AppendLineIndices(dst []uint32, s Spec) ([]uint32, error) {
	if err := s.Validate(); err != nil {
		return dst, err
	}
	edges := s.MeshWidth*s.Rows() + s.MeshHeight*s.Columns()
	dst = grow(dst, 2*edges)
	cols := uint32(s.Columns())
	for y := 0; y <= s.MeshHeight; y++ {
		for x := 0; x < s.MeshWidth; x++ {
			i := uint32(y)*cols + uint32(x)
			dst = append(dst, i, i+1)
		}
	}
	for x := 0; x <= s.MeshWidth; x++ {
		for y := 0; y < s.MeshHeight; y++ {
			i := uint32(y)*cols + uint32(x)
			dst = append(dst, i, i+cols)
		}
	}
	return dst, nil
}

func grow(dst []uint32, n int) []uint32 {
	if cap(dst)-len(dst) < n {
		next := make([]uint32, len(dst), len(dst)+n)
		copy(next, dst)
		return next
	}
	return dst
}
