package pagemesh

import "math"

// Matrix is a 2D affine transformation applied to mesh vertices.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// which maps a vertex as
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float32
	D, E, F float32
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float32) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float32) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		A: float32(cos), B: float32(-sin), C: 0,
		D: float32(sin), E: float32(cos), F: 0,
	}
}

// Reflect creates a matrix that mirrors vertices about the line through p
// with direction dir. A zero dir yields the identity.
//
// This is the transform used for the back face of a curled page, which is
// the flat grid mirrored about the fold line.
func Reflect(p, dir Vertex) Matrix {
	dx, dy := float64(dir.X), float64(dir.Y)
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return Identity()
	}
	// Householder form: R = 2*u*u^T - I for unit direction u.
	a := (dx*dx - dy*dy) / l2
	b := 2 * dx * dy / l2
	m := Matrix{
		A: float32(a), B: float32(b), C: 0,
		D: float32(b), E: float32(-a), F: 0,
	}
	return Translate(p.X, p.Y).Multiply(m).Multiply(Translate(-p.X, -p.Y))
}

// Multiply multiplies two matrices (m * other). The result applies other
// first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformVertex applies the transformation to a vertex.
func (m Matrix) TransformVertex(v Vertex) Vertex {
	return Vertex{
		X: m.A*v.X + m.B*v.Y + m.C,
		Y: m.D*v.X + m.E*v.Y + m.F,
	}
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := float64(m.A)*float64(m.E) - float64(m.B)*float64(m.D)
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := float32(1.0 / det)
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}
