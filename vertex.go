package pagemesh

import "math"

// Vertex is one grid intersection, in the same units as the page size.
type Vertex struct {
	X, Y float32
}

// V is a convenience function to create a Vertex.
func V(x, y float32) Vertex {
	return Vertex{X: x, Y: y}
}

// Add returns the component-wise sum of two vertices.
func (v Vertex) Add(w Vertex) Vertex {
	return Vertex{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the component-wise difference of two vertices.
func (v Vertex) Sub(w Vertex) Vertex {
	return Vertex{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vertex scaled by a scalar.
func (v Vertex) Mul(s float32) Vertex {
	return Vertex{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of two vertices treated as vectors.
func (v Vertex) Dot(w Vertex) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the distance of the vertex from the origin.
func (v Vertex) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Distance returns the distance between two vertices.
func (v Vertex) Distance(w Vertex) float32 {
	return v.Sub(w).Length()
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vertex if v has zero length.
func (v Vertex) Normalize() Vertex {
	length := v.Length()
	if length == 0 {
		return Vertex{}
	}
	return Vertex{X: v.X / length, Y: v.Y / length}
}

// Lerp performs linear interpolation between two vertices.
// t=0 returns v, t=1 returns w.
func (v Vertex) Lerp(w Vertex, t float32) Vertex {
	return Vertex{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}
