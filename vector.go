package meshtopo

import (
	"math"
)

// Vector is a Cartesian point or direction in three-dimensional space. It is
// the plain, copyable payload type that the geometry collaborator attaches
// to vertices through the property API; the topology core never references
// it directly.
type Vector [3]float64

// NewVector constructs a Vector from its components.
func NewVector(x, y, z float64) Vector {
	return Vector{x, y, z}
}

// X returns the first component.
func (v Vector) X() float64 { return v[0] }

// Y returns the second component.
func (v Vector) Y() float64 { return v[1] }

// Z returns the third component.
func (v Vector) Z() float64 { return v[2] }

// Mag computes the magnitude (L2-norm).
func (v Vector) Mag() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit computes the unit vector.
func (v Vector) Unit() Vector {
	mag := v.Mag()
	return Vector{v[0] / mag, v[1] / mag, v[2] / mag}
}

// Add computes v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub computes v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// MulScalar multiplies a vector by a scalar.
func (v Vector) MulScalar(s float64) Vector {
	return Vector{v[0] * s, v[1] * s, v[2] * s}
}

// Dot computes the dot product v . w.
func (v Vector) Dot(w Vector) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Cross computes the cross product v x w.
func (v Vector) Cross(w Vector) Vector {
	return Vector{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// IntersectsAABB implements the IntersectsAABB interface for a point.
func (v Vector) IntersectsAABB(query AABB) bool {
	for i := 0; i < 3; i++ {
		if v[i] < query.Center[i]-query.HalfSize[i] {
			return false
		}

		if v[i] > query.Center[i]+query.HalfSize[i] {
			return false
		}
	}

	return true
}

// Distance computes the Euclidean distance between two points.
func (v Vector) Distance(w Vector) float64 {
	return v.Sub(w).Mag()
}
