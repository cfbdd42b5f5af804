package phantoms4d

import "math"

// Vector3 represents a direction (not a position) in 3D space.
type Vector3 struct {
	X, Y, Z Real
}

// Vector functions
func (a Vector3) Add(b Vector3) Vector3 { return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vector3) Mul(s Real) Vector3    { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Hadamard multiplies component-wise; used to scale into unit-shape space.
func (a Vector3) Hadamard(b Vector3) Vector3 { return Vector3{a.X * b.X, a.Y * b.Y, a.Z * b.Z} }

// Dot returns the dot product between two 3D vectors.
func (a Vector3) Dot(b Vector3) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Len returns the Euclidean length of the vector.
func (v Vector3) Len() Real { return math.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector.
func (v Vector3) Norm() Vector3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}

func (A Mat3) MulVec(v Vector3) Vector3 {
	return Vector3{
		A.M[0][0]*v.X + A.M[0][1]*v.Y + A.M[0][2]*v.Z,
		A.M[1][0]*v.X + A.M[1][1]*v.Y + A.M[1][2]*v.Z,
		A.M[2][0]*v.X + A.M[2][1]*v.Y + A.M[2][2]*v.Z,
	}
}
