package phantoms4d

import "math"

// Angles in radians for rotations in coordinate planes.
// XY turns about Z, XZ about Y, YZ about X.
type Rot3 struct {
	XY, XZ, YZ Real
}

// Rot3Deg holds the three library angles (psi1, psi2, psi3) in degrees.
type Rot3Deg struct {
	Psi1, Psi2, Psi3 Real
}

func (r Rot3Deg) Radians() Rot3 {
	const k = math.Pi / 180
	return Rot3{XY: r.Psi1 * k, XZ: r.Psi2 * k, YZ: r.Psi3 * k}
}

func rotXY(a Real) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	M := I3()
	M.M[0][0], M.M[0][1] = c, -s
	M.M[1][0], M.M[1][1] = s, c
	return M
}
func rotXZ(a Real) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	M := I3()
	M.M[0][0], M.M[0][2] = c, -s
	M.M[2][0], M.M[2][2] = s, c
	return M
}
func rotYZ(a Real) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	M := I3()
	M.M[1][1], M.M[1][2] = c, -s
	M.M[2][1], M.M[2][2] = s, c
	return M
}

// Compose rotation from angles: R = XY · XZ · YZ (local -> world).
func rotFromAngles(r Rot3) Mat3 {
	R := I3()
	R = rotYZ(r.YZ).Mul(R)
	R = rotXZ(r.XZ).Mul(R)
	R = rotXY(r.XY).Mul(R)
	return R
}
