package phantoms4d

import "math"

// Paraboloid: intensity falls off as 1 − q inside the unit ball, q = |u|².

func paraboloidWeight(u Vector3) Real {
	q := u.Dot(u)
	if q <= 1 {
		return 1 - q
	}
	return 0
}

// Along the ray 1 − q(t) = a·(t − t0)(t1 − t), whose integral between the
// roots is a·L³/6 with L = t1 − t0.
func paraboloidIntegral(o, d Vector3) Real {
	a, b, c := unitBallQuadratic(o, d)
	if a == 0 {
		return 0
	}
	disc := b*b - 4*a*c
	if disc <= 0 {
		return 0
	}
	L := math.Sqrt(disc) / a
	return a * L * L * L / 6
}
