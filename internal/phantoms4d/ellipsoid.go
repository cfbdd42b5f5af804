package phantoms4d

import "math"

// Ellipsoid: constant intensity inside the unit ball of shape space.

func ellipsoidWeight(u Vector3) Real {
	if u.Dot(u) <= 1 {
		return 1
	}
	return 0
}

// unitBallQuadratic returns the coefficients of |o + t·d|² − 1.
func unitBallQuadratic(o, d Vector3) (a, b, c Real) {
	return d.Dot(d), 2 * o.Dot(d), o.Dot(o) - 1
}

// Chord length through the ellipsoid: the two roots of the ray quadratic are
// sqrt(disc)/a apart; no real roots ⇒ no contribution.
func ellipsoidIntegral(o, d Vector3) Real {
	a, b, c := unitBallQuadratic(o, d)
	if a == 0 {
		return 0
	}
	disc := b*b - 4*a*c
	if disc <= 0 {
		return 0
	}
	return math.Sqrt(disc) / a
}
