package phantoms4d

import "math"

// Gaussian: exp(−k·q) everywhere, unbounded support.

func gaussianWeight(u Vector3) Real {
	return math.Exp(-gaussK * u.Dot(u))
}

// q(t) = a·t² + b·t + c' with c' = |o|², and
// ∫ exp(−k·q(t)) dt = sqrt(π/(k·a)) · exp(−k·(c' − b²/(4a))).
func gaussianIntegral(o, d Vector3) Real {
	a := d.Dot(d)
	if a == 0 {
		return 0
	}
	b := 2 * o.Dot(d)
	c := o.Dot(o)
	return math.Sqrt(math.Pi/(gaussK*a)) * math.Exp(-gaussK*(c-b*b/(4*a)))
}
