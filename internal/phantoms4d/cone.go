package phantoms4d

// Elliptic cone: base disc at u_z = −1, apex at u_z = +1. With s = (1 − u_z)/2
// a point is inside iff u_x² + u_y² ≤ s² and 0 ≤ s ≤ 1; the s ≥ 0 cut removes
// the mirrored nappe of the quadric.

func coneWeight(u Vector3) Real {
	if absR(u.Z) > 1 {
		return 0
	}
	s := (1 - u.Z) / 2
	if u.X*u.X+u.Y*u.Y <= s*s {
		return 1
	}
	return 0
}

func coneIntegral(o, d Vector3) Real {
	s0 := (1 - o.Z) / 2
	ds := -d.Z / 2
	axial, ok := slabSpan(s0, ds, 0, 1)
	if !ok {
		return 0
	}
	a := d.X*d.X + d.Y*d.Y - ds*ds
	b := 2 * (o.X*d.X + o.Y*d.Y - s0*ds)
	c := o.X*o.X + o.Y*o.Y - s0*s0
	return clippedLength(quadNonPositive(a, b, c), axial)
}
