package phantoms4d

// Elliptical cylinder: unit disc in the local XY plane, extruded over |u_z| ≤ 1.

func cylinderWeight(u Vector3) Real {
	if u.X*u.X+u.Y*u.Y <= 1 && absR(u.Z) <= 1 {
		return 1
	}
	return 0
}

func cylinderIntegral(o, d Vector3) Real {
	axial, ok := slabSpan(o.Z, d.Z, -1, 1)
	if !ok {
		return 0
	}
	a := d.X*d.X + d.Y*d.Y
	b := 2 * (o.X*d.X + o.Y*d.Y)
	c := o.X*o.X + o.Y*o.Y - 1
	return clippedLength(quadNonPositive(a, b, c), axial)
}
