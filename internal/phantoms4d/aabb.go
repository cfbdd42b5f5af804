package phantoms4d

type rayRecips struct {
	invX, invY, invZ Real
	parX, parY, parZ bool // parallel flags (|D| < eps)
}

func newRayRecips(D Vector3) rayRecips {
	rr := rayRecips{
		parX: absR(D.X) < epsDir,
		parY: absR(D.Y) < epsDir,
		parZ: absR(D.Z) < epsDir,
	}
	if !rr.parX {
		rr.invX = 1 / D.X
	}
	if !rr.parY {
		rr.invY = 1 / D.Y
	}
	if !rr.parZ {
		rr.invZ = 1 / D.Z
	}
	return rr
}

// lineAABB reports whether the infinite line O + t·D meets the box [minP, maxP].
// Projection rays are lines, so unlike a camera ray there is no t ≥ 0 cut.
func lineAABB(O Point3, minP, maxP Point3, rr rayRecips) bool {
	tmin, tmax := -1e300, 1e300

	// X
	if !rr.parX {
		t1 := (minP.X - O.X) * rr.invX
		t2 := (maxP.X - O.X) * rr.invX
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if O.X < minP.X || O.X > maxP.X {
		return false
	}

	// Y
	if !rr.parY {
		t1 := (minP.Y - O.Y) * rr.invY
		t2 := (maxP.Y - O.Y) * rr.invY
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if O.Y < minP.Y || O.Y > maxP.Y {
		return false
	}

	// Z
	if !rr.parZ {
		t1 := (minP.Z - O.Z) * rr.invZ
		t2 := (maxP.Z - O.Z) * rr.invZ
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if O.Z < minP.Z || O.Z > maxP.Z {
		return false
	}

	return tmin <= tmax
}
