package phantoms4d

// Cuboid: constant intensity inside the unit box |u_i| ≤ 1.

func cuboidWeight(u Vector3) Real {
	if absR(u.X) <= 1 && absR(u.Y) <= 1 && absR(u.Z) <= 1 {
		return 1
	}
	return 0
}

// Slab clipping: the chord is the overlap of the three per-axis slabs.
func cuboidIntegral(o, d Vector3) Real {
	s, ok := slabSpan(o.X, d.X, -1, 1)
	if !ok {
		return 0
	}
	sy, ok := slabSpan(o.Y, d.Y, -1, 1)
	if !ok {
		return 0
	}
	if s, ok = s.intersect(sy); !ok {
		return 0
	}
	sz, ok := slabSpan(o.Z, d.Z, -1, 1)
	if !ok {
		return 0
	}
	if s, ok = s.intersect(sz); !ok {
		return 0
	}
	return s.length()
}
