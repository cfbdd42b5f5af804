package phantoms4d

import "math"

// Project evaluates the analytic line integrals of the primitives for every
// (row, angle, col) of geom and returns a fresh array in that axis order.
func Project(prims []*Primitive, geom Geometry, workers int) (*Array, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	shape := geom.OutputShape()
	sino := NewArray(shape[0], shape[1], shape[2])
	projectInto(sino.Data, prims, geom, workers)
	return sino, nil
}

// projectInto fills buf (len = rows·angles·cols) in (row, angle, col) order.
func projectInto(buf []Real, prims []*Primitive, geom Geometry, workers int) {
	nA, nC := len(geom.Angles), geom.Cols
	sins := make([]Real, nA)
	coss := make([]Real, nA)
	dirs := make([]Vector3, nA)
	recips := make([]rayRecips, nA)
	for a, theta := range geom.Angles {
		sins[a], coss[a] = math.Sincos(theta)
		dirs[a] = Vector3{-sins[a], coss[a], 0}
		recips[a] = newRayRecips(dirs[a])
	}
	cols := make([]Real, nC)
	for c := range cols {
		cols[c] = geom.colCoord(c)
	}

	splitWork(geom.Rows, workers, func(lo, hi int) {
		active := make([]*Primitive, 0, len(prims))
		for r := lo; r < hi; r++ {
			v := geom.rowCoord(r)
			// every ray of a row lies in the plane z = v
			active = active[:0]
			for _, p := range prims {
				if !p.Bounded || p.containsZ(v) {
					active = append(active, p)
				}
			}
			if len(active) == 0 {
				continue
			}
			for a := 0; a < nA; a++ {
				D, rr := dirs[a], recips[a]
				base := (r*nA + a) * nC
				for c, s := range cols {
					O := Point3{s * coss[a], s * sins[a], v}
					sum := 0.0
					for _, p := range active {
						if p.Bounded && !lineAABB(O, p.AABBMin, p.AABBMax, rr) {
							continue
						}
						sum += p.LineIntegral(O, D)
					}
					buf[base+c] = sum
				}
			}
		}
	})
}
