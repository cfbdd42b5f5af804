package phantoms4d

// Rasterize samples the primitives on the voxels described by spec and returns
// a fresh (Z,Y,X) array (or the slab's local block). A slab is bit-for-bit the
// same as slicing the full grid: coordinates always come from full-grid indices.
func Rasterize(prims []*Primitive, spec GridSpec, workers int) (*Array, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	shape := spec.OutputShape()
	vol := NewArray(shape[0], shape[1], shape[2])
	rasterizeInto(vol.Data, prims, spec, workers)
	return vol, nil
}

// rasterizeInto fills buf (len = product of spec.OutputShape()) in (Z,Y,X) order.
func rasterizeInto(buf []Real, prims []*Primitive, spec GridSpec, workers int) {
	shape := spec.OutputShape()
	off := spec.offset()
	full := spec.Size.Dims()
	zs := axisCoords(off[0], shape[0], full[0])
	ys := axisCoords(off[1], shape[1], full[1])
	xs := axisCoords(off[2], shape[2], full[2])
	strideZ := shape[1] * shape[2]
	strideY := shape[2]

	splitWork(shape[0], workers, func(lo, hi int) {
		slice := make([]*Primitive, 0, len(prims))
		row := make([]*Primitive, 0, len(prims))
		for k := lo; k < hi; k++ {
			z := zs[k]
			// primitives whose bounds cross this slice, in model order
			slice = slice[:0]
			for _, p := range prims {
				if !p.Bounded || p.containsZ(z) {
					slice = append(slice, p)
				}
			}
			for j, y := range ys {
				row = row[:0]
				for _, p := range slice {
					if !p.Bounded || p.containsY(y) {
						row = append(row, p)
					}
				}
				base := k*strideZ + j*strideY
				if len(row) == 0 {
					continue
				}
				for i, x := range xs {
					pt := Point3{x, y, z}
					v := 0.0
					for _, p := range row {
						v += p.IntensityAt(pt)
					}
					buf[base+i] = v
				}
			}
		}
	})
}
