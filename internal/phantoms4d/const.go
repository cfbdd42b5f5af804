package phantoms4d

import "math"

const (
	GridExtent     = 2.0 // every axis of object space spans [-1,1]
	DefaultConfig  = "configs/phantoms.yaml"
	DefaultProfile = "cpu.out"
	// gaussian profile exp(-gaussK*q): half maximum at q=1/4, so (a,b,c) are full widths at half maximum
	gaussK = 4 * math.Ln2
	// bounding boxes are padded so culling never drops a boundary sample
	boxPad = 1e-9
	epsDir = 1e-12
)
