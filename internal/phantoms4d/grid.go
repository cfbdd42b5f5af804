package phantoms4d

import (
	"fmt"
	"strings"
)

// Axis names one volume axis in (Z,Y,X) order.
type Axis int

const (
	AxisZ Axis = iota
	AxisY
	AxisX
)

func (a Axis) String() string {
	switch a {
	case AxisZ:
		return "z"
	case AxisY:
		return "y"
	case AxisX:
		return "x"
	}
	return fmt.Sprintf("axis(%d)", int(a))
}

func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "z", "0":
		return AxisZ, nil
	case "y", "1":
		return AxisY, nil
	case "x", "2":
		return AxisX, nil
	}
	return 0, geometryf("unknown axis %q", s)
}

// Size is a full volume shape (Z,Y,X).
type Size struct {
	Z, Y, X int
}

// Cube is the scalar form of Size.
func Cube(n int) Size { return Size{n, n, n} }

func (s Size) Dims() [3]int { return [3]int{s.Z, s.Y, s.X} }

// AxisSubrange restricts one axis to [Start, Stop).
type AxisSubrange struct {
	Axis        Axis
	Start, Stop int
}

func (r AxisSubrange) Len() int { return r.Stop - r.Start }

// GridSpec describes the voxels to compute: the full grid and, optionally, a slab.
type GridSpec struct {
	Size Size
	Sub  *AxisSubrange
}

func (g GridSpec) Validate() error {
	d := g.Size.Dims()
	if d[0] <= 0 || d[1] <= 0 || d[2] <= 0 {
		return geometryf("grid dimensions must be positive, got %+v", g.Size)
	}
	if g.Sub != nil {
		r := *g.Sub
		if r.Axis < AxisZ || r.Axis > AxisX {
			return geometryf("subrange axis %s", r.Axis)
		}
		n := d[r.Axis]
		if r.Start < 0 || r.Stop > n || r.Start >= r.Stop {
			return geometryf("subrange [%d,%d) on %s must be non-empty and lie within [0,%d]", r.Start, r.Stop, r.Axis, n)
		}
	}
	return nil
}

// OutputShape is the shape of the computed block; the restricted axis keeps its position.
func (g GridSpec) OutputShape() [3]int {
	d := g.Size.Dims()
	if g.Sub != nil {
		d[g.Sub.Axis] = g.Sub.Len()
	}
	return d
}

// offset is where the computed block starts inside the full grid.
func (g GridSpec) offset() [3]int {
	var o [3]int
	if g.Sub != nil {
		o[g.Sub.Axis] = g.Sub.Start
	}
	return o
}

// gridCoord maps index i of an n-voxel axis onto [-1,1]: voxel ⌊n/2⌋ is the
// origin and the pitch is 2/n, for any n.
func gridCoord(i, n int) Real {
	return Real(2*(i-n/2)) / Real(n)
}

// axisCoords precomputes gridCoord for the block [off, off+count) of an n-voxel axis.
func axisCoords(off, count, n int) []Real {
	out := make([]Real, count)
	for i := range out {
		out[i] = gridCoord(off+i, n)
	}
	return out
}
