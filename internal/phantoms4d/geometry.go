package phantoms4d

import "math"

// Geometry is a parallel-beam acquisition rotating about the Z axis.
// Detector pixel (r, c) sits at column coordinate (c − ⌊Cols/2⌋)·ColPitch + ColOffset
// and row (height) coordinate (r − ⌊Rows/2⌋)·RowPitch + RowOffset.
type Geometry struct {
	Angles    []Real // radians
	Rows      int
	Cols      int
	RowPitch  Real
	ColPitch  Real
	RowOffset Real
	ColOffset Real
}

// NewGeometry follows the library convention: angles in degrees, detector pitch
// equal to the voxel pitch 2/gridSize of an N-voxel grid, detector centered on the origin.
func NewGeometry(gridSize, cols, rows int, anglesDeg []Real) (Geometry, error) {
	if gridSize <= 0 {
		return Geometry{}, geometryf("grid size must be positive, got %d", gridSize)
	}
	pitch := GridExtent / Real(gridSize)
	g := Geometry{
		Angles:   DegToRad(anglesDeg),
		Rows:     rows,
		Cols:     cols,
		RowPitch: pitch,
		ColPitch: pitch,
	}
	if err := g.Validate(); err != nil {
		return Geometry{}, err
	}
	return g, nil
}

func (g Geometry) Validate() error {
	if g.Rows <= 0 || g.Cols <= 0 {
		return geometryf("detector must have positive rows and columns, got %dx%d", g.Rows, g.Cols)
	}
	if len(g.Angles) == 0 {
		return geometryf("no projection angles")
	}
	if !(g.RowPitch > 0) || !(g.ColPitch > 0) || !isFinite(g.RowPitch) || !isFinite(g.ColPitch) {
		return geometryf("detector pitch must be finite and > 0, got row=%g col=%g", g.RowPitch, g.ColPitch)
	}
	if !isFinite(g.RowOffset) || !isFinite(g.ColOffset) {
		return geometryf("detector offsets must be finite")
	}
	for i, a := range g.Angles {
		if !isFinite(a) {
			return geometryf("angle %d is not finite", i)
		}
	}
	return nil
}

// OutputShape is (rows, angles, cols).
func (g Geometry) OutputShape() [3]int { return [3]int{g.Rows, len(g.Angles), g.Cols} }

func (g Geometry) colCoord(c int) Real { return Real(c-g.Cols/2)*g.ColPitch + g.ColOffset }
func (g Geometry) rowCoord(r int) Real { return Real(r-g.Rows/2)*g.RowPitch + g.RowOffset }

// Ray returns the unit-direction line through detector pixel (r, c) at angle θ:
// origin s·(cosθ, sinθ, 0) + v·ẑ, direction (−sinθ, cosθ, 0).
func (g Geometry) Ray(theta Real, r, c int) (Point3, Vector3) {
	sn, cs := math.Sincos(theta)
	s, v := g.colCoord(c), g.rowCoord(r)
	return Point3{s * cs, s * sn, v}, Vector3{-sn, cs, 0}
}
