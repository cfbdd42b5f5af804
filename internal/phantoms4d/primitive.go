package phantoms4d

import (
	"fmt"
	"math"
	"strings"
)

// Kind enumerates the closed set of primitive shapes.
type Kind uint8

const (
	KindEllipsoid Kind = iota
	KindCuboid
	KindCone
	KindParaboloid
	KindGaussian
	KindEllipticalCylinder
	numKinds
)

var kindNames = [numKinds]string{
	KindEllipsoid:          "ellipsoid",
	KindCuboid:             "cuboid",
	KindCone:               "cone",
	KindParaboloid:         "paraboloid",
	KindGaussian:           "gaussian",
	KindEllipticalCylinder: "elliptical_cylinder",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind maps a library type tag onto a Kind.
func ParseKind(tag string) (Kind, error) {
	t := strings.ToLower(strings.TrimSpace(tag))
	for k, name := range kindNames {
		if name == t {
			return Kind(k), nil
		}
	}
	return 0, newError(ErrUnsupportedPrimitive, "unknown primitive type %q", tag)
}

// kindOps is the per-shape pair of closed forms, both in unit-shape space
// (local coordinates divided by the semi-axes) and without the intensity factor:
//   - weight(u) is the shape profile at u
//   - integral(o, d) is ∫ weight(o + t·d) dt over the whole line
type kindOps struct {
	weight   func(u Vector3) Real
	integral func(o, d Vector3) Real
	bounded  bool
}

// Adding a primitive means adding a Kind and its row here; init rejects gaps.
var kindTable = [numKinds]kindOps{
	KindEllipsoid:          {weight: ellipsoidWeight, integral: ellipsoidIntegral, bounded: true},
	KindCuboid:             {weight: cuboidWeight, integral: cuboidIntegral, bounded: true},
	KindCone:               {weight: coneWeight, integral: coneIntegral, bounded: true},
	KindParaboloid:         {weight: paraboloidWeight, integral: paraboloidIntegral, bounded: true},
	KindGaussian:           {weight: gaussianWeight, integral: gaussianIntegral, bounded: false},
	KindEllipticalCylinder: {weight: cylinderWeight, integral: cylinderIntegral, bounded: true},
}

func init() {
	for k, ops := range kindTable {
		if ops.weight == nil || ops.integral == nil {
			panic(fmt.Sprintf("primitive %s has no closed forms", Kind(k)))
		}
	}
}

// Primitive is a validated shape ready for evaluation: unit shape scaled by
// Axes (semi-axes / half sizes), rotated by R about the origin, then
// translated to Center.
type Primitive struct {
	Kind      Kind
	Intensity Real
	Center    Point3
	Axes      Vector3
	R         Mat3 // local->world rotation
	RT        Mat3 // world->local rotation (R^T)

	// cached
	Bounded bool
	AABBMin Point3
	AABBMax Point3
	invAxes Vector3
	ops     kindOps
}

// NewPrimitive validates the shape parameters and precomputes rotation and bounds.
func NewPrimitive(kind Kind, intensity Real, center Point3, axes Vector3, angles Rot3) (*Primitive, error) {
	if kind >= numKinds {
		return nil, newError(ErrUnsupportedPrimitive, "%s", kind)
	}
	if !(axes.X > 0 && axes.Y > 0 && axes.Z > 0) || !isFinite(axes.X) || !isFinite(axes.Y) || !isFinite(axes.Z) {
		return nil, malformedf("%s axes must be finite and > 0, got %+v", kind, axes)
	}
	if !isFinite(intensity) || !isFinite(center.X) || !isFinite(center.Y) || !isFinite(center.Z) {
		return nil, malformedf("%s has non-finite intensity or center", kind)
	}
	if !isFinite(angles.XY) || !isFinite(angles.XZ) || !isFinite(angles.YZ) {
		return nil, malformedf("%s has non-finite rotation %+v", kind, angles)
	}

	R := rotFromAngles(angles)
	p := &Primitive{
		Kind:      kind,
		Intensity: intensity,
		Center:    center,
		Axes:      axes,
		R:         R,
		RT:        R.Transpose(),
		Bounded:   kindTable[kind].bounded,
		invAxes:   Vector3{1 / axes.X, 1 / axes.Y, 1 / axes.Z},
		ops:       kindTable[kind],
	}

	if !p.Bounded {
		inf := math.Inf(1)
		p.AABBMin = Point3{-inf, -inf, -inf}
		p.AABBMax = Point3{inf, inf, inf}
		DebugLog("Created primitive: %+v", p)
		return p, nil
	}

	// Every bounded shape fits its local box [-a,a]×[-b,b]×[-c,c]; project its extents.
	var half Vector3
	for row, out := range []*Real{&half.X, &half.Y, &half.Z} {
		*out = absR(R.M[row][0])*axes.X + absR(R.M[row][1])*axes.Y + absR(R.M[row][2])*axes.Z + boxPad
	}
	p.AABBMin = center.Add(half.Mul(-1))
	p.AABBMax = center.Add(half)

	DebugLog("Created primitive: %+v", p)
	return p, nil
}

// unitSpace maps a world point to unit-shape coordinates.
func (p *Primitive) unitSpace(pt Point3) Vector3 {
	return p.RT.MulVec(pt.Sub(p.Center)).Hadamard(p.invAxes)
}

// IntensityAt returns the primitive's contribution at pt (boundary inclusive).
func (p *Primitive) IntensityAt(pt Point3) Real {
	w := p.ops.weight(p.unitSpace(pt))
	if w == 0 {
		return 0
	}
	return p.Intensity * w
}

// LineIntegral returns ∫ IntensityAt(O + t·D) dt over the infinite line.
// D must be unit length so that t measures object-space distance.
func (p *Primitive) LineIntegral(O Point3, D Vector3) Real {
	// world -> local, then scale to unit-shape space; rotation keeps t metric
	o := p.RT.MulVec(O.Sub(p.Center)).Hadamard(p.invAxes)
	d := p.RT.MulVec(D).Hadamard(p.invAxes)
	v := p.ops.integral(o, d)
	if v == 0 {
		return 0
	}
	return p.Intensity * v
}

// containsZ / containsY report whether the bounding box spans a plane; used to
// skip primitives for whole slices and rows.
func (p *Primitive) containsZ(z Real) bool { return z >= p.AABBMin.Z && z <= p.AABBMax.Z }
func (p *Primitive) containsY(y Real) bool { return y >= p.AABBMin.Y && y <= p.AABBMax.Y }
