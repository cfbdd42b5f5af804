package phantoms4d

import (
	"fmt"
	"strings"
)

// Param indexes the ten numeric fields of a primitive record, in file order.
type Param uint8

const (
	ParamC0 Param = iota
	ParamX0
	ParamY0
	ParamZ0
	ParamA
	ParamB
	ParamC
	ParamPsi1
	ParamPsi2
	ParamPsi3
	NumParams
)

var paramNames = [NumParams]string{"c0", "x0", "y0", "z0", "a", "b", "c", "psi1", "psi2", "psi3"}

func (p Param) String() string {
	if p < NumParams {
		return paramNames[p]
	}
	return fmt.Sprintf("param(%d)", uint8(p))
}

func ParseParam(s string) (Param, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	for p, name := range paramNames {
		if name == t {
			return Param(p), nil
		}
	}
	return 0, malformedf("unknown parameter %q", s)
}

func isAxisParam(p Param) bool { return p == ParamA || p == ParamB || p == ParamC }

// Descriptor is one declarative primitive: its kind, the ten numeric fields
// (intensity, center, semi-axes, rotation in degrees) and, for temporal
// models, the trajectories of the parameters that move.
type Descriptor struct {
	Kind   Kind
	Params [NumParams]Real
	Motion map[Param]Trajectory
}

func (d Descriptor) Intensity() Real { return d.Params[ParamC0] }
func (d Descriptor) Center() Point3 {
	return Point3{d.Params[ParamX0], d.Params[ParamY0], d.Params[ParamZ0]}
}
func (d Descriptor) Axes() Vector3 {
	return Vector3{d.Params[ParamA], d.Params[ParamB], d.Params[ParamC]}
}
func (d Descriptor) RotDeg() Rot3Deg {
	return Rot3Deg{d.Params[ParamPsi1], d.Params[ParamPsi2], d.Params[ParamPsi3]}
}

// Validate rejects unsupported kinds, non-finite fields, degenerate axes and
// trajectories that would drive an axis to zero within the sequence.
func (d Descriptor) Validate() error {
	if d.Kind >= numKinds {
		return newError(ErrUnsupportedPrimitive, "%s", d.Kind)
	}
	for p, v := range d.Params {
		if !isFinite(v) {
			return malformedf("%s %s is not finite", d.Kind, Param(p))
		}
		if isAxisParam(Param(p)) && v <= 0 {
			return malformedf("%s %s must be > 0, got %g", d.Kind, Param(p), v)
		}
	}
	for p, tr := range d.Motion {
		if p >= NumParams {
			return malformedf("%s trajectory on %s", d.Kind, p)
		}
		if tr.Kind >= numTrajectoryKinds {
			return malformedf("%s %s has %s", d.Kind, p, tr.Kind)
		}
		if isAxisParam(p) && tr.lowerBound(d.Params[p]) <= 0 {
			return malformedf("%s %s trajectory %s reaches a non-positive length", d.Kind, p, tr.Kind)
		}
	}
	return nil
}

// Build validates and constructs the runtime primitive, ignoring Motion.
func (d Descriptor) Build() (*Primitive, error) {
	if d.Kind >= numKinds {
		return nil, newError(ErrUnsupportedPrimitive, "%s", d.Kind)
	}
	return NewPrimitive(d.Kind, d.Intensity(), d.Center(), d.Axes(), d.RotDeg().Radians())
}

// BuildAll builds a primitive list in descriptor order.
func BuildAll(ds []Descriptor) ([]*Primitive, error) {
	out := make([]*Primitive, 0, len(ds))
	for i, d := range ds {
		p, err := d.Build()
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i+1, err)
		}
		out = append(out, p)
	}
	return out, nil
}
