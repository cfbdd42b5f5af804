package phantoms4d

import (
	"math"
	"testing"
)

func TestRotFromAngles_IsOrthonormal(t *testing.T) {
	R := rotFromAngles(Rot3{XY: math.Pi / 6, XZ: math.Pi / 7, YZ: math.Pi / 8})
	P := R.Transpose().Mul(R)
	I := I3()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if diff := math.Abs(P.M[r][c] - I.M[r][c]); diff > 1e-12 {
				t.Fatalf("R^T R != I at (%d,%d): %.3g", r, c, diff)
			}
		}
	}
}

func TestAxisRotations(t *testing.T) {
	cases := []struct {
		name string
		R    Mat3
		in   Vector3
		want Vector3
	}{
		{"XY", rotXY(math.Pi / 2), Vector3{1, 0, 0}, Vector3{0, 1, 0}},
		{"XZ", rotXZ(math.Pi / 2), Vector3{1, 0, 0}, Vector3{0, 0, 1}},
		{"YZ", rotYZ(math.Pi / 2), Vector3{0, 1, 0}, Vector3{0, 0, 1}},
	}
	for _, tc := range cases {
		o := tc.R.MulVec(tc.in)
		if o.Sub(tc.want).Len() > 1e-12 {
			t.Fatalf("rot%s: got %+v want %+v", tc.name, o, tc.want)
		}
	}
}

func TestRotationOrder(t *testing.T) {
	// YZ is applied first, XY last.
	a := Rot3{XY: 0.3, XZ: -0.4, YZ: 1.1}
	want := rotXY(a.XY).Mul(rotXZ(a.XZ)).Mul(rotYZ(a.YZ))
	got := rotFromAngles(a)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if math.Abs(got.M[r][c]-want.M[r][c]) > 1e-12 {
				t.Fatalf("composition mismatch at (%d,%d)", r, c)
			}
		}
	}
}

func TestRot3DegRadians(t *testing.T) {
	r := Rot3Deg{Psi1: 90, Psi2: -45, Psi3: 180}.Radians()
	if math.Abs(r.XY-math.Pi/2) > 1e-12 || math.Abs(r.XZ+math.Pi/4) > 1e-12 || math.Abs(r.YZ-math.Pi) > 1e-12 {
		t.Fatalf("Radians mismatch: %+v", r)
	}
}
