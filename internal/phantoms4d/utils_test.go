package phantoms4d

import (
	"math"
	"testing"
)

func TestLinspace(t *testing.T) {
	got := Linspace(0, 179.9, 5)
	if len(got) != 5 || got[0] != 0 || got[4] != 179.9 {
		t.Fatalf("endpoints wrong: %v", got)
	}
	if math.Abs(got[2]-89.95) > 1e-12 {
		t.Fatalf("midpoint wrong: %v", got[2])
	}
	if one := Linspace(3, 7, 1); len(one) != 1 || one[0] != 3 {
		t.Fatalf("single value wrong: %v", one)
	}
	if none := Linspace(0, 1, 0); none != nil {
		t.Fatalf("expected nil for n=0, got %v", none)
	}
}

func TestDegToRad(t *testing.T) {
	r := DegToRad([]Real{0, 90, 180, -30})
	want := []Real{0, math.Pi / 2, math.Pi, -math.Pi / 6}
	for i := range want {
		if math.Abs(r[i]-want[i]) > 1e-12 {
			t.Fatalf("angle %d: got %.12g want %.12g", i, r[i], want[i])
		}
	}
}

func TestHelpers(t *testing.T) {
	if imax(3, 5) != 5 || imax(-1, -2) != -1 {
		t.Fatal("imax")
	}
	if absR(-2.5) != 2.5 || absR(1) != 1 {
		t.Fatal("absR")
	}
	if isFinite(math.NaN()) || isFinite(math.Inf(-1)) || !isFinite(0) {
		t.Fatal("isFinite")
	}
}
