package phantoms4d

import (
	"errors"
	"testing"
)

func TestGridCoord(t *testing.T) {
	if gridCoord(32, 64) != 0 || gridCoord(0, 64) != -1 {
		t.Fatal("even grid: voxel n/2 is the origin, voxel 0 sits at -1")
	}
	if gridCoord(2, 5) != 0 || gridCoord(0, 5) != -0.8 {
		t.Fatalf("odd grid: %v %v", gridCoord(2, 5), gridCoord(0, 5))
	}
	c := axisCoords(3, 2, 8)
	if c[0] != gridCoord(3, 8) || c[1] != gridCoord(4, 8) {
		t.Fatal("axisCoords must use full-grid indices")
	}
}

func TestGridSpecValidate(t *testing.T) {
	bad := []GridSpec{
		{Size: Size{0, 4, 4}},
		{Size: Size{4, 4, -1}},
		{Size: Cube(8), Sub: &AxisSubrange{Axis: AxisZ, Start: 4, Stop: 4}},
		{Size: Cube(8), Sub: &AxisSubrange{Axis: AxisY, Start: -1, Stop: 3}},
		{Size: Cube(8), Sub: &AxisSubrange{Axis: AxisX, Start: 2, Stop: 9}},
		{Size: Cube(8), Sub: &AxisSubrange{Axis: Axis(5), Start: 0, Stop: 1}},
	}
	for i, g := range bad {
		if err := g.Validate(); !errors.Is(err, ErrInvalidGeometry) {
			t.Fatalf("case %d: expected ErrInvalidGeometry, got %v", i, err)
		}
	}
	g := GridSpec{Size: Size{8, 6, 4}, Sub: &AxisSubrange{Axis: AxisY, Start: 1, Stop: 6}}
	if err := g.Validate(); err != nil {
		t.Fatal(err)
	}
	if g.OutputShape() != [3]int{8, 5, 4} || g.offset() != [3]int{0, 1, 0} {
		t.Fatalf("shape %v offset %v", g.OutputShape(), g.offset())
	}
}

func TestParseAxis(t *testing.T) {
	for in, want := range map[string]Axis{"z": AxisZ, "Y": AxisY, " x ": AxisX, "": AxisZ, "2": AxisX} {
		if got, err := ParseAxis(in); err != nil || got != want {
			t.Fatalf("ParseAxis(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseAxis("w"); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestSplitWorkCoversRange(t *testing.T) {
	for _, workers := range []int{0, 1, 3, 64} {
		hits := make([]int, 37)
		splitWork(len(hits), workers, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				hits[i]++
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Fatalf("workers=%d: index %d visited %d times", workers, i, h)
			}
		}
	}
	if workerCount(8, 3) != 3 || resolveWorkers(0) < 1 {
		t.Fatal("worker count clamping")
	}
}
