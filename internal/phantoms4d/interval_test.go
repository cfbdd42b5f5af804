package phantoms4d

import (
	"math"
	"testing"
)

func TestSlabSpan(t *testing.T) {
	s, ok := slabSpan(0, 1, -1, 1)
	if !ok || s.lo != -1 || s.hi != 1 {
		t.Fatalf("unexpected span %+v ok=%v", s, ok)
	}
	s, ok = slabSpan(0, -2, -1, 1)
	if !ok || s.lo != -0.5 || s.hi != 0.5 {
		t.Fatalf("reversed direction should be ordered: %+v", s)
	}
	// parallel inside and outside
	if s, ok = slabSpan(0.5, 0, -1, 1); !ok || !math.IsInf(s.lo, -1) || !math.IsInf(s.hi, 1) {
		t.Fatalf("parallel inside should be the full line: %+v ok=%v", s, ok)
	}
	if _, ok = slabSpan(1.5, 0, -1, 1); ok {
		t.Fatal("parallel outside should miss")
	}
}

func TestQuadRoots(t *testing.T) {
	// (t-1)(t-3) = t^2 - 4t + 3
	t0, t1, ok := quadRoots(1, -4, 3)
	if !ok || math.Abs(t0-1) > 1e-12 || math.Abs(t1-3) > 1e-12 {
		t.Fatalf("roots: %v %v %v", t0, t1, ok)
	}
	if _, _, ok := quadRoots(1, 0, 1); ok {
		t.Fatal("t^2+1 has no real roots")
	}
	// Tiny root next to a large one stays accurate.
	t0, _, _ = quadRoots(1, -1e8, 1)
	if math.Abs(t0-1e-8)/1e-8 > 1e-9 {
		t.Fatalf("small root lost precision: %.17g", t0)
	}
}

func TestQuadNonPositive(t *testing.T) {
	// t^2 - 1 <= 0 on [-1, 1]
	sp := quadNonPositive(1, 0, -1)
	if len(sp) != 1 || math.Abs(sp[0].lo+1) > 1e-12 || math.Abs(sp[0].hi-1) > 1e-12 {
		t.Fatalf("convex case: %+v", sp)
	}
	// -t^2 + 1 <= 0 outside (-1, 1)
	sp = quadNonPositive(-1, 0, 1)
	if len(sp) != 2 || !math.IsInf(sp[0].lo, -1) || !math.IsInf(sp[1].hi, 1) {
		t.Fatalf("concave case: %+v", sp)
	}
	if got := clippedLength(sp, span{-3, 3}); math.Abs(got-4) > 1e-12 {
		t.Fatalf("clipped concave length = %v, want 4", got)
	}
	// linear: 2t - 1 <= 0 for t <= 0.5
	sp = quadNonPositive(0, 2, -1)
	if len(sp) != 1 || !math.IsInf(sp[0].lo, -1) || sp[0].hi != 0.5 {
		t.Fatalf("linear case: %+v", sp)
	}
	// constant
	if sp = quadNonPositive(0, 0, 1); sp != nil {
		t.Fatalf("positive constant should be empty: %+v", sp)
	}
	if sp = quadNonPositive(0, 0, -1); len(sp) != 1 {
		t.Fatalf("negative constant should be the full line: %+v", sp)
	}
}

func TestSpanIntersect(t *testing.T) {
	a := span{0, 2}
	if in, ok := a.intersect(span{1, 5}); !ok || in != (span{1, 2}) {
		t.Fatalf("overlap: %+v %v", in, ok)
	}
	if _, ok := a.intersect(span{3, 4}); ok {
		t.Fatal("disjoint spans should not intersect")
	}
}

func TestLineAABB(t *testing.T) {
	min, max := Point3{-1, -1, -1}, Point3{1, 1, 1}
	D := Vector3{0, 1, 0}
	rr := newRayRecips(D)
	if !lineAABB(Point3{0, 5, 0}, min, max, rr) {
		t.Fatal("line through box behind origin must hit: lines are not rays")
	}
	if lineAABB(Point3{2, 0, 0}, min, max, rr) {
		t.Fatal("parallel line outside box must miss")
	}
	D = Vector3{1, 1, 0}.Norm()
	if lineAABB(Point3{0, 3, 0}, min, max, newRayRecips(D)) {
		t.Fatal("diagonal line passing beside the box must miss")
	}
}
