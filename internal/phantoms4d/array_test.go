package phantoms4d

import (
	"math"
	"testing"
)

func TestArrayIndexing(t *testing.T) {
	a := NewArray(2, 3, 4)
	if a.Dims() != 3 || a.Len() != 24 {
		t.Fatalf("dims=%d len=%d", a.Dims(), a.Len())
	}
	a.Set(7, 1, 2, 3)
	if a.Data[23] != 7 || a.At(1, 2, 3) != 7 {
		t.Fatal("row-major layout broken")
	}
	if a.Index(1, 0, 0) != 12 || a.Index(0, 1, 0) != 4 {
		t.Fatal("strides wrong")
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("out of range index must panic")
			}
		}()
		a.At(2, 0, 0)
	}()
}

func TestArraySubIsView(t *testing.T) {
	a := NewArray(3, 2, 2)
	s := a.Sub(1)
	if len(s.Shape) != 2 || s.Shape[0] != 2 || s.Len() != 4 {
		t.Fatalf("sub shape %v", s.Shape)
	}
	s.Set(5, 1, 1)
	if a.At(1, 1, 1) != 5 {
		t.Fatal("Sub must share storage")
	}
}

func TestArraySwapAxes(t *testing.T) {
	a := NewArray(2, 3, 4)
	for i := range a.Data {
		a.Data[i] = Real(i)
	}
	b := a.SwapAxes(0, 1)
	if b.Shape[0] != 3 || b.Shape[1] != 2 || b.Shape[2] != 4 {
		t.Fatalf("swapped shape %v", b.Shape)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				if a.At(i, j, k) != b.At(j, i, k) {
					t.Fatalf("mismatch at (%d,%d,%d)", i, j, k)
				}
			}
		}
	}
	if !b.SwapAxes(0, 1).Equal(a) {
		t.Fatal("swapping twice must restore the array")
	}
}

func TestArrayEqualIsBitwise(t *testing.T) {
	a := NewArray(2)
	b := NewArray(2)
	b.Data[1] = math.Copysign(0, -1)
	if a.Equal(b) {
		t.Fatal("-0 and +0 must differ bitwise")
	}
	if a.Equal(NewArray(1, 2)) {
		t.Fatal("different shapes must differ")
	}
	f := a.Float32()
	if len(f) != 2 || f[0] != 0 {
		t.Fatalf("Float32: %v", f)
	}
}
