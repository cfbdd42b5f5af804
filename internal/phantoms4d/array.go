package phantoms4d

import (
	"fmt"
	"math"
)

// Array is a dense row-major n-dimensional array. Volumes are (Z,Y,X),
// projections (row, angle, col); sequences prepend a frame axis.
type Array struct {
	Shape   []int
	Data    []Real
	strides []int
}

// NewArray allocates a zero-filled array. All dimensions must be positive.
func NewArray(shape ...int) *Array {
	total := 1
	for _, n := range shape {
		if n <= 0 {
			panic(fmt.Sprintf("array dimensions must be positive, got %v", shape))
		}
		total *= n
	}
	return wrapArray(make([]Real, total), shape)
}

func wrapArray(data []Real, shape []int) *Array {
	a := &Array{
		Shape:   append([]int(nil), shape...),
		Data:    data,
		strides: make([]int, len(shape)),
	}
	stride := 1
	for i := len(shape) - 1; i >= 0; i-- {
		a.strides[i] = stride
		stride *= shape[i]
	}
	return a
}

// Dims is the number of axes.
func (a *Array) Dims() int { return len(a.Shape) }

// Len is the number of elements.
func (a *Array) Len() int { return len(a.Data) }

// Index returns the flat offset of a multi-index.
func (a *Array) Index(idx ...int) int {
	if len(idx) != len(a.Shape) {
		panic(fmt.Sprintf("index %v has %d axes, array has %d", idx, len(idx), len(a.Shape)))
	}
	off := 0
	for i, v := range idx {
		if v < 0 || v >= a.Shape[i] {
			panic(fmt.Sprintf("index %v out of range for shape %v", idx, a.Shape))
		}
		off += v * a.strides[i]
	}
	return off
}

func (a *Array) At(idx ...int) Real     { return a.Data[a.Index(idx...)] }
func (a *Array) Set(v Real, idx ...int) { a.Data[a.Index(idx...)] = v }

// Sub returns the i-th slab along the leading axis as a view sharing Data.
func (a *Array) Sub(i int) *Array {
	if len(a.Shape) < 2 || i < 0 || i >= a.Shape[0] {
		panic(fmt.Sprintf("sub %d out of range for shape %v", i, a.Shape))
	}
	n := a.strides[0]
	return wrapArray(a.Data[i*n:(i+1)*n:(i+1)*n], a.Shape[1:])
}

// SwapAxes returns a copy with axes i and j exchanged, e.g. SwapAxes(0, 1)
// turns a (row, angle, col) projection into (angle, row, col).
func (a *Array) SwapAxes(i, j int) *Array {
	shape := append([]int(nil), a.Shape...)
	shape[i], shape[j] = shape[j], shape[i]
	out := NewArray(shape...)
	src := make([]int, len(a.Shape))
	for off := range a.Data {
		rem := off
		for k := range src {
			src[k] = rem / a.strides[k]
			rem %= a.strides[k]
		}
		src[i], src[j] = src[j], src[i]
		dst := 0
		for k, v := range src {
			dst += v * out.strides[k]
		}
		out.Data[dst] = a.Data[off]
	}
	return out
}

// Float32 converts the data for consumers that work in single precision.
func (a *Array) Float32() []float32 {
	out := make([]float32, len(a.Data))
	for i, v := range a.Data {
		out[i] = float32(v)
	}
	return out
}

// Equal reports whether both arrays have the same shape and bit-identical data.
func (a *Array) Equal(b *Array) bool {
	if len(a.Shape) != len(b.Shape) || len(a.Data) != len(b.Data) {
		return false
	}
	for i := range a.Shape {
		if a.Shape[i] != b.Shape[i] {
			return false
		}
	}
	for i := range a.Data {
		if math.Float64bits(a.Data[i]) != math.Float64bits(b.Data[i]) {
			return false
		}
	}
	return true
}
