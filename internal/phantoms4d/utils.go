package phantoms4d

import "math"

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absR(x Real) Real {
	if x < 0 {
		return -x
	}
	return x
}

// DegToRad converts a list of angles in degrees to radians.
func DegToRad(deg []Real) []Real {
	out := make([]Real, len(deg))
	for i, d := range deg {
		out[i] = d * math.Pi / 180
	}
	return out
}

// Linspace returns n evenly spaced values over [start, stop], endpoint included.
func Linspace(start, stop Real, n int) []Real {
	if n <= 0 {
		return nil
	}
	out := make([]Real, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / Real(n-1)
	for i := range out {
		out[i] = start + Real(i)*step
	}
	out[n-1] = stop
	return out
}
