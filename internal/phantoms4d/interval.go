package phantoms4d

import "math"

// span is a closed parameter interval [lo, hi] along a ray; either end may be infinite.
type span struct {
	lo, hi Real
}

var fullSpan = span{math.Inf(-1), math.Inf(1)}

func (s span) intersect(o span) (span, bool) {
	lo, hi := s.lo, s.hi
	if o.lo > lo {
		lo = o.lo
	}
	if o.hi < hi {
		hi = o.hi
	}
	if hi < lo {
		return span{}, false
	}
	return span{lo, hi}, true
}

func (s span) length() Real { return s.hi - s.lo }

// slabSpan returns {t : lo ≤ o + t·d ≤ hi}.
func slabSpan(o, d, lo, hi Real) (span, bool) {
	if math.Abs(d) < epsDir {
		if o < lo || o > hi {
			return span{}, false
		}
		return fullSpan, true
	}
	t1 := (lo - o) / d
	t2 := (hi - o) / d
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return span{t1, t2}, true
}

// quadRoots returns the real roots t0 ≤ t1 of a·t² + b·t + c (a ≠ 0), using the
// cancellation-free form.
func quadRoots(a, b, c Real) (t0, t1 Real, ok bool) {
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	q := -0.5 * (b + math.Copysign(sq, b))
	if q == 0 {
		// b == 0 and disc == 0 ⇒ c == 0, double root at zero
		return 0, 0, true
	}
	t0, t1 = q/a, c/q
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1, true
}

// quadNonPositive returns the set {t : a·t² + b·t + c ≤ 0} as at most two spans.
func quadNonPositive(a, b, c Real) []span {
	scale := math.Abs(a) + math.Abs(b) + math.Abs(c)
	if math.Abs(a) <= 1e-14*scale {
		// linear (or constant) case
		if math.Abs(b) <= 1e-14*scale {
			if c <= 0 {
				return []span{fullSpan}
			}
			return nil
		}
		r := -c / b
		if b > 0 {
			return []span{{math.Inf(-1), r}}
		}
		return []span{{r, math.Inf(1)}}
	}
	t0, t1, ok := quadRoots(a, b, c)
	if a > 0 {
		if !ok {
			return nil
		}
		return []span{{t0, t1}}
	}
	if !ok {
		return []span{fullSpan}
	}
	return []span{{math.Inf(-1), t0}, {t1, math.Inf(1)}}
}

// clippedLength sums the length of spans restricted to window.
func clippedLength(spans []span, window span) Real {
	total := 0.0
	for _, s := range spans {
		if in, ok := s.intersect(window); ok {
			total += in.length()
		}
	}
	return total
}
