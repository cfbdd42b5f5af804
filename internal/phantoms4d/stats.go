package phantoms4d

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds value statistics of a generated array.
type Summary struct {
	Count  int
	Min    Real
	Max    Real
	Mean   Real
	StdDev Real
	Sum    Real
}

func Summarize(a *Array) Summary {
	s := Summary{Count: len(a.Data)}
	if s.Count == 0 {
		return s
	}
	s.Min = floats.Min(a.Data)
	s.Max = floats.Max(a.Data)
	s.Sum = floats.Sum(a.Data)
	if s.Count == 1 {
		s.Mean = a.Data[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(a.Data, nil)
	return s
}
