package phantoms4d

import (
	"fmt"
	"math"
	"strings"
)

// TrajectoryKind enumerates the closed set of per-parameter time functions.
type TrajectoryKind uint8

const (
	TrajConstant TrajectoryKind = iota
	TrajLinear
	TrajSine
	numTrajectoryKinds
)

var trajectoryNames = [numTrajectoryKinds]string{
	TrajConstant: "constant",
	TrajLinear:   "linear",
	TrajSine:     "sine",
}

// accepted argument counts per kind: [min, max]
var trajectoryArity = [numTrajectoryKinds][2]int{
	TrajConstant: {0, 0},
	TrajLinear:   {1, 1},
	TrajSine:     {2, 3},
}

func (k TrajectoryKind) String() string {
	if k < numTrajectoryKinds {
		return trajectoryNames[k]
	}
	return fmt.Sprintf("trajectory(%d)", uint8(k))
}

func ParseTrajectoryKind(s string) (TrajectoryKind, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	for k, name := range trajectoryNames {
		if name == t {
			return TrajectoryKind(k), nil
		}
	}
	return 0, malformedf("unknown trajectory kind %q", s)
}

// Trajectory moves one parameter over normalized frame time t ∈ [0,1].
// Every kind satisfies Eval(base, 0) == base.
//   - constant: holds base
//   - linear:   Args[0] is the end value
//   - sine:     Args[0] amplitude, Args[1] cycles over the sequence, Args[2] phase (radians)
type Trajectory struct {
	Kind TrajectoryKind
	Args [3]Real
}

// NewTrajectory builds a trajectory from library arguments; a sine phase is given in degrees.
func NewTrajectory(kind TrajectoryKind, args []Real) (Trajectory, error) {
	if kind >= numTrajectoryKinds {
		return Trajectory{}, malformedf("%s", kind)
	}
	ar := trajectoryArity[kind]
	if len(args) < ar[0] || len(args) > ar[1] {
		if ar[0] == ar[1] {
			return Trajectory{}, malformedf("%s trajectory expects %d argument(s), got %d", kind, ar[0], len(args))
		}
		return Trajectory{}, malformedf("%s trajectory expects %d to %d arguments, got %d", kind, ar[0], ar[1], len(args))
	}
	tr := Trajectory{Kind: kind}
	for i, a := range args {
		if !isFinite(a) {
			return Trajectory{}, malformedf("%s trajectory argument %d is not finite", kind, i+1)
		}
		tr.Args[i] = a
	}
	if kind == TrajSine {
		tr.Args[2] *= math.Pi / 180
	}
	return tr, nil
}

// Eval returns the parameter value at normalized time t.
func (tr Trajectory) Eval(base, t Real) Real {
	switch tr.Kind {
	case TrajLinear:
		return base + (tr.Args[0]-base)*t
	case TrajSine:
		amp, cycles, phase := tr.Args[0], tr.Args[1], tr.Args[2]
		return base + amp*(math.Sin(2*math.Pi*cycles*t+phase)-math.Sin(phase))
	default:
		return base
	}
}

// lowerBound is the minimum of Eval over t ∈ [0,1].
func (tr Trajectory) lowerBound(base Real) Real {
	switch tr.Kind {
	case TrajLinear:
		return math.Min(base, tr.Args[0])
	case TrajSine:
		amp, cycles, phase := tr.Args[0], tr.Args[1], tr.Args[2]
		lo, hi := sineRange(phase, phase+2*math.Pi*cycles)
		if amp < 0 {
			lo = hi
		}
		return base + amp*(lo-math.Sin(phase))
	default:
		return base
	}
}

// sineRange returns the extremes of sin over the closed interval between a and b.
func sineRange(a, b Real) (lo, hi Real) {
	if a > b {
		a, b = b, a
	}
	lo, hi = math.Sin(a), math.Sin(b)
	if lo > hi {
		lo, hi = hi, lo
	}
	if reaches(a, b, -math.Pi/2) {
		lo = -1
	}
	if reaches(a, b, math.Pi/2) {
		hi = 1
	}
	return lo, hi
}

// reaches reports whether x0 + 2πk lies in [a, b] for some integer k.
func reaches(a, b, x0 Real) bool {
	k := math.Ceil((a - x0) / (2 * math.Pi))
	return x0+2*math.Pi*k <= b
}

// FrameTime maps a frame index onto [0,1]; a single frame sits at 0.
func FrameTime(frame, frames int) Real {
	if frames <= 1 {
		return 0
	}
	return Real(frame) / Real(frames-1)
}
