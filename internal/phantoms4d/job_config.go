package phantoms4d

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Op names one of the six generator operations in a job file.
type Op string

const (
	OpVolume             Op = "volume"
	OpProjection         Op = "projection"
	OpVolumeSub          Op = "volume-sub"
	OpVolumeSequence     Op = "volume-sequence"
	OpProjectionSequence Op = "projection-sequence"
	OpVolumeSequenceSub  Op = "volume-sequence-sub"
)

func (o Op) valid() bool {
	switch o {
	case OpVolume, OpProjection, OpVolumeSub, OpVolumeSequence, OpProjectionSequence, OpVolumeSequenceSub:
		return true
	}
	return false
}

func (o Op) needsSubrange() bool { return o == OpVolumeSub || o == OpVolumeSequenceSub }
func (o Op) projects() bool     { return o == OpProjection || o == OpProjectionSequence }

type SubrangeCfg struct {
	Axis  string `yaml:"axis,omitempty"`
	Start int    `yaml:"start"`
	Stop  int    `yaml:"stop"`
}

type DetectorCfg struct {
	Rows int `yaml:"rows,omitempty"`
	Cols int `yaml:"cols,omitempty"`
}

// Angles in degrees, either an explicit list or linspace(start, stop, count).
type AnglesCfg struct {
	Start   Real   `yaml:"start"`
	Stop    Real   `yaml:"stop"`
	Count   int    `yaml:"count,omitempty"`
	Degrees []Real `yaml:"degrees,omitempty"`
}

type JobCfg struct {
	Name     string       `yaml:"name"`
	Op       Op           `yaml:"op"`
	Model    int          `yaml:"model"`
	Size     Size         `yaml:"size"`
	Subrange *SubrangeCfg `yaml:"subrange,omitempty"`
	Detector DetectorCfg  `yaml:"detector,omitempty"`
	Angles   AnglesCfg    `yaml:"angles,omitempty"`
}

type JobFile struct {
	Library string   `yaml:"library,omitempty"`
	Workers int      `yaml:"workers,omitempty"`
	Jobs    []JobCfg `yaml:"jobs"`
}

// UnmarshalYAML accepts a scalar (cubic grid) or a [z, y, x] sequence.
func (s *Size) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var n int
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("size: %w", err)
		}
		*s = Cube(n)
		return nil
	case yaml.SequenceNode:
		var d []int
		if err := node.Decode(&d); err != nil {
			return fmt.Errorf("size: %w", err)
		}
		if len(d) != 3 {
			return fmt.Errorf("size: expected [z, y, x], got %d values", len(d))
		}
		*s = Size{Z: d[0], Y: d[1], X: d[2]}
		return nil
	}
	return fmt.Errorf("size: expected a number or a [z, y, x] list at line %d", node.Line)
}

// MarshalYAML writes cubic sizes back as a scalar.
func (s Size) MarshalYAML() (interface{}, error) {
	if s.Z == s.Y && s.Y == s.X {
		return s.Z, nil
	}
	return []int{s.Z, s.Y, s.X}, nil
}

// AngleList resolves the configured angles in degrees.
func (a AnglesCfg) AngleList() []Real {
	if len(a.Degrees) > 0 {
		return append([]Real(nil), a.Degrees...)
	}
	return Linspace(a.Start, a.Stop, a.Count)
}

// subrange converts the job's slab into an AxisSubrange.
func (j JobCfg) subrange() (AxisSubrange, error) {
	if j.Subrange == nil {
		return AxisSubrange{}, geometryf("job %q: op %s needs a subrange", j.Name, j.Op)
	}
	ax, err := ParseAxis(j.Subrange.Axis)
	if err != nil {
		return AxisSubrange{}, err
	}
	return AxisSubrange{Axis: ax, Start: j.Subrange.Start, Stop: j.Subrange.Stop}, nil
}

// geometry builds the job's acquisition geometry from the grid's largest axis.
func (j JobCfg) geometry() (Geometry, error) {
	n := imax(j.Size.X, imax(j.Size.Y, j.Size.Z))
	return NewGeometry(n, j.Detector.Cols, j.Detector.Rows, j.Angles.AngleList())
}

func loadJobFile(path string) (*JobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseJobFile(data, path)
}

func parseJobFile(data []byte, path string) (*JobFile, error) {
	var jf JobFile
	if err := yaml.Unmarshal(data, &jf); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(jf.Jobs) == 0 {
		return nil, fmt.Errorf("%s: job file has no jobs", path)
	}
	// Defaults / validation
	for i := range jf.Jobs {
		j := &jf.Jobs[i]
		j.Op = Op(strings.ToLower(strings.TrimSpace(string(j.Op))))
		if j.Name == "" {
			j.Name = fmt.Sprintf("job%d", i+1)
		}
		if !j.Op.valid() {
			return nil, fmt.Errorf("%s: job %q has unknown op %q", path, j.Name, j.Op)
		}
		if j.Size == (Size{}) {
			return nil, fmt.Errorf("%s: job %q has no size", path, j.Name)
		}
		if j.Op.needsSubrange() && j.Subrange == nil {
			return nil, fmt.Errorf("%s: job %q (%s) needs a subrange", path, j.Name, j.Op)
		}
		if j.Op.projects() {
			n := imax(j.Size.X, imax(j.Size.Y, j.Size.Z))
			if j.Detector.Cols <= 0 {
				j.Detector.Cols = int(math.Sqrt2 * Real(n))
			}
			if j.Detector.Rows <= 0 {
				j.Detector.Rows = n
			}
			if len(j.Angles.Degrees) == 0 && j.Angles.Count <= 0 {
				j.Angles.Count = int(0.5 * math.Pi * Real(n))
				if j.Angles.Stop == 0 {
					j.Angles.Stop = 179.9
				}
			}
		}
	}
	DebugLog("Loaded job file %s: %d jobs, library=%q, workers=%d", path, len(jf.Jobs), jf.Library, jf.Workers)
	return &jf, nil
}
