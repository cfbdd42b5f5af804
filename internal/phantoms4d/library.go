package phantoms4d

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

//go:embed models/Phantom3DLibrary.dat
var defaultLibrary string

// DefaultLibraryName is the name the embedded library reports in errors.
const DefaultLibraryName = "Phantom3DLibrary.dat"

// LibraryStore holds every model of one library file, parsed once at
// construction. Callers own the store and pass it to a Generator explicitly.
type LibraryStore struct {
	name     string
	models   map[int]*Model
	failures map[int]error
}

// DefaultLibrary parses the embedded model library.
func DefaultLibrary() (*LibraryStore, error) {
	return NewLibraryStore(strings.NewReader(defaultLibrary), DefaultLibraryName)
}

// OpenLibrary parses the library file at path.
func OpenLibrary(path string) (*LibraryStore, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return NewLibraryStore(fh, path)
}

// NewLibraryStore parses a library from r. Problems inside a model block are
// remembered and reported by Resolve for that id; problems outside any block
// fail the whole parse.
func NewLibraryStore(r io.Reader, name string) (*LibraryStore, error) {
	s := &LibraryStore{
		name:     name,
		models:   make(map[int]*Model),
		failures: make(map[int]error),
	}
	var cur *modelBlock
	flush := func() {
		if cur == nil {
			return
		}
		s.add(cur)
		cur = nil
	}

	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		key, fields, ok := splitRecord(sc.Text())
		if !ok {
			continue
		}
		if key == "model" {
			flush()
			id, err := parseSingleInt(fields)
			if err != nil {
				return nil, malformedf("%s:%d bad model id: %v", name, ln, err)
			}
			cur = &modelBlock{id: id, line: ln, components: -1, timeSteps: 1}
			continue
		}
		if cur == nil {
			return nil, malformedf("%s:%d %q record outside of a model block", name, ln, key)
		}
		if cur.err != nil {
			continue
		}
		if err := cur.record(key, fields); err != nil {
			cur.err = fmt.Errorf("%s:%d %w", name, ln, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()
	DebugLog("Parsed library %s: %d models, %d malformed", name, len(s.models), len(s.failures))
	return s, nil
}

func (s *LibraryStore) add(b *modelBlock) {
	if _, dup := s.models[b.id]; dup {
		delete(s.models, b.id)
		s.failures[b.id] = malformedf("%s:%d duplicate model id %d", s.name, b.line, b.id)
		return
	}
	if _, dup := s.failures[b.id]; dup {
		s.failures[b.id] = malformedf("%s:%d duplicate model id %d", s.name, b.line, b.id)
		return
	}
	m, err := b.finish()
	if err != nil {
		if b.err == nil {
			err = fmt.Errorf("%s:%d %w", s.name, b.line, err)
		}
		s.failures[b.id] = err
		return
	}
	s.models[b.id] = m
}

// Resolve returns the model with the given id.
func (s *LibraryStore) Resolve(id int) (*Model, error) {
	if err, ok := s.failures[id]; ok {
		return nil, err
	}
	m, ok := s.models[id]
	if !ok {
		return nil, newError(ErrModelNotFound, "model %d not in %s", id, s.name)
	}
	return m, nil
}

// IDs lists every model id present in the library, valid or not, ascending.
func (s *LibraryStore) IDs() []int {
	ids := make([]int, 0, len(s.models)+len(s.failures))
	for id := range s.models {
		ids = append(ids, id)
	}
	for id := range s.failures {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Name is the path (or embedded name) the library was read from.
func (s *LibraryStore) Name() string { return s.name }

// modelBlock accumulates the records between two "Model" lines.
type modelBlock struct {
	id         int
	line       int
	components int
	timeSteps  int
	objects    []Descriptor
	endvars    []*[NumParams]Real // parallel to objects
	explicit   []trajectoryRecord
	err        error
}

type trajectoryRecord struct {
	object int // 0-based
	param  Param
	tr     Trajectory
}

func (b *modelBlock) record(key string, f []string) error {
	switch key {
	case "components":
		n, err := parseSingleInt(f)
		if err != nil || n < 1 {
			return malformedf("bad component count %v", f)
		}
		b.components = n
	case "timesteps":
		n, err := parseSingleInt(f)
		if err != nil || n < 1 {
			return malformedf("bad time step count %v", f)
		}
		b.timeSteps = n
	case "object":
		if len(f) == 0 {
			return malformedf("object record without a type")
		}
		kind, err := ParseKind(f[0])
		if err != nil {
			return err
		}
		vals, err := parseParams(kind, f[1:])
		if err != nil {
			return err
		}
		b.objects = append(b.objects, Descriptor{Kind: kind, Params: vals})
		b.endvars = append(b.endvars, nil)
	case "endvar":
		if len(b.objects) == 0 {
			return malformedf("endvar record before any object")
		}
		last := len(b.objects) - 1
		if b.endvars[last] != nil {
			return malformedf("object %d already has an endvar record", last+1)
		}
		kind := b.objects[last].Kind
		if len(f) > 0 {
			if _, err := strconv.ParseFloat(f[0], 64); err != nil {
				k, err := ParseKind(f[0])
				if err != nil {
					return err
				}
				if k != kind {
					return malformedf("endvar type %s does not match object type %s", k, kind)
				}
				f = f[1:]
			}
		}
		vals, err := parseParams(kind, f)
		if err != nil {
			return err
		}
		b.endvars[last] = &vals
	case "trajectory":
		if len(f) < 3 {
			return malformedf("trajectory record needs object, parameter and kind, got %d fields", len(f))
		}
		idx, err := strconv.Atoi(f[0])
		if err != nil || idx < 1 {
			return malformedf("bad trajectory object index %q", f[0])
		}
		param, err := ParseParam(f[1])
		if err != nil {
			return err
		}
		kind, err := ParseTrajectoryKind(f[2])
		if err != nil {
			return err
		}
		args, err := parseReals(f[3:])
		if err != nil {
			return err
		}
		tr, err := NewTrajectory(kind, args)
		if err != nil {
			return err
		}
		b.explicit = append(b.explicit, trajectoryRecord{object: idx - 1, param: param, tr: tr})
	default:
		return malformedf("unknown record %q", key)
	}
	return nil
}

func (b *modelBlock) finish() (*Model, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.components >= 0 && b.components != len(b.objects) {
		return nil, malformedf("model %d declares %d components but has %d objects", b.id, b.components, len(b.objects))
	}
	temporal := b.timeSteps > 1
	hasMotion := len(b.explicit) > 0
	for _, ev := range b.endvars {
		if ev != nil {
			hasMotion = true
		}
	}
	if !temporal && hasMotion {
		return nil, malformedf("model %d has endvar/trajectory records but %d time step", b.id, b.timeSteps)
	}

	// endvar ⇒ linear motion on every parameter that changes
	for i, ev := range b.endvars {
		if ev == nil {
			continue
		}
		d := &b.objects[i]
		for p := Param(0); p < NumParams; p++ {
			if ev[p] == d.Params[p] {
				continue
			}
			if d.Motion == nil {
				d.Motion = make(map[Param]Trajectory)
			}
			d.Motion[p] = Trajectory{Kind: TrajLinear, Args: [3]Real{ev[p]}}
		}
	}

	// explicit records replace endvar motion; two on one parameter is an error
	seen := make(map[[2]int]bool)
	for _, rec := range b.explicit {
		if rec.object >= len(b.objects) {
			return nil, malformedf("model %d trajectory refers to object %d of %d", b.id, rec.object+1, len(b.objects))
		}
		key := [2]int{rec.object, int(rec.param)}
		if seen[key] {
			return nil, malformedf("model %d object %d has two trajectories for %s", b.id, rec.object+1, rec.param)
		}
		seen[key] = true
		d := &b.objects[rec.object]
		if d.Motion == nil {
			d.Motion = make(map[Param]Trajectory)
		}
		d.Motion[rec.param] = rec.tr
	}

	m := &Model{
		ID:       b.id,
		Objects:  b.objects,
		Temporal: temporal,
		Frames:   b.timeSteps,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// splitRecord turns "Key : v1 v2 ...;" into its lower-cased key and fields.
// Blank and comment lines report ok=false.
func splitRecord(line string) (key string, fields []string, ok bool) {
	if i := strings.IndexAny(line, "#%"); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	line = strings.TrimSpace(strings.TrimSuffix(line, ";"))
	if line == "" {
		return "", nil, false
	}
	k, rest, found := strings.Cut(line, ":")
	if !found {
		return strings.ToLower(strings.TrimSpace(line)), nil, true
	}
	return strings.ToLower(strings.TrimSpace(k)), strings.Fields(rest), true
}

func parseSingleInt(f []string) (int, error) {
	if len(f) != 1 {
		return 0, fmt.Errorf("expected one integer, got %d fields", len(f))
	}
	return strconv.Atoi(f[0])
}

func parseReals(f []string) ([]Real, error) {
	out := make([]Real, len(f))
	for i, s := range f {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, malformedf("bad number %q", s)
		}
		out[i] = v
	}
	return out, nil
}

func parseParams(kind Kind, f []string) ([NumParams]Real, error) {
	var out [NumParams]Real
	if len(f) != int(NumParams) {
		return out, malformedf("%s expects %d numeric fields, got %d", kind, int(NumParams), len(f))
	}
	vals, err := parseReals(f)
	if err != nil {
		return out, err
	}
	copy(out[:], vals)
	return out, nil
}
