package phantoms4d

import "fmt"

// Model is a resolved phantom definition. It is immutable once returned by a
// LibraryStore; per-frame descriptors are derived copies.
type Model struct {
	ID       int
	Objects  []Descriptor
	Temporal bool
	Frames   int // 1 for static models
}

// Validate checks the model as a whole: at least one object, a sane frame
// count, motion only on temporal models, and every descriptor valid.
func (m *Model) Validate() error {
	if len(m.Objects) == 0 {
		return malformedf("model %d has no objects", m.ID)
	}
	if m.Frames < 1 {
		return malformedf("model %d has %d frames", m.ID, m.Frames)
	}
	for i, d := range m.Objects {
		if !m.Temporal && len(d.Motion) > 0 {
			return malformedf("model %d object %d has trajectories but the model is static", m.ID, i+1)
		}
		if err := d.Validate(); err != nil {
			return fmt.Errorf("model %d object %d: %w", m.ID, i+1, err)
		}
	}
	return nil
}

// Primitives builds the base (frame 0 / trajectory-free) primitive list.
func (m *Model) Primitives() ([]*Primitive, error) {
	return BuildAll(m.Objects)
}
