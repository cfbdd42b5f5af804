package phantoms4d

import (
	"errors"
	"fmt"
)

var (
	ErrModelNotFound        = errors.New("model not found")
	ErrMalformedDefinition  = errors.New("malformed model definition")
	ErrInvalidGeometry      = errors.New("invalid geometry")
	ErrNotTemporal          = errors.New("model is not temporal")
	ErrInvalidFrameIndex    = errors.New("invalid frame index")
	ErrUnsupportedPrimitive = errors.New("unsupported primitive")
)

// PhantomError wraps a failure with one of the sentinel kinds above,
// so callers can match with errors.Is.
type PhantomError struct {
	Kind error
	Msg  string
}

func (e *PhantomError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *PhantomError) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) error {
	return &PhantomError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func malformedf(format string, args ...any) error {
	return newError(ErrMalformedDefinition, format, args...)
}

func geometryf(format string, args ...any) error {
	return newError(ErrInvalidGeometry, format, args...)
}
