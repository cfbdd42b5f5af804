package phantoms4d

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/lukaszgryglicki/phantoms4d"

// Generator runs the six phantom operations against one library store.
// It keeps no state between calls; every result is freshly allocated and owned by the caller.
type Generator struct {
	store   *LibraryStore
	workers int
	tracer  trace.Tracer
}

type Option func(*Generator)

// WithWorkers bounds the goroutines used per call (0 ⇒ runtime.NumCPU()).
func WithWorkers(n int) Option {
	return func(g *Generator) { g.workers = n }
}

// WithTracerProvider sets where operation spans go; the global provider is the default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(g *Generator) { g.tracer = tp.Tracer(instrumentationName) }
}

func NewGenerator(store *LibraryStore, opts ...Option) (*Generator, error) {
	if store == nil {
		return nil, errors.New("generator needs a library store")
	}
	g := &Generator{
		store:  store,
		tracer: otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(g)
	}
	DebugLogOnce("Generator: library %s, %d workers", store.Name(), resolveWorkers(g.workers))
	return g, nil
}

// Store is the library the generator resolves models from.
func (g *Generator) Store() *LibraryStore { return g.store }

// Volume builds the full (Z,Y,X) phantom of a model. Temporal models give their base frame.
func (g *Generator) Volume(ctx context.Context, id int, size Size) (*Array, error) {
	_, span := g.start(ctx, "Volume", id)
	out, err := g.volume(id, GridSpec{Size: size})
	return g.finish(span, out, err)
}

// VolumeSub builds only the slab sub of the full grid.
func (g *Generator) VolumeSub(ctx context.Context, id int, size Size, sub AxisSubrange) (*Array, error) {
	_, span := g.start(ctx, "VolumeSub", id)
	span.SetAttributes(
		attribute.String("subrange.axis", sub.Axis.String()),
		attribute.Int("subrange.start", sub.Start),
		attribute.Int("subrange.stop", sub.Stop),
	)
	out, err := g.volume(id, GridSpec{Size: size, Sub: &sub})
	return g.finish(span, out, err)
}

// Projection builds (row, angle, col) analytic projection data.
func (g *Generator) Projection(ctx context.Context, id int, geom Geometry) (*Array, error) {
	_, span := g.start(ctx, "Projection", id)
	span.SetAttributes(attribute.Int("geometry.angles", len(geom.Angles)))
	out, err := g.projection(id, geom)
	return g.finish(span, out, err)
}

// VolumeSequence builds the (frame,Z,Y,X) phantom of a temporal model.
func (g *Generator) VolumeSequence(ctx context.Context, id int, size Size) (*Array, error) {
	ctx, span := g.start(ctx, "VolumeSequence", id)
	out, err := g.volumeSequence(ctx, id, GridSpec{Size: size})
	return g.finish(span, out, err)
}

// VolumeSequenceSub builds the (frame,slab,Y,X) phantom of a temporal model.
func (g *Generator) VolumeSequenceSub(ctx context.Context, id int, size Size, sub AxisSubrange) (*Array, error) {
	ctx, span := g.start(ctx, "VolumeSequenceSub", id)
	span.SetAttributes(
		attribute.String("subrange.axis", sub.Axis.String()),
		attribute.Int("subrange.start", sub.Start),
		attribute.Int("subrange.stop", sub.Stop),
	)
	out, err := g.volumeSequence(ctx, id, GridSpec{Size: size, Sub: &sub})
	return g.finish(span, out, err)
}

// ProjectionSequence builds (frame,row,angle,col) projection data of a temporal model.
func (g *Generator) ProjectionSequence(ctx context.Context, id int, geom Geometry) (*Array, error) {
	ctx, span := g.start(ctx, "ProjectionSequence", id)
	span.SetAttributes(attribute.Int("geometry.angles", len(geom.Angles)))
	out, err := g.projectionSequence(ctx, id, geom)
	return g.finish(span, out, err)
}

func (g *Generator) volume(id int, spec GridSpec) (*Array, error) {
	m, err := g.store.Resolve(id)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	prims, err := m.Primitives()
	if err != nil {
		return nil, err
	}
	return Rasterize(prims, spec, g.workers)
}

func (g *Generator) projection(id int, geom Geometry) (*Array, error) {
	m, err := g.store.Resolve(id)
	if err != nil {
		return nil, err
	}
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	prims, err := m.Primitives()
	if err != nil {
		return nil, err
	}
	return Project(prims, geom, g.workers)
}

func (g *Generator) temporalModel(id int) (*Model, error) {
	m, err := g.store.Resolve(id)
	if err != nil {
		return nil, err
	}
	if !m.Temporal {
		return nil, newError(ErrNotTemporal, "model %d", id)
	}
	return m, nil
}

func (g *Generator) volumeSequence(ctx context.Context, id int, spec GridSpec) (*Array, error) {
	m, err := g.temporalModel(id)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	frames, err := FramePrimitives(m)
	if err != nil {
		return nil, err
	}
	return RasterizeSequence(ctx, frames, spec, g.workers)
}

func (g *Generator) projectionSequence(ctx context.Context, id int, geom Geometry) (*Array, error) {
	m, err := g.temporalModel(id)
	if err != nil {
		return nil, err
	}
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	frames, err := FramePrimitives(m)
	if err != nil {
		return nil, err
	}
	return ProjectSequence(ctx, frames, geom, g.workers)
}

func (g *Generator) start(ctx context.Context, op string, id int) (context.Context, trace.Span) {
	return g.tracer.Start(ctx, "phantoms4d."+op, trace.WithAttributes(attribute.Int("model.id", id)))
}

func (g *Generator) finish(span trace.Span, out *Array, err error) (*Array, error) {
	defer span.End()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.IntSlice("output.shape", out.Shape))
	return out, nil
}
