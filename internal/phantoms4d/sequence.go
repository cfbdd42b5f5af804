package phantoms4d

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

// FrameDescriptors derives the descriptors of one frame of a temporal model.
// The model is left untouched: trajectories are evaluated on a deep copy at
// t = frame/(Frames−1) and the copy is returned without motion.
func FrameDescriptors(m *Model, frame int) ([]Descriptor, error) {
	if !m.Temporal {
		return nil, newError(ErrNotTemporal, "model %d", m.ID)
	}
	if frame < 0 || frame >= m.Frames {
		return nil, newError(ErrInvalidFrameIndex, "frame %d of model %d must be in [0,%d)", frame, m.ID, m.Frames)
	}
	var derived Model
	if err := copier.CopyWithOption(&derived, m, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("copy model %d: %w", m.ID, err)
	}
	t := FrameTime(frame, m.Frames)
	for i := range derived.Objects {
		d := &derived.Objects[i]
		for p, tr := range d.Motion {
			d.Params[p] = tr.Eval(m.Objects[i].Params[p], t)
		}
		d.Motion = nil
	}
	return derived.Objects, nil
}

// FramePrimitives builds the primitives of every frame up front, so a bad
// frame fails before anything is allocated.
func FramePrimitives(m *Model) ([][]*Primitive, error) {
	frames := make([][]*Primitive, m.Frames)
	for f := range frames {
		ds, err := FrameDescriptors(m, f)
		if err != nil {
			return nil, err
		}
		prims, err := BuildAll(ds)
		if err != nil {
			return nil, fmt.Errorf("model %d frame %d: %w", m.ID, f, err)
		}
		frames[f] = prims
	}
	return frames, nil
}

// RasterizeSequence rasterizes each frame into its slot of one (frame,Z,Y,X) array.
// Frames run concurrently, bounded by workers; the frame axis keeps frame order.
func RasterizeSequence(ctx context.Context, frames [][]*Primitive, spec GridSpec, workers int) (*Array, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, newError(ErrInvalidFrameIndex, "no frames")
	}
	shape := spec.OutputShape()
	out := NewArray(len(frames), shape[0], shape[1], shape[2])
	err := runFrames(ctx, len(frames), workers, func(f, inner int) {
		rasterizeInto(out.Sub(f).Data, frames[f], spec, inner)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProjectSequence projects each frame into its slot of one (frame,row,angle,col) array.
func ProjectSequence(ctx context.Context, frames [][]*Primitive, geom Geometry, workers int) (*Array, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, newError(ErrInvalidFrameIndex, "no frames")
	}
	shape := geom.OutputShape()
	out := NewArray(len(frames), shape[0], shape[1], shape[2])
	err := runFrames(ctx, len(frames), workers, func(f, inner int) {
		projectInto(out.Sub(f).Data, frames[f], geom, inner)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// runFrames fans frames out over an errgroup; each frame gets a share of the
// worker budget for its own voxel/pixel split. Cancellation is checked per frame.
func runFrames(ctx context.Context, n, workers int, fn func(frame, inner int)) error {
	workers = resolveWorkers(workers)
	outer := workerCount(workers, n)
	inner := imax(1, workers/outer)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(outer)
	for f := 0; f < n; f++ {
		f := f
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(f, inner)
			DebugLog("frame %d/%d done", f+1, n)
			return nil
		})
	}
	return g.Wait()
}
