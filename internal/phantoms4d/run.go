package phantoms4d

import (
	"context"
	"fmt"
	"time"
)

// Run executes every job of the job file at cfgPath and prints a report per job.
// Environment settings override the job file's library and worker count.
func Run(ctx context.Context, cfgPath string, ec EnvConfig) error {
	jf, err := loadJobFile(cfgPath)
	if err != nil {
		return err
	}
	libPath := jf.Library
	if ec.Library != "" {
		libPath = ec.Library
	}
	workers := jf.Workers
	if ec.Workers > 0 {
		workers = ec.Workers
	}

	var store *LibraryStore
	if libPath == "" {
		store, err = DefaultLibrary()
	} else {
		store, err = OpenLibrary(libPath)
	}
	if err != nil {
		return err
	}
	gen, err := NewGenerator(store, WithWorkers(workers))
	if err != nil {
		return err
	}

	for _, job := range jf.Jobs {
		start := time.Now()
		out, err := RunJob(ctx, gen, job)
		if err != nil {
			return fmt.Errorf("job %q: %w", job.Name, err)
		}
		elapsed := time.Since(start)
		s := Summarize(out)
		fmt.Printf("Phantom %q (%s, model %d) has been built in %s: shape=%v\n", job.Name, job.Op, job.Model, elapsed, out.Shape)
		if Debug {
			fmt.Printf("  min=%.6g max=%.6g mean=%.6g std=%.6g sum=%.6g\n", s.Min, s.Max, s.Mean, s.StdDev, s.Sum)
		}
		DebugLog("job %q: %+v", job.Name, s)
	}
	return nil
}

// RunJob dispatches one job to the matching generator operation.
func RunJob(ctx context.Context, gen *Generator, job JobCfg) (*Array, error) {
	switch job.Op {
	case OpVolume:
		return gen.Volume(ctx, job.Model, job.Size)
	case OpVolumeSub:
		sub, err := job.subrange()
		if err != nil {
			return nil, err
		}
		return gen.VolumeSub(ctx, job.Model, job.Size, sub)
	case OpProjection:
		geom, err := job.geometry()
		if err != nil {
			return nil, err
		}
		return gen.Projection(ctx, job.Model, geom)
	case OpVolumeSequence:
		return gen.VolumeSequence(ctx, job.Model, job.Size)
	case OpVolumeSequenceSub:
		sub, err := job.subrange()
		if err != nil {
			return nil, err
		}
		return gen.VolumeSequenceSub(ctx, job.Model, job.Size, sub)
	case OpProjectionSequence:
		geom, err := job.geometry()
		if err != nil {
			return nil, err
		}
		return gen.ProjectionSequence(ctx, job.Model, geom)
	}
	return nil, fmt.Errorf("unknown op %q", job.Op)
}
