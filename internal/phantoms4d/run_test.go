package phantoms4d

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeJobs(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunAllOps(t *testing.T) {
	path := writeJobs(t, `
jobs:
  - {op: volume, model: 1, size: 8}
  - {op: projection, model: 16, size: 8, angles: {degrees: [0, 90]}}
  - {op: volume-sub, model: 3, size: 8, subrange: {axis: x, start: 2, stop: 5}}
  - {op: volume-sequence, model: 100, size: 6}
  - {op: projection-sequence, model: 101, size: 6, detector: {rows: 4, cols: 9}, angles: {start: 0, stop: 90, count: 3}}
  - {op: volume-sequence-sub, model: 101, size: 6, subrange: {start: 1, stop: 3}}
`)
	if err := Run(context.Background(), path, EnvConfig{Workers: 2}); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRunJobShapes(t *testing.T) {
	store, _ := DefaultLibrary()
	gen, err := NewGenerator(store)
	if err != nil {
		t.Fatal(err)
	}
	jf, err := parseJobFile([]byte(`
jobs:
  - {op: projection-sequence, model: 101, size: 6, detector: {rows: 4, cols: 9}, angles: {start: 0, stop: 90, count: 3}}
`), "inline")
	if err != nil {
		t.Fatal(err)
	}
	out, err := RunJob(context.Background(), gen, jf.Jobs[0])
	if err != nil {
		t.Fatal(err)
	}
	want := []int{8, 4, 3, 9}
	for i := range want {
		if out.Shape[i] != want[i] {
			t.Fatalf("shape %v, want %v", out.Shape, want)
		}
	}
}

func TestRunErrors(t *testing.T) {
	if err := Run(context.Background(), filepath.Join(t.TempDir(), "none.yaml"), EnvConfig{}); err == nil {
		t.Fatal("missing job file must fail")
	}
	path := writeJobs(t, "jobs:\n  - {op: volume-sequence, model: 2, size: 4}\n")
	if err := Run(context.Background(), path, EnvConfig{}); !errors.Is(err, ErrNotTemporal) {
		t.Fatalf("expected ErrNotTemporal, got %v", err)
	}
	path = writeJobs(t, "jobs:\n  - {op: volume, model: 1, size: 4}\n")
	if err := Run(context.Background(), path, EnvConfig{Library: filepath.Join(t.TempDir(), "missing.dat")}); err == nil {
		t.Fatal("env library override must be used")
	}
}
