package phantoms4d

import (
	"os"
	"testing"
)

func TestLoadEnvDefaults(t *testing.T) {
	for _, k := range []string{"DEBUG", "PROFILE", "WORKERS", "LIBRARY", "CONFIG"} {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
	ec, err := LoadEnv()
	if err != nil {
		t.Fatal(err)
	}
	if ec.Debug || ec.Profile || ec.Workers != 0 || ec.Library != "" || ec.Config != DefaultConfig {
		t.Fatalf("defaults: %+v", ec)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DEBUG", "true")
	t.Setenv("PROFILE", "1")
	t.Setenv("WORKERS", "3")
	t.Setenv("LIBRARY", "/tmp/lib.dat")
	t.Setenv("CONFIG", "jobs.yaml")
	ec, err := LoadEnv()
	if err != nil {
		t.Fatal(err)
	}
	if !ec.Debug || !ec.Profile || ec.Workers != 3 || ec.Library != "/tmp/lib.dat" || ec.Config != "jobs.yaml" {
		t.Fatalf("overrides: %+v", ec)
	}
}

func TestLoadEnvInvalid(t *testing.T) {
	t.Setenv("WORKERS", "many")
	if _, err := LoadEnv(); err == nil {
		t.Fatal("expected a parse error")
	}
	t.Setenv("WORKERS", "-2")
	if _, err := LoadEnv(); err == nil {
		t.Fatal("expected an error for negative workers")
	}
}
