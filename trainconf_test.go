package trainconf

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/atomistira/go-trainconf/pkg/dataset"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestResolveDatasetFile(t *testing.T) {
	path := writeFile(t, "options.yaml", `
systems:
  read_from: structures.xyz
  length_unit: angstrom
targets:
  energy:
    unit: eV
    forces: true
`)

	cfg, err := ResolveDatasetFile(context.Background(), path)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Systems.LengthUnit != "angstrom" {
		t.Fatalf("systems = %+v", cfg.Systems)
	}
	if cfg.Targets["energy"].Forces.Kind != dataset.GradientEnabled {
		t.Fatalf("forces = %+v", cfg.Targets["energy"].Forces)
	}
}

func TestResolveHypersFile(t *testing.T) {
	path := writeFile(t, "hypers.yaml", `
name: experimental.gap
training:
  regularizer: 0.01
`)

	h, err := ResolveHypersFile(context.Background(), path)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if h.Name != "experimental.gap" {
		t.Fatalf("name = %q", h.Name)
	}
	if h.Training["regularizer"] != 0.01 {
		t.Fatalf("regularizer = %v", h.Training["regularizer"])
	}
	if _, ok := h.Model["soap"]; !ok {
		t.Fatalf("soap defaults missing: %v", h.Model)
	}
}

func TestResolveHypersFile_NonObject(t *testing.T) {
	path := writeFile(t, "hypers.yaml", "- just\n- a\n- list\n")

	if _, err := ResolveHypersFile(context.Background(), path); err == nil {
		t.Fatal("expected an error for non-object document")
	}
}

func TestArchitectures(t *testing.T) {
	names := Architectures()
	if len(names) != 4 {
		t.Fatalf("architectures = %v", names)
	}
}
