package wizard

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/atomistira/go-trainconf/pkg/dataset"
	"github.com/atomistira/go-trainconf/pkg/resolve"
)

// fakeDriver replays scripted answers in prompt order.
type fakeDriver struct {
	t        *testing.T
	inputs   []string
	confirms []bool
	selected int
	infos    []string
}

func (d *fakeDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		d.t.Fatalf("unexpected input prompt: %s", cfg.Message)
	}
	out := d.inputs[0]
	d.inputs = d.inputs[1:]
	if cfg.Validator != nil {
		if err := cfg.Validator(out); err != nil {
			return "", err
		}
	}
	return out, nil
}

func (d *fakeDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		d.t.Fatalf("unexpected confirm prompt: %s", cfg.Message)
	}
	out := d.confirms[0]
	d.confirms = d.confirms[1:]
	return out, nil
}

func (d *fakeDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if d.selected < 0 || d.selected >= len(cfg.Options) {
		d.t.Fatalf("scripted selection %d out of range for %v", d.selected, cfg.Options)
	}
	return d.selected, nil
}

func (d *fakeDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func TestRun_ScaffoldsResolvableDocuments(t *testing.T) {
	driver := &fakeDriver{
		t:        t,
		selected: 3, // experimental.soap_bpnn in sorted order
		inputs:   []string{"structures.xyz", "angstrom", "energy", "eV"},
		confirms: []bool{true, false},
	}

	out, err := Run(context.Background(), driver, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if out.Architecture != "experimental.soap_bpnn" {
		t.Fatalf("architecture = %q", out.Architecture)
	}
	if out.Dataset.Systems.ReadFrom != "structures.xyz" || out.Dataset.Systems.LengthUnit != "angstrom" {
		t.Fatalf("systems = %+v", out.Dataset.Systems)
	}

	target := out.Dataset.Targets["energy"]
	if target.Forces.Kind != dataset.GradientEnabled {
		t.Fatalf("forces kind = %v", target.Forces.Kind)
	}
	if target.Stress.Kind != dataset.GradientDisabled || target.Virial.Kind != dataset.GradientDisabled {
		t.Fatalf("stress/virial should stay disabled: %+v", target)
	}

	// Both scaffolded documents must resolve without edits.
	r := resolve.New(nil)
	resolved, err := r.Dataset(out.DatasetDocument())
	if err != nil {
		t.Fatalf("scaffolded dataset does not resolve: %v", err)
	}
	if diff := cmp.Diff(out.Dataset, resolved); diff != "" {
		t.Fatalf("resolving the scaffold changed it (-scaffold +resolved):\n%s", diff)
	}
	if _, err := r.Hypers(out.HypersDocument()); err != nil {
		t.Fatalf("scaffolded hypers do not resolve: %v", err)
	}

	if len(driver.infos) != 1 {
		t.Fatalf("expected one summary message, got %v", driver.infos)
	}
}

func TestRun_RequiresDriver(t *testing.T) {
	if _, err := Run(context.Background(), nil, nil); err == nil {
		t.Fatal("expected an error without a driver")
	}
}
