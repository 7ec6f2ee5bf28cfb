// Package wizard builds starter option files interactively. It walks the user
// through an architecture choice and a minimal dataset description, then emits
// documents that resolve cleanly with the architecture defaults filled in.
package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/atomistira/go-trainconf/pkg/dataset"
	"github.com/atomistira/go-trainconf/pkg/fileio"
	"github.com/atomistira/go-trainconf/pkg/registry"
)

// Scaffold holds the documents produced by a completed Run.
type Scaffold struct {
	Architecture string
	Dataset      dataset.Config
	Hypers       map[string]any
}

// DatasetDocument renders the dataset options in document form.
func (s Scaffold) DatasetDocument() map[string]any {
	return s.Dataset.Document()
}

// HypersDocument renders the hyperparameter options in document form.
func (s Scaffold) HypersDocument() map[string]any {
	return s.Hypers
}

// Run drives the scaffolding conversation. The registry supplies the
// architecture choices and the starter hyperparameters; pass nil to use the
// built-in registry.
func Run(ctx context.Context, driver PromptDriver, reg *registry.Registry) (Scaffold, error) {
	if driver == nil {
		return Scaffold{}, fmt.Errorf("wizard: driver is required")
	}
	if reg == nil {
		reg = registry.Default()
	}

	names := reg.List()
	idx, err := driver.Select(ctx, SelectConfig{
		Message: "Architecture to train:",
		Options: names,
		Help:    "Determines which model and training options are available.",
	})
	if err != nil {
		return Scaffold{}, err
	}
	if idx < 0 || idx >= len(names) {
		return Scaffold{}, fmt.Errorf("wizard: no architecture selected")
	}

	arch, err := reg.Get(names[idx])
	if err != nil {
		return Scaffold{}, err
	}

	systemsFile, err := driver.Input(ctx, InputConfig{
		Message:   "Structure file:",
		Default:   "dataset.xyz",
		Help:      "File holding the training structures, e.g. an extended XYZ file.",
		Validator: nonEmpty("a structure file"),
	})
	if err != nil {
		return Scaffold{}, err
	}

	lengthUnit, err := driver.Input(ctx, InputConfig{
		Message: "Length unit of the structures:",
		Default: "angstrom",
	})
	if err != nil {
		return Scaffold{}, err
	}

	targetName, err := driver.Input(ctx, InputConfig{
		Message:   "Target to train on:",
		Default:   "energy",
		Validator: nonEmpty("a target name"),
	})
	if err != nil {
		return Scaffold{}, err
	}

	targetUnit, err := driver.Input(ctx, InputConfig{
		Message: "Unit of the target:",
		Default: "eV",
	})
	if err != nil {
		return Scaffold{}, err
	}

	trainForces, err := driver.Confirm(ctx, ConfirmConfig{
		Message: "Train on forces?",
		Default: true,
	})
	if err != nil {
		return Scaffold{}, err
	}

	trainStress, err := driver.Confirm(ctx, ConfirmConfig{
		Message: "Train on stress?",
		Default: false,
		Help:    "Requires stress values in the structure file.",
	})
	if err != nil {
		return Scaffold{}, err
	}

	target := dataset.Target{
		Quantity:   "energy",
		ReadFrom:   systemsFile,
		FileFormat: fileio.FormatFromPath(systemsFile),
		Key:        targetName,
		Unit:       targetUnit,
	}
	if trainForces {
		target.Forces = dataset.Gradient{
			Kind:       dataset.GradientEnabled,
			ReadFrom:   target.ReadFrom,
			FileFormat: target.FileFormat,
			Key:        "forces",
		}
	}
	if trainStress {
		target.Stress = dataset.Gradient{
			Kind:       dataset.GradientEnabled,
			ReadFrom:   target.ReadFrom,
			FileFormat: target.FileFormat,
			Key:        "stress",
		}
	}

	out := Scaffold{
		Architecture: arch.Name,
		Dataset: dataset.Config{
			Systems: dataset.Systems{
				ReadFrom:   systemsFile,
				FileFormat: fileio.FormatFromPath(systemsFile),
				LengthUnit: lengthUnit,
			},
			Targets: map[string]dataset.Target{targetName: target},
		},
		Hypers: arch.Defaults(),
	}

	if err := driver.Info(ctx, fmt.Sprintf("Scaffolded %s options for %q.", arch.Name, systemsFile)); err != nil {
		return Scaffold{}, err
	}
	return out, nil
}

func nonEmpty(what string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("please enter %s", what)
		}
		return nil
	}
}
