// Package resolve validates raw configuration documents against the schema
// registry and produces fully defaulted, typed configurations. Resolution is
// a pure function of the document: it never mutates shared state and is safe
// to re-invoke.
package resolve

import (
	"fmt"

	"github.com/atomistira/go-trainconf/pkg/dataset"
	"github.com/atomistira/go-trainconf/pkg/hypers"
	"github.com/atomistira/go-trainconf/pkg/registry"
)

// Resolver validates and default-fills configuration documents.
type Resolver struct {
	registry *registry.Registry
}

// New constructs a Resolver. A nil registry selects the process-wide one.
func New(reg *registry.Registry) *Resolver {
	if reg == nil {
		reg = registry.Default()
	}
	return &Resolver{registry: reg}
}

// Dataset validates a dataset document and expands it into a Config with
// every optional section present.
func (r *Resolver) Dataset(raw any) (dataset.Config, error) {
	if err := r.registry.Dataset().Validate(raw); err != nil {
		return dataset.Config{}, newValidationError(err)
	}
	return dataset.Expand(raw)
}

// Hypers reads the architecture name from a hyperparameter document, looks
// up the matching schema, validates the document, and overlays it onto the
// architecture's default table.
func (r *Resolver) Hypers(raw map[string]any) (hypers.Hypers, error) {
	if raw == nil {
		return hypers.Hypers{}, fmt.Errorf("resolve: hyperparameter document is nil")
	}

	name, _ := raw["name"].(string)
	if name == "" {
		return hypers.Hypers{}, fmt.Errorf("resolve: hyperparameter document has no architecture name: %w", registry.ErrUnknownArchitecture)
	}

	arch, err := r.registry.Get(name)
	if err != nil {
		return hypers.Hypers{}, err
	}

	if err := arch.Schema.Validate(raw); err != nil {
		return hypers.Hypers{}, newValidationError(err)
	}

	merged := mergeMaps(arch.Schema, arch.Defaults(), raw)
	return hypers.FromDocument(merged)
}
