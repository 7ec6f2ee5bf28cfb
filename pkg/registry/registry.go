// Package registry holds the canonical configuration schemas for every
// supported model architecture plus the shared dataset schema. Schemas and
// default hyperparameter tables are embedded in the binary, compiled once,
// and never mutated afterwards.
package registry

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

//go:embed defaults/*.json
var defaultsFS embed.FS

const schemaBaseURL = "https://schemas.atomistira.dev/trainconf/"

// datasetSchemaName is the one registry entry that is not an architecture.
const datasetSchemaName = "dataset"

// ErrUnknownArchitecture reports a hyperparameter document whose name does
// not match any registered schema.
var ErrUnknownArchitecture = errors.New("unknown architecture")

// Architecture bundles one model family's compiled hyperparameter schema with
// its shipped default table.
type Architecture struct {
	Name     string
	Schema   *jsonschema.Schema
	defaults map[string]any
}

// Defaults returns a deep copy of the architecture's default hyperparameter
// document, so callers can overlay user values without touching shared state.
func (a *Architecture) Defaults() map[string]any {
	if a == nil || a.defaults == nil {
		return nil
	}
	out, _ := cloneValue(a.defaults).(map[string]any)
	return out
}

// Registry stores compiled schemas by architecture name.
type Registry struct {
	mu            sync.RWMutex
	architectures map[string]*Architecture
	dataset       *jsonschema.Schema
}

// New loads and compiles every embedded schema. It fails when a schema does
// not compile or an architecture is missing its default table.
func New() (*Registry, error) {
	r := &Registry{architectures: make(map[string]*Architecture)}

	entries, err := fs.ReadDir(schemaFS, "schemas")
	if err != nil {
		return nil, fmt.Errorf("registry: read embedded schemas: %w", err)
	}

	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		raw, err := fs.ReadFile(schemaFS, "schemas/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("registry: read schema %s: %w", entry.Name(), err)
		}

		compiled, err := compileSchema(entry.Name(), raw)
		if err != nil {
			return nil, err
		}

		if name == datasetSchemaName {
			r.dataset = compiled
			continue
		}

		defaults, err := loadDefaults(name)
		if err != nil {
			return nil, err
		}
		r.architectures[name] = &Architecture{
			Name:     name,
			Schema:   compiled,
			defaults: defaults,
		}
	}

	if r.dataset == nil {
		return nil, errors.New("registry: embedded dataset schema is missing")
	}
	if len(r.architectures) == 0 {
		return nil, errors.New("registry: no architecture schemas found")
	}
	return r, nil
}

// MustNew panics on load failure. Registry data is embedded, so a failure is
// a packaging mistake and should surface at process start.
func MustNew() *Registry {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, loading it on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = MustNew()
	})
	return defaultRegistry
}

// Get retrieves an architecture by its configuration name, e.g.
// "experimental.soap_bpnn".
func (r *Registry) Get(name string) (*Architecture, error) {
	key := strings.TrimSpace(name)
	if key == "" {
		return nil, fmt.Errorf("registry: architecture name is required: %w", ErrUnknownArchitecture)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	arch, ok := r.architectures[key]
	if !ok {
		return nil, fmt.Errorf("registry: architecture %q: %w", key, ErrUnknownArchitecture)
	}
	return arch, nil
}

// Has reports whether an architecture is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.architectures[strings.TrimSpace(name)]
	return ok
}

// List returns the sorted architecture names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.architectures))
	for name := range r.architectures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dataset returns the shared dataset schema. It is always available once the
// registry has loaded.
func (r *Registry) Dataset() *jsonschema.Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.dataset
}

func compileSchema(filename string, raw []byte) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	id := schemaBaseURL + filename
	if err := compiler.AddResource(id, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("registry: add schema %s: %w", filename, err)
	}
	compiled, err := compiler.Compile(id)
	if err != nil {
		return nil, fmt.Errorf("registry: compile schema %s: %w", filename, err)
	}
	return compiled, nil
}

func loadDefaults(name string) (map[string]any, error) {
	raw, err := fs.ReadFile(defaultsFS, "defaults/"+name+".json")
	if err != nil {
		return nil, fmt.Errorf("registry: default table for %s: %w", name, err)
	}

	var defaults map[string]any
	if err := json.Unmarshal(raw, &defaults); err != nil {
		return nil, fmt.Errorf("registry: parse default table for %s: %w", name, err)
	}

	if got, _ := defaults["name"].(string); got != name {
		return nil, fmt.Errorf("registry: default table for %s declares name %q", name, defaults["name"])
	}
	return defaults, nil
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, val := range typed {
			out[key] = cloneValue(val)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for idx, val := range typed {
			out[idx] = cloneValue(val)
		}
		return out
	default:
		return typed
	}
}
