package trainconf

import (
	"context"
	"fmt"

	"github.com/atomistira/go-trainconf/internal/loader"
	"github.com/atomistira/go-trainconf/pkg/dataset"
	"github.com/atomistira/go-trainconf/pkg/hypers"
	"github.com/atomistira/go-trainconf/pkg/options"
	"github.com/atomistira/go-trainconf/pkg/registry"
	"github.com/atomistira/go-trainconf/pkg/resolve"
)

// DatasetConfig is the resolved dataset description; alias exported via the
// root package for convenience.
type DatasetConfig = dataset.Config

// Hypers is the resolved hyperparameter configuration.
type Hypers = hypers.Hypers

// Source identifies where an options document comes from.
type Source = options.Source

// SourceFromFile builds a filesystem-backed source.
func SourceFromFile(path string) Source {
	return options.SourceFromFile(path)
}

// SourceFromURL builds an HTTP(S) source. It panics on an invalid URL.
func SourceFromURL(raw string) Source {
	return options.SourceFromURL(raw)
}

// ResolveDataset loads a dataset options document from the source, validates
// it, and expands it into canonical form.
func ResolveDataset(ctx context.Context, src Source) (DatasetConfig, error) {
	raw, err := loadDocument(ctx, src)
	if err != nil {
		return DatasetConfig{}, err
	}
	return resolve.New(nil).Dataset(raw)
}

// ResolveDatasetFile is shorthand for ResolveDataset with a file source.
func ResolveDatasetFile(ctx context.Context, path string) (DatasetConfig, error) {
	return ResolveDataset(ctx, options.SourceFromFile(path))
}

// ResolveHypers loads a hyperparameter options document from the source,
// validates it against its architecture schema, and fills in the defaults.
func ResolveHypers(ctx context.Context, src Source) (Hypers, error) {
	raw, err := loadDocument(ctx, src)
	if err != nil {
		return Hypers{}, err
	}
	doc, ok := raw.(map[string]any)
	if !ok {
		return Hypers{}, fmt.Errorf("trainconf: hyperparameter document must be an object, got %T", raw)
	}
	return resolve.New(nil).Hypers(doc)
}

// ResolveHypersFile is shorthand for ResolveHypers with a file source.
func ResolveHypersFile(ctx context.Context, path string) (Hypers, error) {
	return ResolveHypers(ctx, options.SourceFromFile(path))
}

// Architectures lists the registered architecture names in sorted order.
func Architectures() []string {
	return registry.Default().List()
}

func loadDocument(ctx context.Context, src Source) (any, error) {
	l := loader.New(loader.Options{AllowHTTP: true})
	doc, err := l.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	return doc.Decode()
}
