package options

import "context"

// Loader fetches raw options documents from a Source.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}
