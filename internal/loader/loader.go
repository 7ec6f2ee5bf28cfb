// Package loader fetches raw options documents from files, an fs.FS, or
// HTTP, and wraps them as options.Document values.
package loader

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/atomistira/go-trainconf/pkg/options"
)

// Options configures the loader strategies.
type Options struct {
	// FileSystem backs SourceKindFS lookups.
	FileSystem fs.FS
	// HTTPClient overrides the client used for URL sources.
	HTTPClient *http.Client
	// AllowHTTP enables URL sources with a default client when no HTTPClient
	// is supplied.
	AllowHTTP bool
	// RequestTimeout bounds each HTTP request.
	RequestTimeout time.Duration
}

// Loader implements options.Loader for file, fs.FS, and HTTP sources.
type Loader struct {
	fs      fs.FS
	http    *http.Client
	timeout time.Duration
}

var _ options.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(opts Options) *Loader {
	timeout := opts.RequestTimeout

	var httpClient *http.Client
	switch {
	case opts.HTTPClient != nil:
		clone := *opts.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case opts.AllowHTTP:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:      opts.FileSystem,
		http:    httpClient,
		timeout: timeout,
	}
}

// Load fetches a document from the provided source and wraps it in a
// Document. The context bounds the whole fetch, HTTP requests included.
func (l *Loader) Load(ctx context.Context, src options.Source) (options.Document, error) {
	if src == nil {
		return options.Document{}, errors.New("loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return options.Document{}, err
	}
	if src.Location() == "" {
		return options.Document{}, errors.New("loader: source location is empty")
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case options.SourceKindFile:
		data, err = l.loadFile(src.Location())
	case options.SourceKindFS:
		data, err = l.loadFS(src.Location())
	case options.SourceKindURL:
		data, err = l.loadHTTP(ctx, src.Location())
	default:
		err = errors.New("loader: unsupported source kind")
	}
	if err != nil {
		return options.Document{}, err
	}

	return options.NewDocument(src, data)
}

func (l *Loader) loadFile(path string) ([]byte, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(abs)
}

func (l *Loader) loadFS(name string) ([]byte, error) {
	if l.fs == nil {
		return nil, errors.New("loader: fs is nil")
	}
	return fs.ReadFile(l.fs, name)
}

func (l *Loader) loadHTTP(ctx context.Context, url string) ([]byte, error) {
	if l.http == nil {
		return nil, errors.New("loader: http support disabled")
	}

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New("loader: unexpected status " + resp.Status)
	}

	return io.ReadAll(resp.Body)
}
