package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/atomistira/go-trainconf/pkg/options"
)

func TestLoader_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "options.yaml")
	if err := os.WriteFile(path, []byte("systems: structures.xyz\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	l := New(Options{})
	doc, err := l.Load(context.Background(), options.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != "systems: structures.xyz\n" {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}
}

func TestLoader_LoadFS(t *testing.T) {
	files := fstest.MapFS{
		"configs/options.yaml": &fstest.MapFile{Data: []byte("systems: data.xyz\n")},
	}

	l := New(Options{FileSystem: files})
	doc, err := l.Load(context.Background(), options.SourceFromFS("configs/options.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Location() != "configs/options.yaml" {
		t.Fatalf("unexpected location %q", doc.Location())
	}
}

func TestLoader_LoadHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"systems":"remote.xyz"}`))
	}))
	defer server.Close()

	l := New(Options{AllowHTTP: true})
	doc, err := l.Load(context.Background(), options.SourceFromURL(server.URL+"/options.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != `{"systems":"remote.xyz"}` {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}
}

func TestLoader_HTTPDisabledByDefault(t *testing.T) {
	l := New(Options{})
	if _, err := l.Load(context.Background(), options.SourceFromURL("https://example.com/options.yaml")); err == nil {
		t.Fatalf("expected http to be disabled")
	}
}

func TestLoader_HTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	l := New(Options{AllowHTTP: true})
	if _, err := l.Load(context.Background(), options.SourceFromURL(server.URL+"/missing.yaml")); err == nil {
		t.Fatalf("expected error for 404 response")
	}
}

func TestLoader_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "options.yaml")
	if err := os.WriteFile(path, []byte("systems: structures.xyz\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := New(Options{})
	if _, err := l.Load(ctx, options.SourceFromFile(path)); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLoader_NilSource(t *testing.T) {
	l := New(Options{})
	if _, err := l.Load(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil source")
	}
}
