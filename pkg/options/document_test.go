package options

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewDocument_RequiresSourceAndPayload(t *testing.T) {
	if _, err := NewDocument(nil, []byte("{}")); err == nil {
		t.Fatalf("expected error for nil source")
	}
	if _, err := NewDocument(SourceFromFS("options.yaml"), nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}

func TestDocument_DecodeJSON(t *testing.T) {
	raw := `{"systems":"structures.xyz","targets":{"energy":{"unit":"eV"}}}`
	doc := MustNewDocument(SourceFromFS("options.json"), []byte(raw))

	decoded, err := doc.Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := map[string]any{
		"systems": "structures.xyz",
		"targets": map[string]any{
			"energy": map[string]any{"unit": "eV"},
		},
	}
	if diff := cmp.Diff(want, decoded); diff != "" {
		t.Fatalf("decoded document mismatch (-want +got):\n%s", diff)
	}
}

func TestDocument_DecodeYAMLFlowMapping(t *testing.T) {
	// Starts with '{' like JSON but uses unquoted YAML flow syntax.
	raw := `{systems: structures.xyz, targets: {energy: {unit: eV}}}`
	doc := MustNewDocument(SourceFromFS("options.yaml"), []byte(raw))

	decoded, err := doc.Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := map[string]any{
		"systems": "structures.xyz",
		"targets": map[string]any{
			"energy": map[string]any{"unit": "eV"},
		},
	}
	if diff := cmp.Diff(want, decoded); diff != "" {
		t.Fatalf("decoded document mismatch (-want +got):\n%s", diff)
	}
}

func TestDocument_DecodeYAMLNormalizesScalars(t *testing.T) {
	raw := `
name: experimental.soap_bpnn
training:
  batch_size: 8
  learning_rate: 0.001
  per_structure_targets: []
`
	doc := MustNewDocument(SourceFromFS("options.yaml"), []byte(raw))

	decoded, err := doc.Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	payload, ok := decoded.(map[string]any)
	if !ok {
		t.Fatalf("expected object, got %T", decoded)
	}
	training := payload["training"].(map[string]any)
	if _, ok := training["batch_size"].(float64); !ok {
		t.Fatalf("expected batch_size to decode as float64, got %T", training["batch_size"])
	}
	if _, ok := training["per_structure_targets"].([]any); !ok {
		t.Fatalf("expected per_structure_targets to decode as []any, got %T", training["per_structure_targets"])
	}
}

func TestDocument_DecodeBareString(t *testing.T) {
	doc := MustNewDocument(SourceFromFS("options.yaml"), []byte("dataset.xyz"))

	decoded, err := doc.Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded != "dataset.xyz" {
		t.Fatalf("expected bare string document, got %#v", decoded)
	}
}

func TestDocument_RawIsDefensiveCopy(t *testing.T) {
	raw := []byte(`{"a":1}`)
	doc := MustNewDocument(SourceFromFile("options.json"), raw)

	copied := doc.Raw()
	copied[0] = 'X'
	if doc.Raw()[0] != '{' {
		t.Fatalf("expected Raw to return a copy")
	}
}

func TestSourceKinds(t *testing.T) {
	if got := SourceFromFile("a/b.yaml").Kind(); got != SourceKindFile {
		t.Fatalf("file kind = %q", got)
	}
	if got := SourceFromFS("b.yaml").Kind(); got != SourceKindFS {
		t.Fatalf("fs kind = %q", got)
	}
	if got := SourceFromURL("https://example.com/options.yaml").Kind(); got != SourceKindURL {
		t.Fatalf("url kind = %q", got)
	}
}
