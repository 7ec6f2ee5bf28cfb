package options

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document wraps a raw options payload and its origin. Payloads may be JSON
// or YAML; Decode normalizes both into JSON-typed values.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("options: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("options: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a defensive copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Decode parses the payload into JSON-typed values: map[string]any, []any,
// string, bool, float64, and nil. JSON is a subset of YAML, so one yaml.v3
// pass covers both syntaxes, including flow-style mappings; decoded scalars
// are then converted so downstream schema validation sees one value model
// regardless of the source syntax.
func (d Document) Decode() (any, error) {
	raw := bytes.TrimSpace(d.raw)
	if len(raw) == 0 {
		return nil, errors.New("options: document is empty")
	}

	var out any
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("options: parse document %s: %w", d.Location(), err)
	}
	converted, err := toJSONTypes(out)
	if err != nil {
		return nil, fmt.Errorf("options: document %s: %w", d.Location(), err)
	}
	return converted, nil
}

// toJSONTypes rewrites yaml.v3 decode output into the value set produced by
// encoding/json. Integer scalars become float64 and non-string map keys are
// rejected rather than coerced.
func toJSONTypes(value any) (any, error) {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, val := range typed {
			converted, err := toJSONTypes(val)
			if err != nil {
				return nil, err
			}
			out[key] = converted
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, val := range typed {
			str, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("mapping key %v is not a string", key)
			}
			converted, err := toJSONTypes(val)
			if err != nil {
				return nil, err
			}
			out[str] = converted
		}
		return out, nil
	case []any:
		out := make([]any, 0, len(typed))
		for _, val := range typed {
			converted, err := toJSONTypes(val)
			if err != nil {
				return nil, err
			}
			out = append(out, converted)
		}
		return out, nil
	case int:
		return float64(typed), nil
	case int64:
		return float64(typed), nil
	case uint64:
		return float64(typed), nil
	case float32:
		return float64(typed), nil
	default:
		return typed, nil
	}
}
