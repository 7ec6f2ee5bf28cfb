package resolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidationError reports the first schema violation found in a document,
// with the location given both as a JSON pointer and as a dotted field path.
type ValidationError struct {
	Pointer string
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return "resolve: " + e.Message
	}
	return fmt.Sprintf("resolve: %s at %s", e.Message, e.Path)
}

// newValidationError converts the validator's cause tree into a single
// ValidationError pointing at the most specific failing location.
func newValidationError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &ValidationError{Message: strings.TrimSpace(err.Error())}
	}

	leaf := deepestCause(ve)
	return &ValidationError{
		Pointer: leaf.InstanceLocation,
		Path:    fieldPathFromPointer(leaf.InstanceLocation),
		Message: strings.TrimSpace(leaf.Message),
	}
}

// deepestCause picks the leaf cause with the most specific instance
// location, so errors point at the offending key instead of the document
// root. Ties between equally deep siblings are broken by pointer order; the
// validator iterates Go maps, so its own cause order is not document order.
func deepestCause(root *jsonschema.ValidationError) *jsonschema.ValidationError {
	var best *jsonschema.ValidationError

	var walk func(cur *jsonschema.ValidationError)
	walk = func(cur *jsonschema.ValidationError) {
		if len(cur.Causes) == 0 {
			if best == nil || moreSpecific(cur.InstanceLocation, best.InstanceLocation) {
				best = cur
			}
			return
		}
		for _, cause := range cur.Causes {
			walk(cause)
		}
	}
	walk(root)
	return best
}

func moreSpecific(a, b string) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	return a < b
}

// fieldPathFromPointer rewrites an instance JSON pointer into a dotted field
// path, e.g. "/targets/energy/forces" becomes "targets.energy.forces".
func fieldPathFromPointer(pointer string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(pointer), "#")
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return ""
	}

	parts := strings.Split(trimmed, "/")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.ReplaceAll(part, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		if segment == "" {
			continue
		}
		out = append(out, segment)
	}
	return strings.Join(out, ".")
}
