package resolve

import (
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// mergeMaps overlays a user document onto an architecture default table,
// guided by the schema. Objects merge key by key; positions governed by a
// oneOf are tagged variants, so the user's choice replaces the default
// wholesale instead of being merged with a different variant.
func mergeMaps(sch *jsonschema.Schema, defaults, user map[string]any) map[string]any {
	out := make(map[string]any, len(defaults)+len(user))
	for key, value := range defaults {
		out[key] = cloneValue(value)
	}
	for key, userValue := range user {
		defValue, ok := out[key]
		if !ok {
			out[key] = cloneValue(userValue)
			continue
		}
		out[key] = mergeValue(childSchema(sch, key), defValue, userValue)
	}
	return out
}

func mergeValue(sch *jsonschema.Schema, defValue, userValue any) any {
	resolved := deref(sch)
	if resolved != nil && len(resolved.OneOf) > 0 {
		return cloneValue(userValue)
	}

	userMap, userOK := userValue.(map[string]any)
	defMap, defOK := defValue.(map[string]any)
	if userOK && defOK {
		return mergeMaps(resolved, defMap, userMap)
	}
	return cloneValue(userValue)
}

// childSchema finds the subschema governing one object property, following
// declared properties first and pattern properties second.
func childSchema(sch *jsonschema.Schema, key string) *jsonschema.Schema {
	resolved := deref(sch)
	if resolved == nil {
		return nil
	}
	if child, ok := resolved.Properties[key]; ok {
		return child
	}
	for pattern, child := range resolved.PatternProperties {
		if pattern.MatchString(key) {
			return child
		}
	}
	return nil
}

func deref(sch *jsonschema.Schema) *jsonschema.Schema {
	for sch != nil && sch.Ref != nil {
		sch = sch.Ref
	}
	return sch
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
