package dataset

import "sort"

// Document renders the expanded configuration back into the document shape
// accepted by the dataset schema. Every section is emitted explicitly, so
// expanding the result again reproduces the same Config.
func (c Config) Document() map[string]any {
	systems := map[string]any{
		"read_from":   c.Systems.ReadFrom,
		"file_format": c.Systems.FileFormat,
	}
	if c.Systems.LengthUnit != "" {
		systems["length_unit"] = c.Systems.LengthUnit
	}

	targets := make(map[string]any, len(c.Targets))
	names := make([]string, 0, len(c.Targets))
	for name := range c.Targets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		targets[name] = c.Targets[name].document()
	}

	return map[string]any{
		"systems": systems,
		"targets": targets,
	}
}

func (t Target) document() map[string]any {
	out := map[string]any{
		"quantity":    t.Quantity,
		"read_from":   t.ReadFrom,
		"file_format": t.FileFormat,
		"key":         t.Key,
		"forces":      t.Forces.document(),
		"stress":      t.Stress.document(),
		"virial":      t.Virial.document(),
	}
	if t.Unit != "" {
		out["unit"] = t.Unit
	}
	return out
}

// document serializes a gradient in the shape that reproduces its variant on
// the next expansion: `true`/`false` for the flag forms, a bare path for the
// from-file form, and a full object for the detailed form.
func (g Gradient) document() any {
	switch g.Kind {
	case GradientDisabled:
		return false
	case GradientEnabled:
		return true
	case GradientFromFile:
		return g.ReadFrom
	default:
		return map[string]any{
			"read_from":   g.ReadFrom,
			"file_format": g.FileFormat,
			"key":         g.Key,
		}
	}
}
