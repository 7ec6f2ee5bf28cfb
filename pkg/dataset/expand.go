package dataset

import (
	"fmt"
	"sort"

	"github.com/atomistira/go-trainconf/pkg/fileio"
)

// quantityEnergy is the default quantity for targets that do not declare one.
const quantityEnergy = "energy"

// defaultTargetName is the target added when a document is a bare file path.
const defaultTargetName = "energy"

// Expand normalizes a schema-valid dataset document into a Config. A bare
// string document is shorthand for reading systems and an energy target from
// the same file. Expansion is a pure function of the document and safe to
// re-invoke.
func Expand(raw any) (Config, error) {
	switch doc := raw.(type) {
	case string:
		return expandShorthand(doc)
	case map[string]any:
		return expandDocument(doc)
	default:
		return Config{}, fmt.Errorf("dataset: document must be a string or an object, got %T", raw)
	}
}

func expandShorthand(readFrom string) (Config, error) {
	if readFrom == "" {
		return Config{}, fmt.Errorf("dataset: document path is empty")
	}

	format := fileio.FormatFromPath(readFrom)
	target := Target{
		Quantity:   quantityEnergy,
		ReadFrom:   readFrom,
		FileFormat: format,
		Key:        defaultTargetName,
	}
	target.Forces = enabledGradient(target, "forces")
	target.Stress = enabledGradient(target, "stress")
	target.Virial = Gradient{Kind: GradientDisabled}

	return Config{
		Systems: Systems{ReadFrom: readFrom, FileFormat: format},
		Targets: map[string]Target{defaultTargetName: target},
	}, nil
}

func expandDocument(doc map[string]any) (Config, error) {
	sysRaw, ok := doc["systems"]
	if !ok {
		return Config{}, fmt.Errorf("dataset: systems section is required")
	}
	systems, err := parseSystems(sysRaw)
	if err != nil {
		return Config{}, err
	}

	out := Config{Systems: systems, Targets: map[string]Target{}}

	targetsRaw, ok := doc["targets"]
	if !ok {
		return out, nil
	}
	targets, ok := targetsRaw.(map[string]any)
	if !ok {
		return Config{}, fmt.Errorf("dataset: targets must be an object, got %T", targetsRaw)
	}

	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		target, err := parseTarget(name, targets[name], systems)
		if err != nil {
			return Config{}, err
		}
		out.Targets[name] = target
	}
	return out, nil
}

func parseSystems(raw any) (Systems, error) {
	switch typed := raw.(type) {
	case string:
		if typed == "" {
			return Systems{}, fmt.Errorf("dataset: systems path is empty")
		}
		return Systems{ReadFrom: typed, FileFormat: fileio.FormatFromPath(typed)}, nil
	case map[string]any:
		readFrom := readString(typed, "read_from")
		if readFrom == "" {
			return Systems{}, fmt.Errorf("dataset: systems read_from is required")
		}
		out := Systems{
			ReadFrom:   readFrom,
			FileFormat: fileio.FormatFromPath(readFrom),
			LengthUnit: readString(typed, "length_unit"),
		}
		format, err := sectionFormat(typed)
		if err != nil {
			return Systems{}, fmt.Errorf("dataset: systems: %w", err)
		}
		if format != "" {
			out.FileFormat = format
		}
		return out, nil
	default:
		return Systems{}, fmt.Errorf("dataset: systems must be a string or an object, got %T", raw)
	}
}

func parseTarget(name string, raw any, systems Systems) (Target, error) {
	target := Target{
		Quantity:   quantityEnergy,
		ReadFrom:   systems.ReadFrom,
		FileFormat: systems.FileFormat,
		Key:        name,
	}

	var payload map[string]any
	switch typed := raw.(type) {
	case string:
		if typed == "" {
			return Target{}, fmt.Errorf("dataset: target %q path is empty", name)
		}
		target.ReadFrom = typed
		target.FileFormat = fileio.FormatFromPath(typed)
	case map[string]any:
		payload = typed
		if v := readString(typed, "quantity"); v != "" {
			target.Quantity = v
		}
		if v := readString(typed, "read_from"); v != "" {
			target.ReadFrom = v
			target.FileFormat = fileio.FormatFromPath(v)
		}
		format, err := sectionFormat(typed)
		if err != nil {
			return Target{}, fmt.Errorf("dataset: target %q: %w", name, err)
		}
		if format != "" {
			target.FileFormat = format
		}
		if v := readString(typed, "key"); v != "" {
			target.Key = v
		}
		target.Unit = readString(typed, "unit")
	default:
		return Target{}, fmt.Errorf("dataset: target %q must be a string or an object, got %T", name, raw)
	}

	// Absent gradient sections stay disabled; gradients are only read when a
	// target requests them.
	forcesRaw, forcesSet := payload["forces"]
	stressRaw, stressSet := payload["stress"]
	virialRaw, virialSet := payload["virial"]

	var err error
	target.Forces, err = normalizeGradient(name, "forces", forcesRaw, forcesSet, target)
	if err != nil {
		return Target{}, err
	}
	target.Stress, err = normalizeGradient(name, "stress", stressRaw, stressSet, target)
	if err != nil {
		return Target{}, err
	}
	target.Virial, err = normalizeGradient(name, "virial", virialRaw, virialSet, target)
	if err != nil {
		return Target{}, err
	}

	if target.Stress.Enabled() && target.Virial.Enabled() {
		return Target{}, &GradientConflictError{Target: name}
	}
	return target, nil
}

// normalizeGradient maps one of the four gradient shapes onto its Gradient
// variant. It counts matching alternatives itself instead of trusting the
// schema's oneOf, so overlapping shapes surface as AmbiguousGradientError.
func normalizeGradient(targetName, gradientName string, raw any, present bool, parent Target) (Gradient, error) {
	if !present {
		return Gradient{Kind: GradientDisabled}, nil
	}

	kinds := matchGradientShapes(raw)
	switch {
	case len(kinds) == 0:
		return Gradient{}, fmt.Errorf("dataset: target %q: gradient section %q must be a boolean, a string, or an object, got %T", targetName, gradientName, raw)
	case len(kinds) > 1:
		return Gradient{}, &AmbiguousGradientError{Target: targetName, Gradient: gradientName, Kinds: kinds}
	}

	switch kinds[0] {
	case GradientDisabled:
		return Gradient{Kind: GradientDisabled}, nil
	case GradientEnabled:
		return enabledGradient(parent, gradientName), nil
	case GradientFromFile:
		readFrom := raw.(string)
		return Gradient{
			Kind:       GradientFromFile,
			ReadFrom:   readFrom,
			FileFormat: fileio.FormatFromPath(readFrom),
			Key:        gradientName,
		}, nil
	case GradientDetailed:
		payload := raw.(map[string]any)
		out := Gradient{
			Kind:       GradientDetailed,
			ReadFrom:   parent.ReadFrom,
			FileFormat: parent.FileFormat,
			Key:        gradientName,
		}
		if v := readString(payload, "read_from"); v != "" {
			out.ReadFrom = v
			out.FileFormat = fileio.FormatFromPath(v)
		}
		format, err := sectionFormat(payload)
		if err != nil {
			return Gradient{}, fmt.Errorf("dataset: target %q: gradient section %q: %w", targetName, gradientName, err)
		}
		if format != "" {
			out.FileFormat = format
		}
		if v := readString(payload, "key"); v != "" {
			out.Key = v
		}
		return out, nil
	default:
		return Gradient{}, fmt.Errorf("dataset: target %q: gradient section %q: unsupported shape", targetName, gradientName)
	}
}

func matchGradientShapes(raw any) []GradientKind {
	var kinds []GradientKind
	if flag, ok := raw.(bool); ok {
		if flag {
			kinds = append(kinds, GradientEnabled)
		} else {
			kinds = append(kinds, GradientDisabled)
		}
	}
	if str, ok := raw.(string); ok && str != "" {
		kinds = append(kinds, GradientFromFile)
	}
	if _, ok := raw.(map[string]any); ok {
		kinds = append(kinds, GradientDetailed)
	}
	return kinds
}

func enabledGradient(parent Target, gradientName string) Gradient {
	return Gradient{
		Kind:       GradientEnabled,
		ReadFrom:   parent.ReadFrom,
		FileFormat: parent.FileFormat,
		Key:        gradientName,
	}
}

// sectionFormat reads the file format, accepting the legacy "reader" key as
// an alias of "file_format". Documents that set both to different values are
// rejected rather than silently preferring one.
func sectionFormat(payload map[string]any) (string, error) {
	format := readString(payload, "file_format")
	legacy := readString(payload, "reader")
	switch {
	case format == "":
		return legacy, nil
	case legacy == "" || legacy == format:
		return format, nil
	default:
		return "", fmt.Errorf("reader %q conflicts with file_format %q", legacy, format)
	}
}

func readString(payload map[string]any, key string) string {
	value, ok := payload[key]
	if !ok {
		return ""
	}
	str, _ := value.(string)
	return str
}
