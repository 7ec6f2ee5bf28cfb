// Package dataset models the dataset section of training options: where
// atomistic systems are read from and which target properties (with their
// gradient sections) a model is trained on.
package dataset

import "fmt"

// GradientKind identifies which of the four legal gradient-section shapes a
// document used. The shapes are mutually exclusive alternatives of one
// conceptual value.
type GradientKind int

const (
	// GradientDisabled means no gradient was requested.
	GradientDisabled GradientKind = iota
	// GradientEnabled reads the gradient from the parent target's source
	// using default key conventions (the bare `true` form).
	GradientEnabled
	// GradientFromFile reads the gradient from an explicit location with
	// default key conventions (the bare URI form).
	GradientFromFile
	// GradientDetailed carries explicit location, format, and key (the
	// object form).
	GradientDetailed
)

func (k GradientKind) String() string {
	switch k {
	case GradientDisabled:
		return "disabled"
	case GradientEnabled:
		return "enabled"
	case GradientFromFile:
		return "from-file"
	case GradientDetailed:
		return "detailed"
	default:
		return fmt.Sprintf("GradientKind(%d)", int(k))
	}
}

// Gradient is the normalized representation of a gradient section. For every
// kind except GradientDisabled the location fields are fully resolved.
type Gradient struct {
	Kind       GradientKind
	ReadFrom   string
	FileFormat string
	Key        string
}

// Enabled reports whether the gradient should be read at all.
func (g Gradient) Enabled() bool {
	return g.Kind != GradientDisabled
}

// Systems describes where atomistic structures are read from.
type Systems struct {
	ReadFrom   string
	FileFormat string
	LengthUnit string
}

// Target describes one target property and its gradient sections.
type Target struct {
	Quantity   string
	ReadFrom   string
	FileFormat string
	Key        string
	Unit       string
	Forces     Gradient
	Stress     Gradient
	Virial     Gradient
}

// Config is a fully expanded dataset configuration: every optional field is
// present with either the document value or its derived default.
type Config struct {
	Systems Systems
	Targets map[string]Target
}

// GradientConflictError reports a target that requests training with respect
// to both virials and stress.
type GradientConflictError struct {
	Target string
}

func (e *GradientConflictError) Error() string {
	return fmt.Sprintf("dataset: target %q: cannot perform training with respect to virials and stress at the same time", e.Target)
}

// AmbiguousGradientError reports a gradient section that matched more than
// one of the four shape alternatives. The schema's oneOf should make this
// impossible; the expansion still verifies exclusivity itself.
type AmbiguousGradientError struct {
	Target   string
	Gradient string
	Kinds    []GradientKind
}

func (e *AmbiguousGradientError) Error() string {
	return fmt.Sprintf("dataset: target %q: gradient section %q matches %d shapes", e.Target, e.Gradient, len(e.Kinds))
}
