package dataset

import (
	"fmt"
	"sort"
)

// CheckUnits verifies that two expanded dataset configurations agree on
// physical units: the systems length unit and the unit of every target the
// desired configuration declares. Training and evaluation sets that disagree
// on units must not be mixed.
func CheckUnits(actual, desired Config) error {
	if actual.Systems.LengthUnit != desired.Systems.LengthUnit {
		return fmt.Errorf("dataset: length units are inconsistent between dataset options: %s != %s",
			actual.Systems.LengthUnit, desired.Systems.LengthUnit)
	}

	names := make([]string, 0, len(desired.Targets))
	for name := range desired.Targets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		want := desired.Targets[name]
		got, ok := actual.Targets[name]
		if !ok {
			return fmt.Errorf("dataset: target %q is not present in the given dataset", name)
		}
		if got.Unit != want.Unit {
			return fmt.Errorf("dataset: units of target %q are inconsistent between dataset options: %s != %s",
				name, got.Unit, want.Unit)
		}
	}
	return nil
}
