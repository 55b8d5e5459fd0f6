package types

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration accepts Go duration strings ("2s", "500ms") or raw
// nanosecond integers in YAML.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration: %s", value.Value)
	}
	*d = Duration(n)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Manifest is the YAML document selecting which operations and
// categories a run probes, plus run-wide knobs.
type Manifest struct {
	// Seed feeds the fuzz and property generators. Zero means "pick
	// from the clock"; any other value makes the run reproducible.
	Seed int64 `yaml:"seed,omitempty"`

	// PerfBudget is the wall-clock budget applied to each
	// performance-category case. Zero disables the budget.
	PerfBudget Duration `yaml:"perf_budget,omitempty"`

	Operations []OperationConfig `yaml:"operations"`
}

// OperationConfig selects one target operation.
type OperationConfig struct {
	Name string `yaml:"name"`

	// Categories restricts which case families run. Empty means all.
	Categories []string `yaml:"categories,omitempty"`

	// Skip marks the whole operation as skipped. A reason is required
	// so the reporter never emits a bare skip.
	Skip   bool   `yaml:"skip,omitempty"`
	Reason string `yaml:"reason,omitempty"`
}

// Validate checks manifest-internal consistency. Operation names are
// validated against the registered ops by the registry, which knows them.
func (m *Manifest) Validate() error {
	seen := make(map[string]bool)
	for i, op := range m.Operations {
		if op.Name == "" {
			return fmt.Errorf("operation at index %d has no name", i)
		}
		if seen[op.Name] {
			return fmt.Errorf("operation %q listed twice", op.Name)
		}
		seen[op.Name] = true
		if op.Skip && op.Reason == "" {
			return fmt.Errorf("operation %q is skipped without a reason", op.Name)
		}
		for _, c := range op.Categories {
			if !KnownCategory(c) {
				return fmt.Errorf("operation %q references unknown category %q", op.Name, c)
			}
		}
	}
	return nil
}

// WantsCategory reports whether the config selects the given category.
func (oc OperationConfig) WantsCategory(c Category) bool {
	if len(oc.Categories) == 0 {
		return true
	}
	for _, name := range oc.Categories {
		if name == string(c) {
			return true
		}
	}
	return false
}
