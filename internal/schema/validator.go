package schema

import (
	"sort"
)

// Validate checks a property document against the namespace.
// It checks:
//   - every key is a declared field
//   - every required field is present
//   - no field is set to nil (absent optional fields are omitted, not nulled)
//   - every value matches its field type
//
// Unknown fields are reported in sorted order so results are deterministic.
func (n *Definition) Validate(values map[string]any) ValidationResult {
	result := ValidationResult{Valid: true, Errors: []string{}}

	var unknown []string
	for name := range values {
		if _, ok := n.nameToIndex[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		result.AddError("field %q is not part of the %s namespace", name, n.name)
	}

	for _, f := range n.fields {
		value, present := values[f.Name]
		if !present {
			if !f.Optional {
				result.AddError("required field %q is missing", f.Name)
			}
			continue
		}
		if value == nil {
			result.AddError("field %q is null; omit optional fields instead of clearing them", f.Name)
			continue
		}
		if err := f.Type.Check(value); err != nil {
			result.AddError("field %q: %v", f.Name, err)
		}
	}

	return result
}
