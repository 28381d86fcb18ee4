package schema

import (
	"fmt"
	"strings"
	"time"

	"github.com/stcorp/muninn-geoms/pkg/geoms"
)

// Type is the semantic type of a namespace field.
type Type int

const (
	// Text is a UTF-8 string with no length constraint.
	Text Type = iota
	// Timestamp is an absolute instant without a stored zone; GEOMS times are UTC.
	Timestamp
)

// String returns the lower-case type name used in schema listings.
func (t Type) String() string {
	switch t {
	case Text:
		return "text"
	case Timestamp:
		return "timestamp"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// MarshalText renders the type by name in JSON and YAML output.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Check reports whether value is acceptable for a field of this type.
//
// Timestamp accepts a time.Time, or a string in RFC 3339 or geoms.DateTimeFormat,
// since property documents read back from JSON or YAML carry times as strings.
// DateTimeFormat strings must match exactly, as in extraction: no fractional seconds.
func (t Type) Check(value any) error {
	switch t {
	case Text:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("expected text, got %T", value)
		}
		return nil
	case Timestamp:
		switch v := value.(type) {
		case time.Time:
			return nil
		case string:
			if _, err := time.Parse(time.RFC3339, v); err == nil {
				return nil
			}
			if ts, err := time.Parse(geoms.DateTimeFormat, v); err == nil && ts.Format(geoms.DateTimeFormat) == v {
				return nil
			}
			return fmt.Errorf("expected timestamp, got unparseable string %q", v)
		default:
			return fmt.Errorf("expected timestamp, got %T", value)
		}
	}
	return fmt.Errorf("unknown field type %v", t)
}

// Field is a single entry of the namespace table.
type Field struct {
	Name     string `json:"name" yaml:"name"`
	Type     Type   `json:"type" yaml:"type"`
	Optional bool   `json:"optional" yaml:"optional"`
}

// AttributeKey returns the global attribute name the field is read from.
func (f Field) AttributeKey() string {
	return strings.ToUpper(f.Name)
}

// ValidationResult contains the outcome of record validation.
// If Valid is false, Errors contains human-readable error messages.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// AddError appends an error message to the validation result and marks it as invalid.
func (v *ValidationResult) AddError(format string, args ...interface{}) {
	v.Valid = false
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

// HasErrors returns true if the validation result contains errors.
func (v *ValidationResult) HasErrors() bool {
	return len(v.Errors) > 0
}

// ErrorString returns all validation errors joined with semicolons.
// Returns empty string if no errors.
func (v *ValidationResult) ErrorString() string {
	return strings.Join(v.Errors, "; ")
}

// Err converts an invalid result into an error wrapping geoms.ErrInvalidRecord.
// Returns nil when the result is valid.
func (v *ValidationResult) Err() error {
	if v.Valid {
		return nil
	}
	return fmt.Errorf("%w: %s", geoms.ErrInvalidRecord, v.ErrorString())
}
