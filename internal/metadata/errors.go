package metadata

import (
	"fmt"

	"github.com/stcorp/muninn-geoms/pkg/geoms"
)

// MetadataError represents a structured extraction error with context and helpful hints.
// It unwraps to one of the geoms sentinel errors, and to the underlying cause when
// there is one, so callers can use errors.Is for either.
type MetadataError struct {
	FilePath  string // Path to the product
	Attribute string // Global attribute name (e.g., "PI_NAME") if applicable
	Field     string // Namespace field name (e.g., "pi_name") if applicable
	Value     string // Offending raw value, for format errors
	Message   string // Primary error message
	Hint      string // Actionable suggestion for fixing
	Err       error  // Sentinel classifying the failure
	Cause     error  // Underlying error, if any
}

// Error implements the error interface with rich formatting.
func (e *MetadataError) Error() string {
	location := e.FilePath
	if location == "" {
		location = "<attributes>"
	}

	msg := fmt.Sprintf("metadata error in %s: %s", location, e.Message)
	if e.Attribute != "" {
		msg = fmt.Sprintf("metadata error in %s [attribute: %s]: %s", location, e.Attribute, e.Message)
	}

	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}

	return msg
}

// Unwrap exposes both the sentinel and the cause to errors.Is and errors.As.
func (e *MetadataError) Unwrap() []error {
	var errs []error
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

func extractionError(path string, cause error) error {
	return &MetadataError{
		FilePath: path,
		Message:  cause.Error(),
		Hint:     "Check that the file exists, is readable, and is in a format the selected reader understands.",
		Err:      geoms.ErrExtraction,
		Cause:    cause,
	}
}

func missingAttributeError(path, key string) error {
	return &MetadataError{
		FilePath:  path,
		Attribute: key,
		Message:   fmt.Sprintf("required global attribute %s is missing", key),
		Hint:      "GEOMS products must carry all mandatory PI_*, DO_*, DS_*, DATA_* and FILE_* attributes.",
		Err:       geoms.ErrMissingAttribute,
	}
}

func timestampError(path, key, field, raw string, cause error) error {
	return &MetadataError{
		FilePath:  path,
		Attribute: key,
		Field:     field,
		Value:     raw,
		Message:   fmt.Sprintf("field %s: value %q is not a timestamp of the form YYYYMMDDTHHMMSSZ", field, raw),
		Hint:      "Expected format: 20200101T000000Z (UTC, no separators).",
		Err:       geoms.ErrTimestampFormat,
		Cause:     cause,
	}
}
