package geoms

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	rec, err := extractor.Extract(path)
//	if errors.Is(err, geoms.ErrMissingAttribute) {
//	    // Product lacks a mandatory GEOMS attribute
//	}
var (
	// ErrExtraction indicates the product could not be opened or its attributes read.
	ErrExtraction = errors.New("extraction failed")

	// ErrMissingAttribute indicates a required global attribute is absent.
	ErrMissingAttribute = errors.New("missing required attribute")

	// ErrTimestampFormat indicates a timestamp attribute does not match DateTimeFormat.
	ErrTimestampFormat = errors.New("invalid timestamp format")

	// ErrInvalidRecord indicates a property document does not conform to the namespace schema.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrInvalidFileName indicates a file name does not follow FileNamePattern.
	ErrInvalidFileName = errors.New("invalid GEOMS file name")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUsage indicates the command line was used incorrectly.
	ErrUsage = errors.New("usage error")
)

// cobra reports flag and argument problems as plain errors.
var usageErrorPrefixes = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrMissingAttribute):
		return ExitMissingAttribute
	case errors.Is(err, ErrTimestampFormat):
		return ExitTimestampFormat
	case errors.Is(err, ErrExtraction):
		return ExitExtractionFailed
	case errors.Is(err, ErrInvalidRecord):
		return ExitInvalidRecord
	case errors.Is(err, ErrInvalidFileName):
		return ExitInvalidFileName
	}

	errStr := err.Error()
	for _, prefix := range usageErrorPrefixes {
		if strings.HasPrefix(errStr, prefix) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
