package geoms

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // All requested operations completed
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration
	ExitExtractionFailed = 20 // Product could not be opened or read
	ExitMissingAttribute = 21 // Required global attribute absent
	ExitTimestampFormat  = 22 // Timestamp attribute not in DateTimeFormat
	ExitInvalidRecord    = 23 // Property document does not match the schema
	ExitInvalidFileName  = 24 // File name does not follow the GEOMS convention
)

const (
	// NamespaceName is the single namespace this extension registers with the archive.
	NamespaceName = "geoms"

	// DateTimeFormat is the layout of GEOMS timestamp attributes, e.g. "20200101T000000Z".
	// All values are UTC; the trailing Z is a literal.
	DateTimeFormat = "20060102T150405Z"

	// InternalAttributePrefix marks reserved attribute names that are never
	// treated as GEOMS metadata (e.g. "_NCProperties", "_FillValue").
	InternalAttributePrefix = "_"

	// FileNamePattern is the GEOMS file naming convention:
	//
	//	<discipline>_<source>_<affiliation><nnn>[_<processing>]_<location>_<start>_<stop>_<version>.<hdf|h5|nc>
	//
	// Names are matched in lower case.
	FileNamePattern = `(?P<data_discipline_03>[a-z0-9.]+)_(?P<data_source>[a-z0-9.]+)_` +
		`(?P<affiliation>[a-z0-9.]+)(?P<identifier>[\d]{3})(_(?P<processing_version>[a-z0-9.]+))?_` +
		`(?P<data_location>[a-z0-9.]+)_(?P<data_start_date>[\dt]{15}z)_(?P<data_stop_date>[\dt]{15}z)_` +
		`(?P<data_file_version>\d{3})\.(hdf|h5|nc)$`
)
