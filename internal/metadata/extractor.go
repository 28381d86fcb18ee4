package metadata

import (
	"fmt"
	"strings"
	"time"

	"github.com/stcorp/muninn-geoms/pkg/geoms"
)

// Extractor reads GEOMS metadata from products opened by an AttributeReader.
// It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	reader geoms.AttributeReader
	logger geoms.Logger
}

// NewExtractor creates an Extractor. A nil logger discards all messages.
func NewExtractor(reader geoms.AttributeReader, logger geoms.Logger) *Extractor {
	if logger == nil {
		logger = discardLogger{}
	}
	return &Extractor{reader: reader, logger: logger}
}

// Extract opens the product at path and returns its GEOMS record.
//
// Error cases:
//   - product cannot be opened, read or closed → wraps geoms.ErrExtraction
//   - required attribute absent → wraps geoms.ErrMissingAttribute
//   - timestamp attribute malformed → wraps geoms.ErrTimestampFormat
func (e *Extractor) Extract(path string) (*Record, error) {
	attrs, err := e.readAttributes(path)
	if err != nil {
		e.logger.Error("Failed to read global attributes from %s: %+v", path, err)
		return nil, extractionError(path, err)
	}
	e.logger.Verbose("Read %d global attribute(s) from %s", len(attrs), path)

	rec, err := FromAttributes(attrs, path)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// readAttributes holds the product open only while enumerating its attributes.
func (e *Extractor) readAttributes(path string) (attrs map[string]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			attrs, err = nil, fmt.Errorf("attribute reader panicked: %v", r)
		}
	}()

	product, err := e.reader.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := product.Close(); cerr != nil && err == nil {
			attrs, err = nil, fmt.Errorf("failed to close product: %w", cerr)
		}
	}()

	raw, err := product.GlobalAttributes()
	if err != nil {
		return nil, err
	}
	return RetainAttributes(raw), nil
}

// RetainAttributes returns the GEOMS-relevant subset of raw global attributes:
// names starting with geoms.InternalAttributePrefix are dropped and NUL
// characters are removed from the values.
func RetainAttributes(raw map[string]string) map[string]string {
	retained := make(map[string]string, len(raw))
	for name, value := range raw {
		if strings.HasPrefix(name, geoms.InternalAttributePrefix) {
			continue
		}
		retained[name] = strings.ReplaceAll(value, "\x00", "")
	}
	return retained
}

// FromAttributes maps retained global attributes onto a Record.
// Attributes are read in namespace field order and the first problem aborts
// the mapping. path is only used for error reporting and may be empty.
func FromAttributes(attrs map[string]string, path string) (*Record, error) {
	a := &attributeSet{attrs: attrs, path: path}

	// Composite literal fields are evaluated left to right, so the first
	// missing or malformed attribute is the one reported.
	rec := &Record{
		PIName:        a.text("PI_NAME"),
		PIAffiliation: a.text("PI_AFFILIATION"),
		PIAddress:     a.text("PI_ADDRESS"),
		PIEmail:       a.text("PI_EMAIL"),

		DOName:        a.text("DO_NAME"),
		DOAffiliation: a.text("DO_AFFILIATION"),
		DOAddress:     a.text("DO_ADDRESS"),
		DOEmail:       a.text("DO_EMAIL"),

		DSName:        a.text("DS_NAME"),
		DSAffiliation: a.text("DS_AFFILIATION"),
		DSAddress:     a.text("DS_ADDRESS"),
		DSEmail:       a.text("DS_EMAIL"),

		DataDescription:     a.optional("DATA_DESCRIPTION"),
		DataDiscipline:      a.text("DATA_DISCIPLINE"),
		DataGroup:           a.text("DATA_GROUP"),
		DataLocation:        a.text("DATA_LOCATION"),
		DataSource:          a.text("DATA_SOURCE"),
		DataVariables:       a.text("DATA_VARIABLES"),
		DataStartDate:       a.timestamp("DATA_START_DATE"),
		DataStopDate:        a.timestamp("DATA_STOP_DATE"),
		DataFileVersion:     a.text("DATA_FILE_VERSION"),
		DataModifications:   a.optional("DATA_MODIFICATIONS"),
		DataCaveats:         a.optional("DATA_CAVEATS"),
		DataRulesOfUse:      a.optional("DATA_RULES_OF_USE"),
		DataAcknowledgement: a.optional("DATA_ACKNOWLEDGEMENT"),
		DataQuality:         a.optional("DATA_QUALITY"),
		DataTemplate:        a.optional("DATA_TEMPLATE"),
		DataProcessor:       a.optional("DATA_PROCESSOR"),

		FileName:           a.text("FILE_NAME"),
		FileGenerationDate: a.timestamp("FILE_GENERATION_DATE"),
		FileAccess:         a.text("FILE_ACCESS"),
		FileProjectID:      a.optional("FILE_PROJECT_ID"),
		FileAssociation:    a.optional("FILE_ASSOCIATION"),
		FileMetaVersion:    a.text("FILE_META_VERSION"),
		FileDOI:            a.text("FILE_DOI"),
	}

	if a.err != nil {
		return nil, a.err
	}
	return rec, nil
}

// attributeSet looks up attributes by key and keeps the first error.
// Once err is set every accessor returns a zero value.
type attributeSet struct {
	attrs map[string]string
	path  string
	err   error
}

func (a *attributeSet) text(key string) string {
	if a.err != nil {
		return ""
	}
	value, ok := a.attrs[key]
	if !ok {
		a.err = missingAttributeError(a.path, key)
		return ""
	}
	return value
}

func (a *attributeSet) optional(key string) *string {
	if a.err != nil {
		return nil
	}
	value, ok := a.attrs[key]
	if !ok {
		return nil
	}
	return &value
}

func (a *attributeSet) timestamp(key string) time.Time {
	raw := a.text(key)
	if a.err != nil {
		return time.Time{}
	}
	t, err := ParseTimestamp(raw)
	if err != nil {
		a.err = timestampError(a.path, key, strings.ToLower(key), raw, err)
		return time.Time{}
	}
	return t
}

type discardLogger struct{}

func (discardLogger) Verbose(string, ...interface{}) {}
func (discardLogger) Info(string, ...interface{})    {}
func (discardLogger) Error(string, ...interface{})   {}
