package metadata

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/stcorp/muninn-geoms/pkg/geoms"
)

// fileNameRegex anchors geoms.FileNamePattern at the start of the name.
var fileNameRegex = regexp.MustCompile(`^(?:` + geoms.FileNamePattern + `)`)

// FileName holds the components of a GEOMS file name.
type FileName struct {
	Discipline        string    `json:"data_discipline" yaml:"data_discipline"`
	Source            string    `json:"data_source" yaml:"data_source"`
	Affiliation       string    `json:"affiliation" yaml:"affiliation"`
	Identifier        string    `json:"identifier" yaml:"identifier"`
	ProcessingVersion string    `json:"processing_version,omitempty" yaml:"processing_version,omitempty"`
	Location          string    `json:"data_location" yaml:"data_location"`
	StartDate         time.Time `json:"data_start_date" yaml:"data_start_date"`
	StopDate          time.Time `json:"data_stop_date" yaml:"data_stop_date"`
	FileVersion       string    `json:"data_file_version" yaml:"data_file_version"`
	Extension         string    `json:"extension" yaml:"extension"`
}

// ParseFileName splits a GEOMS file name into its components.
// Directories are ignored and the name is matched in lower case.
//
// Example:
//
//	groundbased_ftir.o3_iup.bremen001_ny.alesund_20200101t000000z_20200131t235959z_001.hdf
//	→ discipline "groundbased", source "ftir.o3", affiliation "iup.bremen",
//	  identifier "001", location "ny.alesund", version "001", extension "hdf"
func ParseFileName(name string) (*FileName, error) {
	base := normalizeFileName(name)

	match := fileNameRegex.FindStringSubmatch(base)
	if match == nil {
		return nil, fmt.Errorf("%w: %q does not match <discipline>_<source>_<affiliation><nnn>[_<processing>]_<location>_<start>_<stop>_<version>.<hdf|h5|nc>",
			geoms.ErrInvalidFileName, base)
	}

	groups := make(map[string]string, len(match))
	for i, groupName := range fileNameRegex.SubexpNames() {
		if groupName != "" {
			groups[groupName] = match[i]
		}
	}

	start, err := ParseTimestamp(strings.ToUpper(groups["data_start_date"]))
	if err != nil {
		return nil, fmt.Errorf("%w: start date %q: %v", geoms.ErrInvalidFileName, groups["data_start_date"], err)
	}
	stop, err := ParseTimestamp(strings.ToUpper(groups["data_stop_date"]))
	if err != nil {
		return nil, fmt.Errorf("%w: stop date %q: %v", geoms.ErrInvalidFileName, groups["data_stop_date"], err)
	}

	return &FileName{
		Discipline:        groups["data_discipline_03"],
		Source:            groups["data_source"],
		Affiliation:       groups["affiliation"],
		Identifier:        groups["identifier"],
		ProcessingVersion: groups["processing_version"],
		Location:          groups["data_location"],
		StartDate:         start,
		StopDate:          stop,
		FileVersion:       groups["data_file_version"],
		Extension:         strings.TrimPrefix(filepath.Ext(base), "."),
	}, nil
}
