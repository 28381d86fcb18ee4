package metadata

import (
	"time"
)

// Record is a populated instance of the geoms namespace.
//
// Required text fields are plain strings, optional ones are pointers that
// stay nil when the product does not carry the attribute. Timestamps are UTC.
type Record struct {
	PIName        string `json:"pi_name" yaml:"pi_name"`
	PIAffiliation string `json:"pi_affiliation" yaml:"pi_affiliation"`
	PIAddress     string `json:"pi_address" yaml:"pi_address"`
	PIEmail       string `json:"pi_email" yaml:"pi_email"`

	DOName        string `json:"do_name" yaml:"do_name"`
	DOAffiliation string `json:"do_affiliation" yaml:"do_affiliation"`
	DOAddress     string `json:"do_address" yaml:"do_address"`
	DOEmail       string `json:"do_email" yaml:"do_email"`

	DSName        string `json:"ds_name" yaml:"ds_name"`
	DSAffiliation string `json:"ds_affiliation" yaml:"ds_affiliation"`
	DSAddress     string `json:"ds_address" yaml:"ds_address"`
	DSEmail       string `json:"ds_email" yaml:"ds_email"`

	DataDescription     *string   `json:"data_description,omitempty" yaml:"data_description,omitempty"`
	DataDiscipline      string    `json:"data_discipline" yaml:"data_discipline"`
	DataGroup           string    `json:"data_group" yaml:"data_group"`
	DataLocation        string    `json:"data_location" yaml:"data_location"`
	DataSource          string    `json:"data_source" yaml:"data_source"`
	DataVariables       string    `json:"data_variables" yaml:"data_variables"`
	DataStartDate       time.Time `json:"data_start_date" yaml:"data_start_date"`
	DataStopDate        time.Time `json:"data_stop_date" yaml:"data_stop_date"`
	DataFileVersion     string    `json:"data_file_version" yaml:"data_file_version"`
	DataModifications   *string   `json:"data_modifications,omitempty" yaml:"data_modifications,omitempty"`
	DataCaveats         *string   `json:"data_caveats,omitempty" yaml:"data_caveats,omitempty"`
	DataRulesOfUse      *string   `json:"data_rules_of_use,omitempty" yaml:"data_rules_of_use,omitempty"`
	DataAcknowledgement *string   `json:"data_acknowledgement,omitempty" yaml:"data_acknowledgement,omitempty"`
	DataQuality         *string   `json:"data_quality,omitempty" yaml:"data_quality,omitempty"`
	DataTemplate        *string   `json:"data_template,omitempty" yaml:"data_template,omitempty"`
	DataProcessor       *string   `json:"data_processor,omitempty" yaml:"data_processor,omitempty"`

	FileName           string    `json:"file_name" yaml:"file_name"`
	FileGenerationDate time.Time `json:"file_generation_date" yaml:"file_generation_date"`
	FileAccess         string    `json:"file_access" yaml:"file_access"`
	FileProjectID      *string   `json:"file_project_id,omitempty" yaml:"file_project_id,omitempty"`
	FileAssociation    *string   `json:"file_association,omitempty" yaml:"file_association,omitempty"`
	FileMetaVersion    string    `json:"file_meta_version" yaml:"file_meta_version"`
	FileDOI            string    `json:"file_doi" yaml:"file_doi"`
}

// Values returns the record as a property document keyed by field name.
// Absent optional fields are omitted, so the result validates against
// schema.GEOMS.
func (r *Record) Values() map[string]any {
	v := map[string]any{
		"pi_name":        r.PIName,
		"pi_affiliation": r.PIAffiliation,
		"pi_address":     r.PIAddress,
		"pi_email":       r.PIEmail,

		"do_name":        r.DOName,
		"do_affiliation": r.DOAffiliation,
		"do_address":     r.DOAddress,
		"do_email":       r.DOEmail,

		"ds_name":        r.DSName,
		"ds_affiliation": r.DSAffiliation,
		"ds_address":     r.DSAddress,
		"ds_email":       r.DSEmail,

		"data_discipline":   r.DataDiscipline,
		"data_group":        r.DataGroup,
		"data_location":     r.DataLocation,
		"data_source":       r.DataSource,
		"data_variables":    r.DataVariables,
		"data_start_date":   r.DataStartDate,
		"data_stop_date":    r.DataStopDate,
		"data_file_version": r.DataFileVersion,

		"file_name":            r.FileName,
		"file_generation_date": r.FileGenerationDate,
		"file_access":          r.FileAccess,
		"file_meta_version":    r.FileMetaVersion,
		"file_doi":             r.FileDOI,
	}

	for name, value := range map[string]*string{
		"data_description":     r.DataDescription,
		"data_modifications":   r.DataModifications,
		"data_caveats":         r.DataCaveats,
		"data_rules_of_use":    r.DataRulesOfUse,
		"data_acknowledgement": r.DataAcknowledgement,
		"data_quality":         r.DataQuality,
		"data_template":        r.DataTemplate,
		"data_processor":       r.DataProcessor,
		"file_project_id":      r.FileProjectID,
		"file_association":     r.FileAssociation,
	} {
		if value != nil {
			v[name] = *value
		}
	}

	return v
}
