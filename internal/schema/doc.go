// Package schema is the registry of the GEOMS metadata namespace.
//
// # Overview
//
// The archive host discovers extensions by name and asks each for the schema
// of the namespaces it provides. This package answers both questions:
//
//	names := schema.Namespaces()          // ["geoms"]
//	ns := schema.Namespace("geoms")
//	for _, f := range ns.Fields() {
//	    fmt.Println(f.Name, f.Type, f.Optional)
//	}
//
// # Fields
//
// The namespace is a flat table of 35 fields grouped by prefix:
//   - pi_*: Principal Investigator
//   - do_*: Data Originator
//   - ds_*: Data Submitter
//   - data_*: description of the measured data
//   - file_*: description of the file itself
//
// Each field is either Text or Timestamp, and either required or optional.
// The source attribute of a field is its upper-cased name (pi_name -> PI_NAME).
//
// # Validation
//
// Definition.Validate checks a property document (field name -> value) against
// the table and reports every problem at once, so hosts can validate records
// that did not come from the extractor.
package schema
