package schema

import (
	"github.com/stcorp/muninn-geoms/pkg/geoms"
)

// Definition is an immutable, ordered field table registered under a name.
type Definition struct {
	name        string
	fields      []Field
	nameToIndex map[string]int
}

func newNamespace(name string, fields []Field) *Definition {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		index[f.Name] = i
	}
	return &Definition{name: name, fields: fields, nameToIndex: index}
}

func text(name string) Field      { return Field{Name: name, Type: Text} }
func optional(name string) Field  { return Field{Name: name, Type: Text, Optional: true} }
func timestamp(name string) Field { return Field{Name: name, Type: Timestamp} }

// GEOMS is the geoms namespace. Field order follows the GEOMS attribute
// groups and is also the order in which the extractor reads attributes.
var GEOMS = newNamespace(geoms.NamespaceName, []Field{
	text("pi_name"),
	text("pi_affiliation"),
	text("pi_address"),
	text("pi_email"),

	text("do_name"),
	text("do_affiliation"),
	text("do_address"),
	text("do_email"),

	text("ds_name"),
	text("ds_affiliation"),
	text("ds_address"),
	text("ds_email"),

	optional("data_description"),
	text("data_discipline"),
	text("data_group"),
	text("data_location"),
	text("data_source"),
	text("data_variables"),
	timestamp("data_start_date"),
	timestamp("data_stop_date"),
	text("data_file_version"),
	optional("data_modifications"),
	optional("data_caveats"),
	optional("data_rules_of_use"),
	optional("data_acknowledgement"),
	optional("data_quality"),
	optional("data_template"),
	optional("data_processor"),

	text("file_name"),
	timestamp("file_generation_date"),
	text("file_access"),
	optional("file_project_id"),
	optional("file_association"),
	text("file_meta_version"),
	text("file_doi"),
})

// Namespaces returns the names of the namespaces this extension provides.
func Namespaces() []string {
	return []string{GEOMS.name}
}

// Namespace returns the schema for name.
//
// There is only one namespace, so every name resolves to GEOMS; hosts are
// expected to ask only for names returned by Namespaces.
func Namespace(name string) *Definition {
	return GEOMS
}

// Name returns the registered namespace name.
func (n *Definition) Name() string { return n.name }

// Len returns the number of fields.
func (n *Definition) Len() int { return len(n.fields) }

// Fields returns a copy of the field table in declaration order.
func (n *Definition) Fields() []Field {
	out := make([]Field, len(n.fields))
	copy(out, n.fields)
	return out
}

// Field looks up a field by name.
func (n *Definition) Field(name string) (Field, bool) {
	i, ok := n.nameToIndex[name]
	if !ok {
		return Field{}, false
	}
	return n.fields[i], true
}

// Required returns the names of the mandatory fields in declaration order.
func (n *Definition) Required() []string {
	var names []string
	for _, f := range n.fields {
		if !f.Optional {
			names = append(names, f.Name)
		}
	}
	return names
}
