package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stcorp/muninn-geoms/internal/schema"
	"github.com/stcorp/muninn-geoms/internal/tui"
	"github.com/stcorp/muninn-geoms/pkg/geoms"
)

var schemaCmd = &cobra.Command{
	Use:   "schema [namespace]",
	Short: "Show the field table of a namespace",
	Long: `Show the field table of a namespace: field name, type, the global
attribute it is read from, and whether it is optional.

Examples:
  muninn-geoms schema
  muninn-geoms schema geoms --format yaml`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeNamespaces,
	RunE:              runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringP("format", "f", "text", "Output format: text, json or yaml")
	_ = schemaCmd.RegisterFlagCompletionFunc("format", completeOutputFormats)
}

type fieldDocument struct {
	Name         string      `json:"name" yaml:"name"`
	Type         schema.Type `json:"type" yaml:"type"`
	AttributeKey string      `json:"attribute" yaml:"attribute"`
	Optional     bool        `json:"optional" yaml:"optional"`
}

type schemaDocument struct {
	Namespace string          `json:"namespace" yaml:"namespace"`
	Fields    []fieldDocument `json:"fields" yaml:"fields"`
}

func runSchema(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	name := geoms.NamespaceName
	if len(args) == 1 {
		name = args[0]
	}
	def := schema.Namespace(name)

	doc := schemaDocument{Namespace: def.Name()}
	for _, f := range def.Fields() {
		doc.Fields = append(doc.Fields, fieldDocument{
			Name:         f.Name,
			Type:         f.Type,
			AttributeKey: f.AttributeKey(),
			Optional:     f.Optional,
		})
	}

	if cfg.Format != "text" {
		return writeDocument(cmd.OutOrStdout(), cfg.Format, doc)
	}

	p := tui.NewPrinter(cmd.OutOrStdout())
	p.Title(fmt.Sprintf("namespace %s (%d fields)", doc.Namespace, len(doc.Fields)))
	entries := make([]tui.Entry, 0, len(doc.Fields))
	for _, f := range doc.Fields {
		presence := "required"
		if f.Optional {
			presence = "optional"
		}
		entries = append(entries, tui.Entry{
			Key:   f.Name,
			Value: fmt.Sprintf("%-9s  %-20s  %s", f.Type, f.AttributeKey, presence),
		})
	}
	p.Entries(entries)
	return nil
}
