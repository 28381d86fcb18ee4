package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/stcorp/muninn-geoms/internal/schema"
	"github.com/stcorp/muninn-geoms/internal/tui"
	"github.com/stcorp/muninn-geoms/pkg/geoms"
)

var checkCmd = &cobra.Command{
	Use:   "check <document>",
	Short: "Validate a JSON or YAML property document against the geoms schema",
	Long: `Validate a property document against the geoms namespace schema.

The document may be a bare mapping of field name to value, an extract
envelope with a "properties" mapping, or a list of envelopes as written
by 'muninn-geoms extract --format json'.

Examples:
  muninn-geoms check record.yaml
  muninn-geoms extract -f json *.cdl > out.json && muninn-geoms check out.json`,
	Args: RequireDocument,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	_, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %s: %v", geoms.ErrInvalidRecord, args[0], err)
	}

	records, err := propertyDocuments(doc)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", geoms.ErrInvalidRecord, args[0], err)
	}
	logger.Verbose("Checking %d record(s) from %s", len(records), args[0])

	p := tui.NewPrinter(cmd.OutOrStdout())
	def := schema.Namespace(geoms.NamespaceName)
	var firstErr error
	for i, values := range records {
		result := def.Validate(values)
		label := args[0]
		if len(records) > 1 {
			label = fmt.Sprintf("%s[%d]", args[0], i)
		}
		if err := result.Err(); err != nil {
			p.Failure("%s: %s", label, result.ErrorString())
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", label, err)
			}
			continue
		}
		p.Success("%s: %d field(s) valid", label, len(values))
	}
	return firstErr
}

// propertyDocuments extracts the property mappings from a decoded document.
func propertyDocuments(doc interface{}) ([]map[string]any, error) {
	switch v := doc.(type) {
	case map[string]interface{}:
		if props, ok := v["properties"]; ok {
			m, ok := props.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("properties must be a mapping, got %T", props)
			}
			return []map[string]any{m}, nil
		}
		return []map[string]any{v}, nil
	case []interface{}:
		var out []map[string]any
		for i, item := range v {
			docs, err := propertyDocuments(item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			out = append(out, docs...)
		}
		if len(out) == 0 {
			return nil, fmt.Errorf("document contains no records")
		}
		return out, nil
	case nil:
		return nil, fmt.Errorf("document is empty")
	default:
		return nil, fmt.Errorf("expected a mapping or a list, got %T", doc)
	}
}
