package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/stcorp/muninn-geoms/internal/metadata"
	"github.com/stcorp/muninn-geoms/internal/metrics"
	"github.com/stcorp/muninn-geoms/internal/product"
	"github.com/stcorp/muninn-geoms/internal/schema"
	"github.com/stcorp/muninn-geoms/internal/tui"
	"github.com/stcorp/muninn-geoms/pkg/geoms"
)

var extractCmd = &cobra.Command{
	Use:   "extract <path>...",
	Short: "Extract GEOMS namespace records from products",
	Long: `Extract the geoms namespace record from the global attributes of each
product. Products are processed one after another; failures are reported
and the command exits with the code of the first failure.

Readers:
  auto - choose by extension (.cdl/.txt, .yaml/.yml/.json, .env)
  cdl  - ncdump -h output
  yaml - flat YAML or JSON mapping of attribute name to value
  env  - KEY=VALUE lines

Examples:
  muninn-geoms extract product.cdl
  muninn-geoms extract --format json --reader yaml attrs/*.yaml
  muninn-geoms extract --metrics-textfile /var/lib/node_exporter/geoms.prom *.cdl`,
	Args: RequireProductPaths,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringP("reader", "r", "auto", "Attribute reader: auto, cdl, yaml or env")
	extractCmd.Flags().StringP("format", "f", "text", "Output format: text, json or yaml")
	extractCmd.Flags().String("metrics-textfile", "", "Write Prometheus metrics to this file after the run")

	_ = extractCmd.RegisterFlagCompletionFunc("reader", completeReaders)
	_ = extractCmd.RegisterFlagCompletionFunc("format", completeOutputFormats)
}

// envelope is the document written for each extracted product.
type envelope struct {
	Path       string           `json:"path" yaml:"path"`
	Namespace  string           `json:"namespace" yaml:"namespace"`
	ProductID  string           `json:"product_id" yaml:"product_id"`
	Properties *metadata.Record `json:"properties" yaml:"properties"`
}

func newEnvelope(path string, rec *metadata.Record) envelope {
	name := rec.FileName
	if name == "" {
		name = filepath.Base(path)
	}
	return envelope{
		Path:       path,
		Namespace:  geoms.NamespaceName,
		ProductID:  metadata.ProductID(name).String(),
		Properties: rec,
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	reader, err := product.NewReader(cfg.Reader)
	if err != nil {
		return err
	}
	extractor := metadata.NewExtractor(reader, logger)
	m := metrics.New()

	var (
		results  []envelope
		firstErr error
		failed   int
	)
	for _, path := range args {
		start := time.Now()
		rec, err := extractor.Extract(path)
		m.Observe(err, time.Since(start))

		if err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			// Open and read failures are logged by the extractor.
			if !errors.Is(err, geoms.ErrExtraction) {
				logger.Error("%v", err)
			}
			continue
		}
		logger.Verbose("Extracted %s", path)
		results = append(results, newEnvelope(path, rec))
	}

	if cfg.MetricsTextfile != "" {
		if err := m.WriteTextfile(cfg.MetricsTextfile); err != nil {
			logger.Error("Failed to write metrics to %s: %v", cfg.MetricsTextfile, err)
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to write metrics: %w", err)
			}
		} else {
			logger.Verbose("Wrote metrics to %s", cfg.MetricsTextfile)
		}
	}

	if err := writeEnvelopes(cmd, cfg.Format, results); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d product(s) failed: %w", failed, len(args), firstErr)
	}
	return firstErr
}

func writeEnvelopes(cmd *cobra.Command, format string, results []envelope) error {
	if format != "text" {
		if results == nil {
			results = []envelope{}
		}
		return writeDocument(cmd.OutOrStdout(), format, results)
	}

	p := tui.NewPrinter(cmd.OutOrStdout())
	for _, env := range results {
		p.Title(env.Path)
		p.Entries(recordEntries(env))
	}
	return nil
}

// recordEntries lists the record in namespace field order.
func recordEntries(env envelope) []tui.Entry {
	values := env.Properties.Values()
	entries := []tui.Entry{
		{Key: "namespace", Value: env.Namespace},
		{Key: "product_id", Value: env.ProductID},
	}
	for _, f := range schema.GEOMS.Fields() {
		v, ok := values[f.Name]
		if !ok {
			entries = append(entries, tui.Entry{Key: f.Name, Absent: true})
			continue
		}
		var s string
		switch v := v.(type) {
		case time.Time:
			s = metadata.FormatTimestamp(v)
		default:
			s = fmt.Sprint(v)
		}
		entries = append(entries, tui.Entry{Key: f.Name, Value: s})
	}
	return entries
}
