package cli

import (
	"github.com/spf13/cobra"

	"github.com/stcorp/muninn-geoms/internal/metadata"
	"github.com/stcorp/muninn-geoms/internal/tui"
)

var filenameCmd = &cobra.Command{
	Use:   "filename <name>...",
	Short: "Parse GEOMS file names into their components",
	Long: `Parse file names following the GEOMS convention:

  <discipline>_<source>_<affiliation><nnn>[_<processing>]_<location>_<start>_<stop>_<version>.<hdf|h5|nc>

Directories are ignored and names are matched case-insensitively.

Example:
  muninn-geoms filename groundbased_ftir.o3_iup.bremen001_ny.alesund_20200101t000000z_20200131t235959z_001.hdf`,
	Args: RequireFileNames,
	RunE: runFileName,
}

func init() {
	rootCmd.AddCommand(filenameCmd)
	filenameCmd.Flags().StringP("format", "f", "text", "Output format: text, json or yaml")
	_ = filenameCmd.RegisterFlagCompletionFunc("format", completeOutputFormats)
}

type fileNameDocument struct {
	Name      string             `json:"name" yaml:"name"`
	ProductID string             `json:"product_id" yaml:"product_id"`
	Parts     *metadata.FileName `json:"parts" yaml:"parts"`
}

func runFileName(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	var (
		docs     []fileNameDocument
		firstErr error
	)
	for _, name := range args {
		parts, err := metadata.ParseFileName(name)
		if err != nil {
			logger.Error("%v", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		docs = append(docs, fileNameDocument{
			Name:      name,
			ProductID: metadata.ProductID(name).String(),
			Parts:     parts,
		})
	}

	if cfg.Format != "text" {
		if docs == nil {
			docs = []fileNameDocument{}
		}
		if err := writeDocument(cmd.OutOrStdout(), cfg.Format, docs); err != nil {
			return err
		}
		return firstErr
	}

	p := tui.NewPrinter(cmd.OutOrStdout())
	for _, d := range docs {
		p.Title(d.Name)
		entries := []tui.Entry{
			{Key: "product_id", Value: d.ProductID},
			{Key: "data_discipline", Value: d.Parts.Discipline},
			{Key: "data_source", Value: d.Parts.Source},
			{Key: "affiliation", Value: d.Parts.Affiliation},
			{Key: "identifier", Value: d.Parts.Identifier},
			{Key: "processing_version", Value: d.Parts.ProcessingVersion, Absent: d.Parts.ProcessingVersion == ""},
			{Key: "data_location", Value: d.Parts.Location},
			{Key: "data_start_date", Value: metadata.FormatTimestamp(d.Parts.StartDate)},
			{Key: "data_stop_date", Value: metadata.FormatTimestamp(d.Parts.StopDate)},
			{Key: "data_file_version", Value: d.Parts.FileVersion},
			{Key: "extension", Value: d.Parts.Extension},
		}
		p.Entries(entries)
	}
	return firstErr
}
