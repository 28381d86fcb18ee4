package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stcorp/muninn-geoms/pkg/geoms"
)

// usageErrorf formats a usage error wrapping geoms.ErrUsage.
func usageErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{geoms.ErrUsage}, args...)...)
}

// RequireProductPaths validates that at least one product path is provided.
func RequireProductPaths(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return usageErrorf(`missing required argument: <path>

Usage: %s

Example:
  %s groundbased_ftir.o3_iup.bremen001_ny.alesund_20200101t000000z_20200102t000000z_001.cdl`,
			cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}

// RequireDocument validates that exactly one document argument is provided.
func RequireDocument(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return usageErrorf(`missing required argument: <document>

Usage: %s

Example:
  %s record.json

Use 'muninn-geoms extract --format json <path>' to produce a document.`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireFileNames validates that at least one file name is provided.
func RequireFileNames(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return usageErrorf(`missing required argument: <name>

Usage: %s

Example:
  %s groundbased_ftir.o3_iup.bremen001_ny.alesund_20200101t000000z_20200131t235959z_001.hdf`,
			cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}
