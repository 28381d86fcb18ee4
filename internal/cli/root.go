package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "muninn-geoms",
	Short: "GEOMS metadata namespace for muninn archives",
	Long: `muninn-geoms provides the "geoms" metadata namespace for muninn archives
holding GEOMS-compliant HDF and netCDF products from ground-based remote
sensing networks (NDACC, EVDC).

It publishes the namespace schema and extracts namespace records from the
global attributes of a product. Products are read from textual attribute
dumps (ncdump -h CDL output, YAML/JSON mappings or KEY=VALUE files).

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - Product could not be opened or read
  21 - Required GEOMS attribute missing
  22 - Timestamp attribute not in YYYYMMDDTHHMMSSZ format
  23 - Property document does not match the schema
  24 - File name does not follow the GEOMS convention`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr())
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("config", ".", "Directory containing geoms.yaml")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: console or json (default from config, else console)")

	_ = rootCmd.RegisterFlagCompletionFunc("log-format", completeLogFormats)
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
