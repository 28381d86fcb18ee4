package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stcorp/muninn-geoms/internal/schema"
)

var namespacesCmd = &cobra.Command{
	Use:   "namespaces",
	Short: "List the metadata namespaces provided by this extension",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range schema.Namespaces() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(namespacesCmd)
}
