package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/stcorp/muninn-geoms/internal/config"
	"github.com/stcorp/muninn-geoms/internal/product"
	"github.com/stcorp/muninn-geoms/internal/schema"
)

func matchPrefix(values []string, toComplete string) []string {
	var matches []string
	for _, v := range values {
		if strings.HasPrefix(v, toComplete) {
			matches = append(matches, v)
		}
	}
	return matches
}

// completeNamespaces provides shell completion for namespace names.
func completeNamespaces(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return matchPrefix(schema.Namespaces(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeReaders provides shell completion for --reader.
func completeReaders(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return matchPrefix(product.Names(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeOutputFormats provides shell completion for --format.
func completeOutputFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return matchPrefix(config.OutputFormats, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeLogFormats provides shell completion for --log-format.
func completeLogFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return matchPrefix(config.LogFormats, toComplete), cobra.ShellCompDirectiveNoFileComp
}
