package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aish-sh/aish/internal/app"
)

func newCacheCommand(container *app.Container) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the generation cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), container.Cache.Dir())
			return nil
		},
	}

	cacheCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all cached generations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.Cache.Clear(); err != nil {
				return usageError(fmt.Errorf("clear cache: %w", err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared.")
			return nil
		},
	})
	return cacheCmd
}
