package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aish-sh/aish/internal/app"
	"github.com/aish-sh/aish/internal/domain"
)

func newHistoryCommand(container *app.Container) *cobra.Command {
	var (
		limit  int
		search string
	)

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show past generations",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := container.History.Records(limit, search)
			if err != nil {
				return usageError(fmt.Errorf("read history: %w", err))
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No history yet.")
				return nil
			}
			for _, record := range records {
				flag := ""
				if !record.Safe {
					flag = " [blocked]"
				} else if record.FromCache {
					flag = " [cached]"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-30q  %s%s\n",
					record.Timestamp.Format("2006-01-02 15:04"),
					record.Intent,
					record.Command,
					flag)
			}
			return nil
		},
	}

	historyCmd.Flags().IntVar(&limit, "limit", domain.DefaultHistoryLimit, "Maximum records to show")
	historyCmd.Flags().StringVar(&search, "search", "", "Filter by substring of intent or command")

	historyCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all history records",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.History.Clear(); err != nil {
				return usageError(fmt.Errorf("clear history: %w", err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	})
	return historyCmd
}
