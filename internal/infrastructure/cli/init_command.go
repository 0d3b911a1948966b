package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aish-sh/aish/internal/app"
)

func newInitCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init [shell]",
		Short: "Install the Ctrl+G shell widget (zsh, bash, or fish)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := container.Installer.DetectShell()
			if len(args) == 1 {
				shell = args[0]
			}

			result, err := container.Installer.Install(shell)
			if err != nil {
				return usageError(err)
			}

			out := cmd.OutOrStdout()
			if result.AlreadyInstalled {
				fmt.Fprintf(out, "%s integration already installed (%s)\n", result.Shell, result.RCPath)
				return nil
			}
			fmt.Fprintf(out, "Installed %s integration:\n", result.Shell)
			fmt.Fprintf(out, "  widget: %s\n", result.IntegrationPath)
			fmt.Fprintf(out, "  rc:     %s\n", result.RCPath)
			fmt.Fprintln(out, "Restart your shell, type a request, and press Ctrl+G.")
			return nil
		},
	}
}
