// Package cli wires the cobra command tree and owns the process exit
// contract: stdout carries only the generated command, everything else
// goes to stderr.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aish-sh/aish/internal/app"
	"github.com/aish-sh/aish/internal/domain"
)

// NewRootCmd builds the cobra root command on top of the wired container.
func NewRootCmd(container *app.Container) *cobra.Command {
	var (
		quick   bool
		verbose bool
	)

	root := &cobra.Command{
		Use:   "aish [intent...]",
		Short: "aish turns natural language into a single shell command",
		Long: `aish converts a natural-language request into one shell command using a
local model, prints it to stdout, and never executes it.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), `Usage: aish "describe the command you want"`)
				return &ExitError{Code: ExitUsage}
			}
			return runGenerate(cmd, container, strings.Join(args, " "), quick, verbose)
		},
	}

	root.PersistentFlags().BoolVarP(&quick, "quick", "q", false, "Skip context routing for a faster answer")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Log prompts and raw model output to stderr")

	root.AddCommand(
		newConfigCommand(container),
		newModelsCommand(container),
		newHistoryCommand(container),
		newCacheCommand(container),
		newInitCommand(container),
		newDoctorCommand(container),
		newVersionCommand(),
	)
	return root
}

// runGenerate drives one intent through the pipeline and maps the outcome
// onto the exit-code contract.
func runGenerate(cmd *cobra.Command, container *app.Container, intent string, quick, verbose bool) error {
	interactive := isatty.IsTerminal(os.Stdout.Fd()) && !quick
	progress := NewProgress(cmd.ErrOrStderr(), interactive)
	container.Query.Progress = progress

	if interactive {
		progress.PrintIntent(intent)
	}

	// Routing only pays off interactively; piped output behaves like --quick.
	result, err := container.Query.Run(domain.QueryRequest{
		Context: cmd.Context(),
		Intent:  intent,
		Quick:   quick || !interactive,
		Verbose: verbose,
	})
	if err != nil {
		if errors.Is(err, domain.ErrBackendUnavailable) {
			fmt.Fprintln(cmd.ErrOrStderr(), "error: on-device model unavailable; try `aish config set backend ollama`")
			return &ExitError{Code: ExitBackend}
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
		return &ExitError{Code: ExitBackend}
	}

	if !result.Safe {
		// The rejected command never reaches stdout and is never echoed.
		fmt.Fprintln(cmd.ErrOrStderr(), "aish: generated command was blocked by the safety filter")
		return &ExitError{Code: ExitBlocked}
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Command)

	if interactive {
		clip := NewClipboard()
		if clip.Enabled() {
			if err := clip.Copy(result.Command); err == nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "(copied to clipboard)")
			}
		}
		if result.FromCache {
			fmt.Fprintln(cmd.ErrOrStderr(), "(cached)")
		}
	}
	return nil
}
