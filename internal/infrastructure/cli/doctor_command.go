package cli

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aish-sh/aish/internal/app"
	"github.com/aish-sh/aish/internal/domain"
)

// newDoctorCommand reports environment health. Doctor always exits zero;
// it diagnoses, it does not gate.
func newDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check aish configuration and backend health",
		RunE: func(cmd *cobra.Command, args []string) error {
			runDoctor(cmd, container)
			return nil
		},
	}
}

func runDoctor(cmd *cobra.Command, container *app.Container) {
	out := cmd.OutOrStdout()
	ok := color.New(color.FgGreen).Sprint("ok")
	warn := color.New(color.FgYellow).Sprint("warn")

	cfg, err := container.ConfigStore.Load(cmd.Context())
	if err != nil {
		fmt.Fprintf(out, "config   %s  %v\n", warn, err)
		return
	}

	fmt.Fprintf(out, "config   %s  %s\n", ok, container.ConfigStore.Path())
	fmt.Fprintf(out, "backend  %s  %s (model %s)\n", ok, cfg.Backend, cfg.Model)

	checkBackend(cmd.Context(), out, cfg, ok, warn)

	if _, err := exec.LookPath("git"); err == nil {
		fmt.Fprintf(out, "git      %s  found in PATH\n", ok)
	} else {
		fmt.Fprintf(out, "git      %s  not found; context routing will skip git sections\n", warn)
	}

	fmt.Fprintf(out, "history  %s  records stored under %s\n", ok, container.ConfigStore.Dir())
	fmt.Fprintf(out, "cache    %s  %s\n", ok, container.Cache.Dir())
}

func checkBackend(ctx context.Context, out io.Writer, cfg domain.Config, ok, warn string) {
	switch cfg.Backend {
	case domain.BackendOnDevice:
		if runtime.GOOS == "darwin" {
			fmt.Fprintf(out, "ondevice %s  macOS detected; bridge probed on first query\n", ok)
		} else {
			fmt.Fprintf(out, "ondevice %s  only available on macOS; set backend to ollama\n", warn)
		}
	case domain.BackendOllama:
		if tags, err := fetchTags(ctx, cfg.URL); err == nil {
			fmt.Fprintf(out, "ollama   %s  reachable at %s (%d models)\n", ok, cfg.URL, len(tags.Models))
		} else {
			fmt.Fprintf(out, "ollama   %s  %v\n", warn, err)
		}
	}
}
