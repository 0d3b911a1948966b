// Package shell installs the keybinding integration for supported shells.
package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aish-sh/aish/assets"
	"github.com/aish-sh/aish/internal/domain"
	"github.com/aish-sh/aish/internal/ports"
)

// Installer writes the integration script under the config directory and
// sources it from the shell rc file.
type Installer struct {
	configDir string
	logger    ports.Logger
}

// NewInstaller builds an Installer rooted at configDir.
func NewInstaller(configDir string, logger ports.Logger) *Installer {
	return &Installer{configDir: configDir, logger: logger}
}

// DetectShell returns the user's shell name from $SHELL, defaulting to zsh.
func (i *Installer) DetectShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return filepath.Base(shell)
	}
	return "zsh"
}

// Install implements ports.ShellIntegrator. Installation is idempotent: a
// rc file that already sources the script is left alone.
func (i *Installer) Install(shell string) (domain.ShellInstallResult, error) {
	script, err := integrationScript(shell)
	if err != nil {
		return domain.ShellInstallResult{}, err
	}
	rcPath, err := rcPath(shell)
	if err != nil {
		return domain.ShellInstallResult{}, err
	}

	integrationPath := filepath.Join(i.configDir, "integration."+shell)
	if err := os.MkdirAll(i.configDir, domain.DirectoryPermissions); err != nil {
		return domain.ShellInstallResult{}, fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(integrationPath, script, 0o644); err != nil {
		return domain.ShellInstallResult{}, fmt.Errorf("write integration script: %w", err)
	}

	result := domain.ShellInstallResult{
		Shell:           shell,
		RCPath:          rcPath,
		IntegrationPath: integrationPath,
	}

	sourceLine := fmt.Sprintf("source %q", integrationPath)
	rcContent, _ := os.ReadFile(rcPath)
	if strings.Contains(string(rcContent), integrationPath) {
		result.AlreadyInstalled = true
		return result, nil
	}

	rc, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return result, fmt.Errorf("open %s: %w", rcPath, err)
	}
	defer rc.Close()
	if _, err := fmt.Fprintf(rc, "\n# aish\n%s\n", sourceLine); err != nil {
		return result, fmt.Errorf("update %s: %w", rcPath, err)
	}

	i.logger.Info("shell integration installed", map[string]interface{}{
		"shell": shell,
		"rc":    rcPath,
	})
	return result, nil
}

func integrationScript(shell string) ([]byte, error) {
	switch shell {
	case "zsh":
		return assets.ZshIntegration, nil
	case "bash":
		return assets.BashIntegration, nil
	case "fish":
		return assets.FishIntegration, nil
	default:
		return nil, fmt.Errorf("unsupported shell: %s (supported: zsh, bash, fish)", shell)
	}
}

func rcPath(shell string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	switch shell {
	case "zsh":
		return filepath.Join(home, ".zshrc"), nil
	case "bash":
		bashrc := filepath.Join(home, ".bashrc")
		if _, err := os.Stat(bashrc); err == nil {
			return bashrc, nil
		}
		return filepath.Join(home, ".bash_profile"), nil
	case "fish":
		return filepath.Join(home, ".config", "fish", "config.fish"), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s", shell)
	}
}

var _ ports.ShellIntegrator = (*Installer)(nil)
