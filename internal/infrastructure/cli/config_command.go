package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aish-sh/aish/internal/app"
	"github.com/aish-sh/aish/internal/domain"
)

func newConfigCommand(container *app.Container) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and change aish configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd, container)
		},
	}

	configCmd.AddCommand(
		newConfigShowCommand(container),
		newConfigSetCommand(container),
	)
	return configCmd
}

func newConfigShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd, container)
		},
	}
}

func newConfigSetCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value (backend, model, url, router_model, router_enabled)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setConfigurationValue(cmd, container, args[0], args[1])
		},
	}
}

func showConfiguration(cmd *cobra.Command, container *app.Container) error {
	cfg, err := container.ConfigStore.Load(cmd.Context())
	if err != nil {
		return usageError(fmt.Errorf("load config: %w", err))
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return usageError(fmt.Errorf("marshal config: %w", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", container.ConfigStore.Path())
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

// setConfigurationValue validates key and value before touching the file;
// an invalid pair leaves the stored configuration unchanged.
func setConfigurationValue(cmd *cobra.Command, container *app.Container, key, value string) error {
	cfg, err := container.ConfigStore.Load(cmd.Context())
	if err != nil {
		return usageError(fmt.Errorf("load config: %w", err))
	}

	switch key {
	case "backend":
		backend, err := domain.ParseBackend(value)
		if err != nil {
			return usageError(err)
		}
		cfg.Backend = backend
	case "model":
		cfg.Model = value
	case "url":
		cfg.URL = value
	case "router_model":
		cfg.RouterModel = value
	case "router_enabled":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return usageError(fmt.Errorf("router_enabled must be true or false, got %q", value))
		}
		cfg.RouterEnabled = enabled
	default:
		return usageError(fmt.Errorf("unknown config key %q (valid: backend, model, url, router_model, router_enabled)", key))
	}

	if err := container.ConfigStore.Save(cmd.Context(), cfg); err != nil {
		return usageError(fmt.Errorf("save config: %w", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
	return nil
}
