package domain

import (
	"fmt"
	"strings"
)

// Backend identifies which model provider generates commands.
type Backend string

const (
	// BackendOnDevice uses the local Apple foundation-model bridge.
	BackendOnDevice Backend = "ondevice"
	// BackendOllama uses a locally hosted Ollama server.
	BackendOllama Backend = "ollama"
)

// ParseBackend normalizes a user-supplied backend name.
func ParseBackend(value string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ondevice", "on-device", "apple":
		return BackendOnDevice, nil
	case "ollama", "remote":
		return BackendOllama, nil
	default:
		return "", fmt.Errorf("unknown backend: %s", value)
	}
}

func (b Backend) String() string {
	return string(b)
}

// Config mirrors ~/.config/aish/config.yaml.
type Config struct {
	Backend       Backend `yaml:"backend"`
	Model         string  `yaml:"model"`
	URL           string  `yaml:"url"`
	RouterModel   string  `yaml:"router_model"`
	RouterEnabled bool    `yaml:"router_enabled"`
}

// DefaultConfig returns the documented defaults used whenever the config
// file is absent or unreadable.
func DefaultConfig() Config {
	return Config{
		Backend:       BackendOnDevice,
		Model:         DefaultModel,
		URL:           DefaultOllamaURL,
		RouterModel:   DefaultRouterModel,
		RouterEnabled: true,
	}
}
