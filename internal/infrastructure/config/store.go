// Package config persists the flat key/value configuration as YAML under
// the per-user config directory.
package config

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aish-sh/aish/internal/domain"
	"github.com/aish-sh/aish/internal/ports"
)

// FileStore reads and writes ~/.config/aish/config.yaml. The path is
// injectable for tests and overridable via AISH_CONFIG.
type FileStore struct {
	overridePath string
}

// NewFileStore builds a store; an empty path selects the default location.
func NewFileStore(path string) *FileStore {
	return &FileStore{overridePath: path}
}

// Path returns the resolved config file path.
func (s *FileStore) Path() string {
	if s.overridePath != "" {
		return s.overridePath
	}
	if custom := os.Getenv("AISH_CONFIG"); custom != "" {
		return custom
	}
	return filepath.Join(userConfigDir(), "config.yaml")
}

// Dir returns the directory holding the config file and sibling state
// (history database, cache, integration scripts).
func (s *FileStore) Dir() string {
	return filepath.Dir(s.Path())
}

// fileConfig mirrors the on-disk document. Pointer fields distinguish a
// missing key from an explicit zero value.
type fileConfig struct {
	Backend       *string `yaml:"backend" json:"backend"`
	Model         *string `yaml:"model" json:"ollama_model"`
	URL           *string `yaml:"url" json:"ollama_url"`
	RouterModel   *string `yaml:"router_model" json:"router_model"`
	RouterEnabled *bool   `yaml:"router_enabled" json:"router_enabled"`
}

// Load implements ports.ConfigStore. A missing or malformed file yields the
// documented defaults; unknown keys are ignored; missing keys default.
func (s *FileStore) Load(context.Context) (domain.Config, error) {
	path := s.Path()

	data, err := os.ReadFile(path)
	if err != nil {
		if cfg, ok := s.loadLegacyJSON(); ok {
			return cfg, nil
		}
		return domain.DefaultConfig(), nil
	}

	var raw fileConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.DefaultConfig(), nil
	}
	return hydrate(raw), nil
}

// loadLegacyJSON migrates a pre-YAML config.json sitting next to the YAML
// path. The migrated file is rewritten as YAML and the original removed.
func (s *FileStore) loadLegacyJSON() (domain.Config, bool) {
	jsonPath := filepath.Join(s.Dir(), "config.json")
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return domain.Config{}, false
	}
	var raw fileConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Config{}, false
	}
	cfg := hydrate(raw)
	if err := s.Save(context.Background(), cfg); err == nil {
		_ = os.Remove(jsonPath)
	}
	return cfg, true
}

// Save implements ports.ConfigStore: create parents, overwrite in place.
func (s *FileStore) Save(_ context.Context, cfg domain.Config) error {
	path := s.Path()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return err
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

func hydrate(raw fileConfig) domain.Config {
	cfg := domain.DefaultConfig()
	if raw.Backend != nil {
		if backend, err := domain.ParseBackend(*raw.Backend); err == nil {
			cfg.Backend = backend
		}
	}
	if raw.Model != nil && *raw.Model != "" {
		cfg.Model = *raw.Model
	}
	if raw.URL != nil && *raw.URL != "" {
		cfg.URL = *raw.URL
	}
	if raw.RouterModel != nil && *raw.RouterModel != "" {
		cfg.RouterModel = *raw.RouterModel
	}
	if raw.RouterEnabled != nil {
		cfg.RouterEnabled = *raw.RouterEnabled
	}
	return cfg
}

func userConfigDir() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "aish")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "aish")
}

var _ ports.ConfigStore = (*FileStore)(nil)
