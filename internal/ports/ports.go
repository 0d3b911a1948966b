// Package ports defines the interfaces between the application core and the
// infrastructure adapters, following the Ports and Adapters pattern: the
// pipeline depends on these abstractions, never on concrete adapters.
package ports

import (
	"context"
	"time"

	"github.com/aish-sh/aish/internal/domain"
)

// ConfigStore loads and persists the user configuration.
// Load never fails on a missing or malformed file; it returns defaults.
type ConfigStore interface {
	Load(context.Context) (domain.Config, error)
	Save(context.Context, domain.Config) error
	Path() string
}

// ContextCollector gathers the working directory and its sorted file
// listing. Collection is best-effort: a listing failure yields an empty
// list, never an error.
type ContextCollector interface {
	Collect(context.Context) domain.ContextSnapshot
}

// ExtraContextGatherer materializes router-selected context sections
// (git status, diffs, file tree) into prompt text.
type ExtraContextGatherer interface {
	Gather(context.Context, domain.ContextNeeds) string
}

// Provider is one model backend. Generate performs a single
// request/response call; there is no retry.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProviderFactory builds providers from configuration.
type ProviderFactory interface {
	// For returns the provider selected by cfg.Backend.
	For(cfg domain.Config) (Provider, error)
	// Router returns the Ollama provider bound to the router model.
	Router(cfg domain.Config) Provider
}

// SafetyFilter is the denylist guard. It is not a security boundary.
type SafetyFilter interface {
	IsSafe(command string) bool
}

// HistoryRepository persists generation records. Failures here must never
// fail the pipeline.
type HistoryRepository interface {
	Save(domain.HistoryRecord) error
	Records(limit int, search string) ([]domain.HistoryRecord, error)
	Clear() error
	Close() error
}

// CacheRepository stores generations keyed by a content hash.
type CacheRepository interface {
	Get(key string) (domain.CacheEntry, bool, error)
	Set(domain.CacheEntry) error
	Clear() error
	Dir() string
}

// Clipboard copies the accepted command for pasting.
type Clipboard interface {
	Copy(text string) error
	Enabled() bool
}

// ShellIntegrator installs the keybinding widget for a shell.
type ShellIntegrator interface {
	Install(shell string) (domain.ShellInstallResult, error)
	DetectShell() string
}

// ProgressReporter receives pipeline phase updates for interactive display.
// Implementations write to stderr only.
type ProgressReporter interface {
	RouterStart(model string)
	RouterDone(sections []string)
	GenerateStart(model string)
	Done(d time.Duration)
}

// Logger is the structured logging abstraction used across the layers.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
