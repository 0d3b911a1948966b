package domain

import "time"

// Defaults baked into the config layer.
const (
	DefaultModel       = "llama3.2"
	DefaultOllamaURL   = "http://localhost:11434"
	DefaultRouterModel = "qwen2.5:0.5b"
)

// File permissions constants.
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Timeout constants. Generation has no retry logic anywhere; each of these
// bounds a single attempt.
const (
	// GenerateTimeout bounds one model generation call.
	GenerateTimeout = 5 * time.Minute
	// RouterTimeout bounds the context-routing call.
	RouterTimeout = 60 * time.Second
	// TagsTimeout bounds the model-listing call.
	TagsTimeout = 30 * time.Second
	// GitCommandTimeout bounds each context-gathering subprocess.
	GitCommandTimeout = 2 * time.Second
)

// On-device generation parameters.
const (
	OnDeviceTemperature = 0.1
	OnDeviceMaxTokens   = 80
)

// Context truncation limits, in runes.
const (
	DiffTruncateRunes = 4000
	TreeTruncateRunes = 2000
	FileTruncateRunes = 2000
)

// Cache and history limits.
const (
	CacheTTL            = time.Hour
	CacheMaxEntries     = 100
	DefaultHistoryLimit = 20
)
