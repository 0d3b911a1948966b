package domain

import "time"

// HistoryRecord is one persisted generation.
type HistoryRecord struct {
	ID         string
	Timestamp  time.Time
	Intent     string
	Command    string
	Model      string
	Safe       bool
	FromCache  bool
	DurationMS int64
}

// CacheEntry is one cached generation, addressed by a content hash of
// intent, directory and model.
type CacheEntry struct {
	Key       string    `json:"key"`
	Command   string    `json:"command"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
}
