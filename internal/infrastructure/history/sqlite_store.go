// Package history persists generation records in SQLite.
package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/aish-sh/aish/internal/domain"
	"github.com/aish-sh/aish/internal/ports"
)

// SQLiteStore records every generation in a database next to the config.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore creates (or opens) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &SQLiteStore{db: db}
	if err := store.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS generations (
		id TEXT PRIMARY KEY,
		timestamp TEXT,
		intent TEXT,
		command TEXT,
		model TEXT,
		safe INTEGER,
		cached INTEGER,
		duration_ms INTEGER
	);`)
	return err
}

// Save inserts a new record, minting an id when none is set.
func (s *SQLiteStore) Save(record domain.HistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	_, err := s.db.Exec(`INSERT INTO generations
		(id, timestamp, intent, command, model, safe, cached, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Timestamp.Format(time.RFC3339),
		record.Intent,
		record.Command,
		record.Model,
		boolToInt(record.Safe),
		boolToInt(record.FromCache),
		record.DurationMS,
	)
	return err
}

// Records returns recent entries, newest first. search filters intent and
// command by substring; limit <= 0 uses the default.
func (s *SQLiteStore) Records(limit int, search string) ([]domain.HistoryRecord, error) {
	if limit <= 0 {
		limit = domain.DefaultHistoryLimit
	}

	query := strings.Builder{}
	query.WriteString(`SELECT id, timestamp, intent, command, model, safe, cached, duration_ms FROM generations`)
	var args []interface{}
	if search != "" {
		query.WriteString(` WHERE intent LIKE ? OR command LIKE ?`)
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}
	query.WriteString(` ORDER BY timestamp DESC LIMIT ?`)
	args = append(args, limit)

	rows, err := s.db.Query(query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.HistoryRecord
	for rows.Next() {
		var record domain.HistoryRecord
		var timestamp string
		var safe, cached int
		if err := rows.Scan(&record.ID, &timestamp, &record.Intent, &record.Command,
			&record.Model, &safe, &cached, &record.DurationMS); err != nil {
			return nil, err
		}
		record.Timestamp, _ = time.Parse(time.RFC3339, timestamp)
		record.Safe = safe == 1
		record.FromCache = cached == 1
		records = append(records, record)
	}
	return records, rows.Err()
}

// Clear removes all records.
func (s *SQLiteStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM generations`)
	return err
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
