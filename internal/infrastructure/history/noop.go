package history

import (
	"github.com/aish-sh/aish/internal/domain"
	"github.com/aish-sh/aish/internal/ports"
)

// NoopStore stands in when the SQLite database cannot be opened; history is
// a convenience, never a requirement.
type NoopStore struct{}

func (NoopStore) Save(domain.HistoryRecord) error { return nil }

func (NoopStore) Records(int, string) ([]domain.HistoryRecord, error) { return nil, nil }

func (NoopStore) Clear() error { return nil }

func (NoopStore) Close() error { return nil }

var _ ports.HistoryRepository = NoopStore{}
