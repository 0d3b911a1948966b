// Package contextcollector gathers environmental context for prompts.
package contextcollector

import (
	"context"
	"os"
	"sort"

	"github.com/aish-sh/aish/internal/domain"
	"github.com/aish-sh/aish/internal/ports"
)

// Collector implements the ContextCollector port over the working directory.
type Collector struct{}

// NewCollector builds a Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Collect returns the working directory and its sorted entry names.
// Context is best-effort: any failure degrades to empty values rather than
// failing the pipeline.
func (c *Collector) Collect(context.Context) domain.ContextSnapshot {
	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}
	return domain.ContextSnapshot{
		WorkingDir: wd,
		FileNames:  listEntries(wd),
	}
}

func listEntries(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

var _ ports.ContextCollector = (*Collector)(nil)
