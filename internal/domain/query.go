package domain

import (
	"context"
	"time"
)

// QueryRequest describes one generation run.
type QueryRequest struct {
	Context context.Context
	Intent  string
	// Quick skips routing and status output; used by the shell widget.
	Quick   bool
	Verbose bool
}

// QueryResult is the outcome of a generation run. Command is the sanitized
// single-line command; Safe reports the denylist verdict on it.
type QueryResult struct {
	Command         string
	Raw             string
	Model           string
	Safe            bool
	FromCache       bool
	ContextSections []string
	Duration        time.Duration
}
