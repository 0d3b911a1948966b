package cli

import (
	"github.com/atotto/clipboard"

	"github.com/aish-sh/aish/internal/ports"
)

// SystemClipboard copies text through the platform clipboard.
type SystemClipboard struct{}

// NewClipboard builds the system clipboard adapter.
func NewClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

func (c *SystemClipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}

func (c *SystemClipboard) Enabled() bool {
	return !clipboard.Unsupported
}

var _ ports.Clipboard = (*SystemClipboard)(nil)
