// Package security implements the denylist safety filter. It guards against
// obvious footguns; it is explicitly not a sandbox.
package security

import (
	"strings"

	"github.com/aish-sh/aish/internal/ports"
)

// Filter implements the SafetyFilter port.
type Filter struct{}

// NewFilter builds the denylist filter.
func NewFilter() *Filter {
	return &Filter{}
}

// IsSafe reports whether a sanitized command passes the denylist.
// Rejected: "rm -rf /" and "rm -rf *" in any letter case, any backtick
// (case-sensitive by nature), and any code point below 0x20. Everything
// else is allowed; there are no other rules.
func (f *Filter) IsSafe(command string) bool {
	lowered := strings.ToLower(command)
	if strings.Contains(lowered, "rm -rf /") {
		return false
	}
	if strings.Contains(lowered, "rm -rf *") {
		return false
	}
	if strings.ContainsRune(command, '`') {
		return false
	}
	for _, r := range command {
		if r < 0x20 {
			return false
		}
	}
	return true
}

var _ ports.SafetyFilter = (*Filter)(nil)
