package domain

import "strings"

var newlineReplacer = strings.NewReplacer("\r", " ", "\n", " ")

// SanitizeCommand collapses raw model output into a single trimmed line.
// Newlines and carriage returns become spaces; nothing else is altered, so
// backticks and other markdown artifacts survive for the safety filter to
// judge. Total and idempotent; may return an empty string.
func SanitizeCommand(raw string) string {
	return strings.TrimSpace(newlineReplacer.Replace(raw))
}
