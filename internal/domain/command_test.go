package domain

import (
	"strings"
	"testing"
)

func TestSanitizeCommandStripsNewlines(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"df -h\n", "df -h"},
		{"rm -rf /\n", "rm -rf /"},
		{"`ls -la`\n", "`ls -la`"},
		{"ls\n-la", "ls -la"},
		{"ls\r\n-la", "ls  -la"},
		{"  docker ps  ", "docker ps"},
		{"\n\n", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := SanitizeCommand(tc.raw); got != tc.want {
			t.Errorf("SanitizeCommand(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestSanitizeCommandIdempotent(t *testing.T) {
	inputs := []string{"df -h\n", "a\rb\nc", "  spaced  out  ", "", "plain"}
	for _, raw := range inputs {
		once := SanitizeCommand(raw)
		twice := SanitizeCommand(once)
		if once != twice {
			t.Errorf("SanitizeCommand not idempotent for %q: %q != %q", raw, once, twice)
		}
	}
}

func TestSanitizeCommandNeverEmitsNewlines(t *testing.T) {
	inputs := []string{"a\nb\nc", "x\r\ny", "\rcmd\n", "git log\n--oneline\n"}
	for _, raw := range inputs {
		got := SanitizeCommand(raw)
		if strings.ContainsAny(got, "\r\n") {
			t.Errorf("SanitizeCommand(%q) = %q still contains newline bytes", raw, got)
		}
	}
}
