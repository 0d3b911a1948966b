package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseBackend(t *testing.T) {
	cases := []struct {
		in   string
		want Backend
	}{
		{"ollama", BackendOllama},
		{"OLLAMA", BackendOllama},
		{"remote", BackendOllama},
		{"ondevice", BackendOnDevice},
		{"on-device", BackendOnDevice},
		{"apple", BackendOnDevice},
		{"  ollama  ", BackendOllama},
	}
	for _, tc := range cases {
		got, err := ParseBackend(tc.in)
		if err != nil {
			t.Errorf("ParseBackend(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseBackend(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseBackendRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "gpt4", "invalidvalue"} {
		if _, err := ParseBackend(in); err == nil {
			t.Errorf("ParseBackend(%q) expected error", in)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	want := Config{
		Backend:       BackendOnDevice,
		Model:         "llama3.2",
		URL:           "http://localhost:11434",
		RouterModel:   "qwen2.5:0.5b",
		RouterEnabled: true,
	}
	if diff := cmp.Diff(want, DefaultConfig()); diff != "" {
		t.Fatalf("DefaultConfig mismatch (-want +got):\n%s", diff)
	}
}
