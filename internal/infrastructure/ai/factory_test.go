package ai

import (
	"testing"

	"github.com/aish-sh/aish/internal/domain"
)

func TestFactoryDispatchesByBackend(t *testing.T) {
	factory := NewFactory()

	cases := []struct {
		backend  domain.Backend
		wantName string
	}{
		{domain.BackendOllama, "ollama"},
		{domain.BackendOnDevice, "ondevice"},
	}
	for _, tc := range cases {
		cfg := domain.DefaultConfig()
		cfg.Backend = tc.backend
		provider, err := factory.For(cfg)
		if err != nil {
			t.Fatalf("For(%s) error: %v", tc.backend, err)
		}
		if provider.Name() != tc.wantName {
			t.Errorf("For(%s).Name() = %q, want %q", tc.backend, provider.Name(), tc.wantName)
		}
	}
}

func TestFactoryRejectsUnknownBackend(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Backend = "mainframe"
	if _, err := NewFactory().For(cfg); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestFactoryRouterUsesRouterModel(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.URL = "http://localhost:11434"
	cfg.RouterModel = "qwen2.5:0.5b"

	provider := NewFactory().Router(cfg)

	ollama, ok := provider.(*ollamaProvider)
	if !ok {
		t.Fatalf("Router returned %T, want *ollamaProvider", provider)
	}
	if ollama.model != "qwen2.5:0.5b" {
		t.Fatalf("router model = %q, want %q", ollama.model, "qwen2.5:0.5b")
	}
}
