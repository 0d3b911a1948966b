// Package ai contains the model backend adapters.
package ai

import (
	"fmt"
	"net/http"

	"github.com/aish-sh/aish/internal/domain"
	"github.com/aish-sh/aish/internal/ports"
)

// Factory builds providers from configuration. One shared HTTP client
// covers every backend; its timeout bounds the single generation attempt.
type Factory struct {
	httpClient     *http.Client
	bridgeEndpoint string
}

// NewFactory creates a Factory with the default client and bridge endpoint.
func NewFactory() *Factory {
	return &Factory{
		httpClient: &http.Client{Timeout: domain.GenerateTimeout},
	}
}

// For implements ports.ProviderFactory.
func (f *Factory) For(cfg domain.Config) (ports.Provider, error) {
	switch cfg.Backend {
	case domain.BackendOllama:
		return newOllamaProvider(cfg.URL, cfg.Model, f.httpClient), nil
	case domain.BackendOnDevice:
		return newOnDeviceProvider(f.bridgeEndpoint, f.httpClient), nil
	default:
		return nil, fmt.Errorf("unsupported backend: %s", cfg.Backend)
	}
}

// Router implements ports.ProviderFactory. Context routing always goes
// through Ollama with the small router model.
func (f *Factory) Router(cfg domain.Config) ports.Provider {
	return newOllamaProvider(cfg.URL, cfg.RouterModel, f.httpClient)
}

var _ ports.ProviderFactory = (*Factory)(nil)
