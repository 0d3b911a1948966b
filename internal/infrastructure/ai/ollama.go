package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/aish-sh/aish/internal/ports"
)

// ollamaProvider issues a single non-streaming call against the native
// Ollama generate API.
type ollamaProvider struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

func newOllamaProvider(baseURL string, model string, client *http.Client) ports.Provider {
	return &ollamaProvider{
		baseURL:    baseURL,
		model:      model,
		httpClient: client,
	}
}

func (o *ollamaProvider) Name() string {
	return "ollama"
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// generateResponse uses a pointer so a body without the field is
// distinguishable from an empty response.
type generateResponse struct {
	Response *string `json:"response"`
}

func (o *ollamaProvider) Generate(ctx context.Context, prompt string) (string, error) {
	endpoint, err := o.endpoint()
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(generateRequest{
		Model:  o.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("content-type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("ollama request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama: unexpected status %s", resp.Status)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("ollama: decode response: %w", err)
	}
	if decoded.Response == nil {
		return "", fmt.Errorf("ollama: response field missing in body")
	}
	return *decoded.Response, nil
}

func (o *ollamaProvider) endpoint() (string, error) {
	parsed, err := url.Parse(o.baseURL)
	if err != nil {
		return "", fmt.Errorf("ollama: invalid base URL %q: %w", o.baseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("ollama: invalid base URL %q: missing http scheme", o.baseURL)
	}
	return parsed.JoinPath("api", "generate").String(), nil
}

var _ ports.Provider = (*ollamaProvider)(nil)
