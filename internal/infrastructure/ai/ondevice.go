package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"

	"github.com/aish-sh/aish/internal/domain"
	"github.com/aish-sh/aish/internal/ports"
)

// DefaultBridgeEndpoint is where the Apple foundation-model bridge serves
// its OpenAI-compatible API.
const DefaultBridgeEndpoint = "http://localhost:9999/v1/chat/completions"

// onDeviceProvider talks to the local foundation-model bridge. The
// capability exists only on darwin with the bridge running; everything else
// reports domain.ErrBackendUnavailable.
type onDeviceProvider struct {
	endpoint   string
	httpClient *http.Client
	goos       string
}

func newOnDeviceProvider(endpoint string, client *http.Client) ports.Provider {
	if endpoint == "" {
		endpoint = DefaultBridgeEndpoint
	}
	return &onDeviceProvider{
		endpoint:   endpoint,
		httpClient: client,
		goos:       runtime.GOOS,
	}
}

func (p *onDeviceProvider) Name() string {
	return "ondevice"
}

func (p *onDeviceProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.goos != "darwin" {
		return "", fmt.Errorf("%w: requires macOS", domain.ErrBackendUnavailable)
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model:       "foundation",
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   domain.OnDeviceMaxTokens,
		Temperature: domain.OnDeviceTemperature,
		Stream:      false,
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("content-type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		// Bridge not running counts as the capability being absent.
		return "", fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ondevice: unexpected status %s", resp.Status)
	}

	var decoded chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("ondevice: decode response: %w", err)
	}
	content := decoded.FirstMessage()
	if content == "" && len(decoded.Choices) == 0 {
		return "", fmt.Errorf("ondevice: empty choices in response")
	}
	return content, nil
}

var _ ports.Provider = (*onDeviceProvider)(nil)
