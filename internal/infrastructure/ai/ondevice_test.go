package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aish-sh/aish/internal/domain"
)

func TestOnDeviceUnavailableOffDarwin(t *testing.T) {
	provider := &onDeviceProvider{
		endpoint:   DefaultBridgeEndpoint,
		httpClient: testClient(),
		goos:       "linux",
	}

	_, err := provider.Generate(context.Background(), "list files")
	if !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Fatalf("err = %v, want ErrBackendUnavailable", err)
	}
}

func TestOnDeviceUnavailableWhenBridgeDown(t *testing.T) {
	provider := &onDeviceProvider{
		endpoint:   "http://127.0.0.1:1/v1/chat/completions",
		httpClient: testClient(),
		goos:       "darwin",
	}

	_, err := provider.Generate(context.Background(), "list files")
	if !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Fatalf("err = %v, want ErrBackendUnavailable", err)
	}
}

func TestOnDeviceGenerateThroughBridge(t *testing.T) {
	var gotBody chatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ls -la"}}]}`))
	}))
	defer server.Close()

	provider := &onDeviceProvider{
		endpoint:   server.URL,
		httpClient: testClient(),
		goos:       "darwin",
	}

	raw, err := provider.Generate(context.Background(), "list files")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if raw != "ls -la" {
		t.Fatalf("Generate = %q, want %q", raw, "ls -la")
	}
	if gotBody.Temperature != domain.OnDeviceTemperature {
		t.Errorf("temperature = %v, want %v", gotBody.Temperature, domain.OnDeviceTemperature)
	}
	if gotBody.MaxTokens != domain.OnDeviceMaxTokens {
		t.Errorf("max tokens = %d, want %d", gotBody.MaxTokens, domain.OnDeviceMaxTokens)
	}
	if gotBody.Stream {
		t.Error("stream should be false")
	}
}

func TestOnDeviceBridgeErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	provider := &onDeviceProvider{endpoint: server.URL, httpClient: testClient(), goos: "darwin"}
	if _, err := provider.Generate(context.Background(), "x"); err == nil {
		t.Fatal("expected error on HTTP 503")
	}
}
