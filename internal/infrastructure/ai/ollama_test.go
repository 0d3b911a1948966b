package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func testClient() *http.Client {
	return &http.Client{Timeout: 5 * time.Second}
}

func TestOllamaGenerateSuccess(t *testing.T) {
	var gotBody generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/generate" {
			t.Errorf("path = %s, want /api/generate", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"response": "df -h\n",
			"done":     true,
		})
	}))
	defer server.Close()

	provider := newOllamaProvider(server.URL, "llama3.2", testClient())
	raw, err := provider.Generate(context.Background(), "show disk usage")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if raw != "df -h\n" {
		t.Fatalf("Generate = %q, want %q", raw, "df -h\n")
	}

	wantBody := generateRequest{Model: "llama3.2", Prompt: "show disk usage", Stream: false}
	if diff := cmp.Diff(wantBody, gotBody); diff != "" {
		t.Fatalf("request body mismatch (-want +got):\n%s", diff)
	}
}

func TestOllamaGenerateNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := newOllamaProvider(server.URL, "llama3.2", testClient())
	if _, err := provider.Generate(context.Background(), "x"); err == nil {
		t.Fatal("expected error on HTTP 500")
	}
}

func TestOllamaGenerateMissingResponseField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"done": true}`))
	}))
	defer server.Close()

	provider := newOllamaProvider(server.URL, "llama3.2", testClient())
	if _, err := provider.Generate(context.Background(), "x"); err == nil {
		t.Fatal("expected error when response field is absent")
	}
}

func TestOllamaGenerateMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	provider := newOllamaProvider(server.URL, "llama3.2", testClient())
	if _, err := provider.Generate(context.Background(), "x"); err == nil {
		t.Fatal("expected error on malformed JSON body")
	}
}

func TestOllamaGenerateInvalidURL(t *testing.T) {
	for _, badURL := range []string{"://nope", "localhost:11434", ""} {
		provider := newOllamaProvider(badURL, "llama3.2", testClient())
		if _, err := provider.Generate(context.Background(), "x"); err == nil {
			t.Errorf("expected error for base URL %q", badURL)
		}
	}
}

func TestOllamaGenerateConnectionRefused(t *testing.T) {
	provider := newOllamaProvider("http://127.0.0.1:1", "llama3.2", testClient())
	if _, err := provider.Generate(context.Background(), "x"); err == nil {
		t.Fatal("expected connection error")
	}
}
