package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/aish-sh/aish/internal/app"
	"github.com/aish-sh/aish/internal/domain"
)

type tagsResponse struct {
	Models []tagEntry `json:"models"`
}

type tagEntry struct {
	Name       string    `json:"name"`
	Size       uint64    `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
}

func newModelsCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List models available on the Ollama server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listModels(cmd, container)
		},
	}
}

func listModels(cmd *cobra.Command, container *app.Container) error {
	cfg, err := container.ConfigStore.Load(cmd.Context())
	if err != nil {
		return usageError(fmt.Errorf("load config: %w", err))
	}

	tags, err := fetchTags(cmd.Context(), cfg.URL)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "error: cannot reach Ollama at %s: %v\n", cfg.URL, err)
		fmt.Fprintln(cmd.ErrOrStderr(), "hint: is `ollama serve` running?")
		return &ExitError{Code: ExitBackend}
	}

	if len(tags.Models) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No models installed. Pull one with `ollama pull llama3.2`.")
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-40s %-10s %s\n", "NAME", "SIZE", "MODIFIED")
	for _, model := range tags.Models {
		marker := ""
		if model.Name == cfg.Model {
			marker = " *"
		}
		fmt.Fprintf(out, "%-40s %-10s %s%s\n",
			model.Name,
			humanize.Bytes(model.Size),
			humanize.Time(model.ModifiedAt),
			marker)
	}
	return nil
}

func fetchTags(ctx context.Context, baseURL string) (tagsResponse, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return tagsResponse{}, fmt.Errorf("invalid ollama url %q", baseURL)
	}

	ctx, cancel := context.WithTimeout(ctx, domain.TagsTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.JoinPath("api", "tags").String(), nil)
	if err != nil {
		return tagsResponse{}, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return tagsResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return tagsResponse{}, fmt.Errorf("ollama returned %d: %s", resp.StatusCode, string(body))
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return tagsResponse{}, fmt.Errorf("decode tags response: %w", err)
	}
	return tags, nil
}
