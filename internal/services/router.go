package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/aish-sh/aish/internal/domain"
	"github.com/aish-sh/aish/internal/ports"
)

const routerPrompt = `Decide if this shell command needs git context. Output JSON only.

RULES:
- Default ALL to false
- Set git_diff=true, git_status=true, git_log=true if intent mentions: "commit", "add and commit", "commit message", "push", "what changed"
- Most commands need NO context (ffmpeg, curl, find, ls, grep, docker, npm, convert, compress, etc.)

Examples:
- "convert video to mp4" -> {"git_diff":false,"git_diff_staged":false,"git_status":false,"git_log":false,"git_branch":false,"file_tree":false,"read_files":[]}
- "find large files" -> {"git_diff":false,"git_diff_staged":false,"git_status":false,"git_log":false,"git_branch":false,"file_tree":false,"read_files":[]}
- "commit my work" -> {"git_diff":true,"git_diff_staged":false,"git_status":true,"git_log":true,"git_branch":false,"file_tree":false,"read_files":[]}
- "add and commit" -> {"git_diff":true,"git_diff_staged":false,"git_status":true,"git_log":true,"git_branch":false,"file_tree":false,"read_files":[]}

Intent: "%INTENT%"

JSON:`

// Router asks a small model which context sections an intent needs.
// Routing is advisory; every failure degrades to "no extra context".
type Router struct {
	Factory ports.ProviderFactory
	Logger  ports.Logger
}

// Route queries the router model and applies the commit fallback.
func (r *Router) Route(ctx context.Context, cfg domain.Config, intent string) domain.ContextNeeds {
	needs := r.ask(ctx, cfg, intent)

	// Commit intents always get git context, whatever the router said.
	if strings.Contains(strings.ToLower(intent), "commit") && !needs.GitDiff && !needs.GitStatus {
		needs.GitDiff = true
		needs.GitStatus = true
		needs.GitLog = true
	}
	return needs
}

func (r *Router) ask(ctx context.Context, cfg domain.Config, intent string) domain.ContextNeeds {
	provider := r.Factory.Router(cfg)

	rctx, cancel := context.WithTimeout(ctx, domain.RouterTimeout)
	defer cancel()

	prompt := strings.ReplaceAll(routerPrompt, "%INTENT%", intent)
	response, err := provider.Generate(rctx, prompt)
	if err != nil {
		if r.Logger != nil {
			r.Logger.Debug("router unavailable", map[string]interface{}{"error": err.Error()})
		}
		return domain.ContextNeeds{}
	}
	return parseRouterResponse(response)
}

// parseRouterResponse extracts a ContextNeeds JSON object from the model
// answer, tolerating surrounding prose. Unparseable answers mean no needs.
func parseRouterResponse(response string) domain.ContextNeeds {
	cleaned := strings.TrimSpace(response)

	var needs domain.ContextNeeds
	if err := json.Unmarshal([]byte(cleaned), &needs); err == nil {
		return needs
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		needs = domain.ContextNeeds{}
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &needs); err == nil {
			return needs
		}
	}

	return domain.ContextNeeds{}
}
