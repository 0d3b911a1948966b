package contextcollector

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/aish-sh/aish/internal/domain"
	"github.com/aish-sh/aish/internal/ports"
)

// Gatherer materializes router-selected context sections by shelling out to
// git and friends. Every subprocess runs under a short timeout; failures
// simply drop the section.
type Gatherer struct {
	logger ports.Logger
}

// NewGatherer builds a Gatherer.
func NewGatherer(logger ports.Logger) *Gatherer {
	return &Gatherer{logger: logger}
}

// Gather renders the requested sections as prompt text.
func (g *Gatherer) Gather(ctx context.Context, needs domain.ContextNeeds) string {
	var sections []string

	if !isGitRepo(ctx) {
		if needs.FileTree {
			if tree := runCommand(ctx, "ls", "-la"); tree != "" {
				sections = append(sections, section("File listing", tree))
			}
		}
		sections = append(sections, g.readFiles(needs.ReadFiles)...)
		return strings.Join(sections, "\n\n")
	}

	if needs.GitStatus {
		if status := runCommand(ctx, "git", "status", "--short"); status != "" {
			sections = append(sections, section("Git Status", status))
		}
	}
	if needs.GitDiff {
		if diff := runCommand(ctx, "git", "diff"); diff != "" {
			sections = append(sections, section("Git Diff (unstaged)", truncate(diff, domain.DiffTruncateRunes)))
		}
	}
	if needs.GitDiffStaged {
		if diff := runCommand(ctx, "git", "diff", "--staged"); diff != "" {
			sections = append(sections, section("Git Diff (staged)", truncate(diff, domain.DiffTruncateRunes)))
		}
	}
	if needs.GitLog {
		if log := runCommand(ctx, "git", "log", "--oneline", "-10"); log != "" {
			sections = append(sections, section("Recent Commits", log))
		}
	}
	if needs.GitBranch {
		if branches := runCommand(ctx, "git", "branch", "-a"); branches != "" {
			sections = append(sections, section("Branches", branches))
		}
	}
	if needs.FileTree {
		tree := runCommand(ctx, "tree", "-L", "2", "--noreport")
		if tree == "" {
			tree = runCommand(ctx, "find", ".", "-maxdepth", "2", "-type", "f")
		}
		if tree != "" {
			sections = append(sections, section("File Tree", truncate(tree, domain.TreeTruncateRunes)))
		}
	}
	sections = append(sections, g.readFiles(needs.ReadFiles)...)

	return strings.Join(sections, "\n\n")
}

func (g *Gatherer) readFiles(paths []string) []string {
	var sections []string
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			g.logger.Debug("context file unreadable", map[string]interface{}{"path": path})
			continue
		}
		sections = append(sections, section(path, truncate(string(data), domain.FileTruncateRunes)))
	}
	return sections
}

func section(title string, body string) string {
	return fmt.Sprintf("=== %s ===\n%s", title, body)
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

func isGitRepo(ctx context.Context) bool {
	return runCommand(ctx, "git", "rev-parse", "--git-dir") != ""
}

func runCommand(ctx context.Context, name string, args ...string) string {
	cctx, cancel := context.WithTimeout(ctx, domain.GitCommandTimeout)
	defer cancel()
	out, err := exec.CommandContext(cctx, name, args...).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

var _ ports.ExtraContextGatherer = (*Gatherer)(nil)
