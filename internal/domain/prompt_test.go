package domain

import (
	"strings"
	"testing"
)

func TestBuildPromptEmbedsContext(t *testing.T) {
	snapshot := ContextSnapshot{
		WorkingDir: "/home/user/project",
		FileNames:  []string{"README.md", "go.mod", "main.go"},
	}

	prompt := BuildPrompt("list files", snapshot)

	for _, want := range []string{
		"Current directory: /home/user/project",
		"README.md\ngo.mod\nmain.go",
		`User intent: "list files"`,
		"ONE single line command only",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	snapshot := ContextSnapshot{WorkingDir: "/tmp", FileNames: []string{"a", "b"}}
	if BuildPrompt("x", snapshot) != BuildPrompt("x", snapshot) {
		t.Fatal("BuildPrompt is not deterministic")
	}
}

func TestBuildPromptEmbedsIntentVerbatim(t *testing.T) {
	intent := `delete "everything" {{weird}} $(stuff)`
	prompt := BuildPrompt(intent, ContextSnapshot{WorkingDir: "/tmp"})
	if !strings.Contains(prompt, intent) {
		t.Fatalf("intent not embedded verbatim:\n%s", prompt)
	}
}

func TestBuildPromptWithContextAppendsSections(t *testing.T) {
	snapshot := ContextSnapshot{WorkingDir: "/repo", FileNames: []string{"main.go"}}
	extra := "=== Git Status ===\nM main.go"

	prompt := BuildPromptWithContext("stash my changes", snapshot, extra)

	if !strings.Contains(prompt, "Additional context:") || !strings.Contains(prompt, extra) {
		t.Fatalf("extra context not embedded:\n%s", prompt)
	}
}

func TestBuildPromptWithContextUsesCommitTemplate(t *testing.T) {
	snapshot := ContextSnapshot{WorkingDir: "/repo"}
	extra := "=== Git Diff (unstaged) ===\n+added line"

	prompt := BuildPromptWithContext("commit my work", snapshot, extra)

	if !strings.Contains(prompt, "git commit command") {
		t.Fatalf("expected commit template:\n%s", prompt)
	}
	if !strings.Contains(prompt, extra) {
		t.Fatalf("commit prompt missing gathered diff:\n%s", prompt)
	}
}

func TestBuildPromptWithContextFallsBackWhenEmpty(t *testing.T) {
	snapshot := ContextSnapshot{WorkingDir: "/repo", FileNames: []string{"x"}}
	if BuildPromptWithContext("list files", snapshot, "") != BuildPrompt("list files", snapshot) {
		t.Fatal("empty extra context should render the base prompt")
	}
}
