package domain

import (
	"bytes"
	"strings"
	"text/template"
)

// Prompt templates. The rule block is fixed text the model must follow; the
// intent is embedded verbatim, without escaping.

var commandPromptTmpl = template.Must(template.New("command").Parse(
	`You are a CLI assistant. Convert the user's intent into a single shell command.

Current directory: {{.WorkingDir}}
Files:
{{.Files}}
{{if .Extra}}
Additional context:
{{.Extra}}
{{end}}
User intent: "{{.Intent}}"

STRICT RULES:
- Output ONLY the command itself, nothing else
- NO markdown, NO backticks, NO code blocks
- NO explanations, NO comments, NO alternatives
- ONE single line command only
- Do NOT wrap in quotes or backticks`))

var commitPromptTmpl = template.Must(template.New("commit").Parse(
	`You are a CLI assistant. Generate a git commit command with a meaningful commit message.

Current directory: {{.WorkingDir}}

{{.Extra}}

Based on the changes above, write a SINGLE git commit command with a descriptive commit message.
The message should summarize WHAT changed and WHY (if apparent).

RULES:
- Output ONLY: git commit -m "your message here"
- Message should be concise but descriptive (not just "Update" or "Changes")
- NO markdown, NO backticks, NO explanations
- ONE single line only`))

type promptData struct {
	Intent     string
	WorkingDir string
	Files      string
	Extra      string
}

// BuildPrompt renders the base prompt for an intent and context snapshot.
func BuildPrompt(intent string, snapshot ContextSnapshot) string {
	return render(commandPromptTmpl, promptData{
		Intent:     intent,
		WorkingDir: snapshot.WorkingDir,
		Files:      strings.Join(snapshot.FileNames, "\n"),
	})
}

// BuildPromptWithContext renders the base prompt plus router-gathered
// context. Commit intents get the dedicated commit-message template.
func BuildPromptWithContext(intent string, snapshot ContextSnapshot, extra string) string {
	if extra == "" {
		return BuildPrompt(intent, snapshot)
	}
	if strings.Contains(strings.ToLower(intent), "commit") {
		return render(commitPromptTmpl, promptData{
			Intent:     intent,
			WorkingDir: snapshot.WorkingDir,
			Extra:      extra,
		})
	}
	return render(commandPromptTmpl, promptData{
		Intent:     intent,
		WorkingDir: snapshot.WorkingDir,
		Files:      strings.Join(snapshot.FileNames, "\n"),
		Extra:      extra,
	})
}

func render(tmpl *template.Template, data promptData) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return data.Intent
	}
	return buf.String()
}
