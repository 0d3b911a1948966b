package domain

// ContextSnapshot captures the environment at invocation time. It is
// immutable once collected and discarded after prompt construction.
type ContextSnapshot struct {
	WorkingDir string
	FileNames  []string
}

// ContextNeeds is the router model's answer: which extra context sections
// the intent calls for. JSON field names match the router prompt examples.
type ContextNeeds struct {
	GitDiff       bool     `json:"git_diff"`
	GitDiffStaged bool     `json:"git_diff_staged"`
	GitStatus     bool     `json:"git_status"`
	GitLog        bool     `json:"git_log"`
	GitBranch     bool     `json:"git_branch"`
	FileTree      bool     `json:"file_tree"`
	ReadFiles     []string `json:"read_files"`
}

// Any reports whether at least one section was requested.
func (n ContextNeeds) Any() bool {
	return n.GitDiff || n.GitDiffStaged || n.GitStatus || n.GitLog ||
		n.GitBranch || n.FileTree || len(n.ReadFiles) > 0
}

// Sections lists the requested section names for status display.
func (n ContextNeeds) Sections() []string {
	var sections []string
	if n.GitStatus {
		sections = append(sections, "status")
	}
	if n.GitDiff {
		sections = append(sections, "diff")
	}
	if n.GitDiffStaged {
		sections = append(sections, "staged")
	}
	if n.GitLog {
		sections = append(sections, "log")
	}
	if n.GitBranch {
		sections = append(sections, "branches")
	}
	if n.FileTree {
		sections = append(sections, "tree")
	}
	if len(n.ReadFiles) > 0 {
		sections = append(sections, "files")
	}
	return sections
}
