package domain

// WarningLogger is the message sink violation summaries are written to.
type WarningLogger interface {
	Warn(msg string)
}

// LinkRenderer turns a report location into something a terminal can open.
// An empty return value means no link is shown.
type LinkRenderer interface {
	Render(location string) string
}

// ConfigLoader loads the project configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// ViolationsSource reads violations records written by tool adapters.
type ViolationsSource interface {
	Load(paths ...string) ([]Violations, error)
}

// RunHistory persists evaluation results per project.
type RunHistory interface {
	Save(projectPath string, entry RunEntry) error
	Load(projectPath string) ([]RunEntry, error)
}

// GitInfo provides information about the project's git repository.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}
