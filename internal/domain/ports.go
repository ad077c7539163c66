package domain

import "context"

// RunOptions controls one command invocation.
type RunOptions struct {
	// Capture collects stdout/stderr instead of inheriting the parent's streams.
	Capture bool
	// FailFast turns a non-zero exit into a *CommandError.
	FailFast bool
}

// Inherit streams output to the terminal and fails fast.
func Inherit() RunOptions { return RunOptions{FailFast: true} }

// Captured captures output and fails fast.
func Captured() RunOptions { return RunOptions{Capture: true, FailFast: true} }

// BestEffort streams output and leaves the exit code to the caller.
func BestEffort() RunOptions { return RunOptions{} }

// ExecResult is the outcome of a finished command. Stdout and Stderr are
// empty when the streams were inherited.
type ExecResult struct {
	Code   int
	Stdout string
	Stderr string
}

// CommandRunner runs shell command lines.
type CommandRunner interface {
	Run(ctx context.Context, command string, opts RunOptions) (ExecResult, error)
}

// FileWalker enumerates regular files below a root.
type FileWalker interface {
	Walk(root string, visit func(path string)) error
}

// FileStore is the file access the scanners need.
type FileStore interface {
	ReadFile(path string) (string, error)
	WriteFile(path, contents string) error
	Exists(path string) bool
}

// DirCleaner empties an output directory.
type DirCleaner interface {
	Clean(dir string) error
}

// GitInfo answers questions about the repository the tool runs in.
type GitInfo interface {
	IsGitRepo(path string) bool
	LastCommitFiles(path string) ([]string, error)
}

// ConfigLoader loads the project configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}
