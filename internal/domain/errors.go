package domain

import (
	"errors"
	"fmt"
	"strings"
)

// UsageError is a rejected flag combination. It is detected before any
// command runs.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

// CommandError is a fail-fast command that exited non-zero.
type CommandError struct {
	Command string
	Code    int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q exited with code %d", e.Command, e.Code)
}

// FailuresError carries the failures collected by a content scan.
type FailuresError struct {
	Failures []Failure
}

func (e *FailuresError) Error() string {
	lines := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		lines[i] = f.String()
	}
	return strings.Join(lines, "\n")
}

// ExitCode maps an error to the process exit code: 0 for nil, the command's
// own code for a CommandError, 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code != 0 {
		return cmdErr.Code
	}
	return 1
}
