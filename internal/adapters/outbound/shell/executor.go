// Package shell runs command lines through the platform shell.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"

	"github.com/openkraft/ngkit/internal/ctxlog"
	"github.com/openkraft/ngkit/internal/domain"
)

// Executor implements domain.CommandRunner with os/exec.
type Executor struct {
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Spinner shows progress while output is captured. New enables it only
	// when stderr is a terminal.
	Spinner bool
}

// New returns an Executor wired to the process's standard streams.
func New() *Executor {
	return &Executor{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Spinner: term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// Run executes command and waits for it. A non-zero exit is an error only
// when opts.FailFast is set; the result always carries the exit code.
func (e *Executor) Run(ctx context.Context, command string, opts domain.RunOptions) (domain.ExecResult, error) {
	log := ctxlog.FromContext(ctx)
	log.Debug("running command", "command", command, "capture", opts.Capture, "fail_fast", opts.FailFast)

	name, args := shellCommand(command)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = e.Dir

	var stdout, stderr bytes.Buffer
	if opts.Capture {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	} else {
		cmd.Stdin = e.Stdin
		cmd.Stdout = e.Stdout
		cmd.Stderr = e.Stderr
	}

	stop := e.startSpinner(command, opts.Capture)
	start := time.Now()
	err := cmd.Run()
	stop()

	result := domain.ExecResult{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		result.Code = exitErr.ExitCode()
		if result.Code < 0 {
			// killed by a signal
			result.Code = 1
		}
	default:
		return result, fmt.Errorf("starting %q: %w", command, err)
	}

	log.Debug("command finished", "command", command, "code", result.Code, "elapsed", time.Since(start))

	if result.Code != 0 && opts.FailFast {
		return result, &domain.CommandError{Command: command, Code: result.Code}
	}
	return result, nil
}

func (e *Executor) startSpinner(command string, capture bool) func() {
	if !capture || !e.Spinner {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(e.Stderr))
	_ = s.Color("yellow")
	s.Suffix = " " + command
	s.Start()
	return s.Stop
}

func shellCommand(command string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "sh", []string{"-c", command}
}
