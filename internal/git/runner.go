package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	repomanerrors "repoman.dev/repoman/internal/errors"
)

// RunResult is the raw outcome of one external tool invocation.
type RunResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Ok reports whether the tool exited zero.
func (r *RunResult) Ok() bool { return r.ExitCode == 0 }

// TrimmedStdout returns stdout with surrounding whitespace removed.
func (r *RunResult) TrimmedStdout() string { return strings.TrimSpace(r.Stdout) }

// Runner executes the external git binary. CommandRunner is the real
// implementation; tests substitute a recording one.
type Runner interface {
	Run(ctx context.Context, args ...string) (*RunResult, error)
}

// CommandRunner handles execution of git commands in a working directory.
// Each invocation spawns one process and waits for it to complete; there is
// no background execution and no streaming.
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// Run executes git with the given arguments. A non-zero exit is reported in
// the RunResult, never as an error; the returned error is reserved for
// failing to launch the tool at all.
func (r *CommandRunner) Run(ctx context.Context, args ...string) (*RunResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &RunResult{
				ExitCode: exitErr.ExitCode(),
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
			}, nil
		}
		return nil, repomanerrors.NewToolUnavailableError("git", err)
	}

	return &RunResult{
		ExitCode: 0,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}
