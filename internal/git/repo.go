package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	repomanerrors "repoman.dev/repoman/internal/errors"
	"repoman.dev/repoman/internal/output"
)

// Handle identifies a working directory believed to be (or to become) a
// repository. Its state is re-derived from the filesystem on every query;
// nothing is cached, because the repository can change outside this process.
type Handle struct {
	path string
}

// NewHandle creates a handle for the given path, resolved to absolute.
func NewHandle(path string) (*Handle, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	return &Handle{path: abs}, nil
}

// Path returns the absolute path of the working directory.
func (h *Handle) Path() string { return h.path }

// Exists reports whether the working directory exists.
func (h *Handle) Exists() bool {
	info, err := os.Stat(h.path)
	return err == nil && info.IsDir()
}

// Initialized reports whether the tool's metadata directory is present.
func (h *Handle) Initialized() bool {
	info, err := os.Stat(filepath.Join(h.path, ".git"))
	return err == nil && info.IsDir()
}

// Repo implements the repository operations. Mutations always go through the
// external git binary via the Runner; preconditions are checked against the
// filesystem and a read-only go-git view opened fresh for each operation.
type Repo struct {
	handle *Handle
	runner Runner
	splog  *output.Splog
}

// NewRepo creates a Repo rooted at path, driving the real git binary.
func NewRepo(path string, splog *output.Splog) (*Repo, error) {
	handle, err := NewHandle(path)
	if err != nil {
		return nil, err
	}
	return &Repo{
		handle: handle,
		runner: NewCommandRunner(handle.Path()),
		splog:  splog,
	}, nil
}

// NewRepoWithRunner creates a Repo with a substitute runner. Used by tests
// to observe or suppress external tool invocations.
func NewRepoWithRunner(path string, runner Runner, splog *output.Splog) (*Repo, error) {
	handle, err := NewHandle(path)
	if err != nil {
		return nil, err
	}
	return &Repo{handle: handle, runner: runner, splog: splog}, nil
}

// Handle returns the repository handle.
func (r *Repo) Handle() *Handle { return r.handle }

// Root returns the absolute path of the repository root.
func (r *Repo) Root() string { return r.handle.path }

// precondition builds a PreconditionError for the given operation.
func precondition(op, format string, args ...interface{}) error {
	return repomanerrors.NewPreconditionError(op, fmt.Sprintf(format, args...))
}

// requireInitialized re-validates that the handle points at an initialized
// repository. Called at the top of every operation except init.
func (r *Repo) requireInitialized(op string) error {
	if !r.handle.Exists() {
		return precondition(op, "directory %s does not exist", r.handle.path)
	}
	if !r.handle.Initialized() {
		return precondition(op, "%s is not a git repository", r.handle.path)
	}
	return nil
}

// run delegates one invocation to the runner and classifies a non-zero exit.
func (r *Repo) run(ctx context.Context, op string, args ...string) (*RunResult, error) {
	res, err := r.runner.Run(ctx, args...)
	if err != nil {
		r.splog.Event("git."+op, "args", fmt.Sprintf("%v", args), "outcome", "tool unavailable")
		return nil, err
	}
	if !res.Ok() {
		toolErr := classifyFailure(op, args, res)
		r.splog.Event("git."+op,
			"args", fmt.Sprintf("%v", args),
			"exit_code", res.ExitCode,
			"outcome", string(toolErr.Kind()),
			"reason", toolErr.Reason)
		return res, toolErr
	}
	r.splog.Event("git."+op, "args", fmt.Sprintf("%v", args), "outcome", "ok")
	return res, nil
}
