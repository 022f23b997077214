package runtime

import (
	"os"

	"repoman.dev/repoman/internal/git"
	"repoman.dev/repoman/internal/output"
)

// defaultLogFile is where structured operation events are recorded unless
// REPOMAN_LOG_FILE overrides it.
const defaultLogFile = "repoman.log"

// Context provides access to the repository operations and output for
// commands.
type Context struct {
	Repo     *git.Repo
	Splog    *output.Splog
	RepoRoot string
}

// NewContext creates a context for the repository at path. The path does not
// need to exist or be initialized yet; operations re-validate it themselves.
func NewContext(path string) (*Context, error) {
	logFile := os.Getenv("REPOMAN_LOG_FILE")
	if logFile == "" {
		logFile = defaultLogFile
	}
	splog, err := output.NewSplogWithFile(logFile)
	if err != nil {
		// Fall back to console-only logging rather than refusing to run.
		splog = output.NewSplog()
	}

	repo, err := git.NewRepo(path, splog)
	if err != nil {
		return nil, err
	}

	return &Context{
		Repo:     repo,
		Splog:    splog,
		RepoRoot: repo.Root(),
	}, nil
}

// Close releases resources held by the context.
func (c *Context) Close() error {
	if c.Splog != nil {
		return c.Splog.Close()
	}
	return nil
}
