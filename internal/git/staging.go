package git

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// Add stages the given paths. The repository must be initialized and every
// path must exist relative to the repository root; both are checked before
// any process is spawned.
func (r *Repo) Add(ctx context.Context, paths []string) error {
	const op = "add"

	if err := r.requireInitialized(op); err != nil {
		return err
	}
	if len(paths) == 0 {
		return precondition(op, "no files specified to add")
	}

	rels := make([]string, 0, len(paths))
	for _, p := range paths {
		abs := p
		if !filepath.IsAbs(p) {
			abs = filepath.Join(r.handle.Path(), p)
		}
		if _, err := os.Stat(abs); err != nil {
			return precondition(op, "file not found: %s", p)
		}
		rel, err := filepath.Rel(r.handle.Path(), abs)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return precondition(op, "path %s is outside the repository", p)
		}
		rels = append(rels, rel)
	}

	args := append([]string{"add", "--"}, rels...)
	if _, err := r.run(ctx, op, args...); err != nil {
		return err
	}
	return nil
}

// HasStagedChanges reports whether the index holds changes for the next
// commit.
func (r *Repo) HasStagedChanges(ctx context.Context) (bool, error) {
	res, err := r.run(ctx, "diff", "diff", "--cached", "--shortstat")
	if err != nil {
		return false, err
	}
	return res.TrimmedStdout() != "", nil
}
