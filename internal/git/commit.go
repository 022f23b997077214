package git

import (
	"context"
	"strings"
)

// Commit records the staged changes. The message must be non-empty (checked
// before anything is spawned) and at least one change must be staged.
func (r *Repo) Commit(ctx context.Context, message string) error {
	const op = "commit"

	if strings.TrimSpace(message) == "" {
		return precondition(op, "commit message cannot be empty")
	}
	if err := r.requireInitialized(op); err != nil {
		return err
	}

	staged, err := r.HasStagedChanges(ctx)
	if err != nil {
		return err
	}
	if !staged {
		return precondition(op, "nothing staged to commit")
	}

	if _, err := r.run(ctx, op, "commit", "-m", message); err != nil {
		return err
	}
	return nil
}
