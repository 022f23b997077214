package git

import (
	"context"
	"strings"
)

// CreateBranch creates a new branch with the given name and switches to it.
// Precondition: the name must not collide with an existing branch.
func (r *Repo) CreateBranch(ctx context.Context, name string) error {
	const op = "branch"

	if strings.TrimSpace(name) == "" {
		return precondition(op, "branch name cannot be empty")
	}
	if err := r.requireInitialized(op); err != nil {
		return err
	}

	view, err := r.openView()
	if err != nil {
		return err
	}
	exists, err := view.BranchExists(name)
	if err != nil {
		return err
	}
	if exists {
		return precondition(op, "branch %s already exists", name)
	}

	if _, err := r.run(ctx, op, "checkout", "-b", name); err != nil {
		return err
	}
	return nil
}

// Checkout switches to an existing branch.
func (r *Repo) Checkout(ctx context.Context, name string) error {
	const op = "checkout"

	if strings.TrimSpace(name) == "" {
		return precondition(op, "branch name cannot be empty")
	}
	if err := r.requireInitialized(op); err != nil {
		return err
	}

	view, err := r.openView()
	if err != nil {
		return err
	}
	exists, err := view.BranchExists(name)
	if err != nil {
		return err
	}
	if !exists {
		return precondition(op, "branch %s does not exist", name)
	}

	if _, err := r.run(ctx, op, "checkout", name); err != nil {
		return err
	}
	return nil
}

// Merge merges the target branch into the current branch. Preconditions:
// the target must exist and must differ from the current branch.
func (r *Repo) Merge(ctx context.Context, name string) error {
	const op = "merge"

	if strings.TrimSpace(name) == "" {
		return precondition(op, "branch name cannot be empty")
	}
	if err := r.requireInitialized(op); err != nil {
		return err
	}

	view, err := r.openView()
	if err != nil {
		return err
	}
	exists, err := view.BranchExists(name)
	if err != nil {
		return err
	}
	if !exists {
		return precondition(op, "branch %s does not exist", name)
	}
	current, err := view.CurrentBranch()
	if err != nil {
		return err
	}
	if current == name {
		return precondition(op, "cannot merge branch %s into itself", name)
	}

	if _, err := r.run(ctx, op, "merge", name); err != nil {
		return err
	}
	return nil
}
