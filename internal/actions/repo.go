package actions

import (
	"context"

	"repoman.dev/repoman/internal/git"
	"repoman.dev/repoman/internal/runtime"
)

// InitAction initializes a repository at the context's path. Initializing an
// already initialized repository is a warning, not an error.
func InitAction(ctx context.Context, rtx *runtime.Context) *Result {
	const op = "init"

	outcome, err := rtx.Repo.Init(ctx)
	if err != nil {
		return failure(op, err)
	}
	if outcome == git.InitAlreadyInitialized {
		return warning(op, "Repository already initialized at %s", rtx.RepoRoot)
	}
	return success(op, "Initialized repository at %s", rtx.RepoRoot)
}

// AddAction stages the given paths.
func AddAction(ctx context.Context, rtx *runtime.Context, paths []string) *Result {
	const op = "add"

	if err := rtx.Repo.Add(ctx, paths); err != nil {
		return failure(op, err)
	}
	return success(op, "Added %d file(s) to staging", len(paths))
}

// CommitAction records the staged changes with the given message.
func CommitAction(ctx context.Context, rtx *runtime.Context, message string) *Result {
	const op = "commit"

	if err := rtx.Repo.Commit(ctx, message); err != nil {
		return failure(op, err)
	}
	return success(op, "Created commit: %s", message)
}

// PushAction pushes a branch to a remote.
func PushAction(ctx context.Context, rtx *runtime.Context, remote, branch string) *Result {
	const op = "push"

	if err := rtx.Repo.Push(ctx, remote, branch); err != nil {
		return failure(op, err)
	}
	return success(op, "Pushed changes to %s/%s", remote, branch)
}

// PullAction pulls a branch from a remote.
func PullAction(ctx context.Context, rtx *runtime.Context, remote, branch string) *Result {
	const op = "pull"

	if err := rtx.Repo.Pull(ctx, remote, branch); err != nil {
		return failure(op, err)
	}
	return success(op, "Pulled changes from %s/%s", remote, branch)
}

// CreateBranchAction creates a branch and switches to it.
func CreateBranchAction(ctx context.Context, rtx *runtime.Context, name string) *Result {
	const op = "branch"

	if err := rtx.Repo.CreateBranch(ctx, name); err != nil {
		return failure(op, err)
	}
	return success(op, "Created and switched to branch %s", name)
}

// MergeAction merges the named branch into the current branch.
func MergeAction(ctx context.Context, rtx *runtime.Context, name string) *Result {
	const op = "merge"

	if err := rtx.Repo.Merge(ctx, name); err != nil {
		return failure(op, err)
	}
	return success(op, "Merged branch %s", name)
}

// CheckoutAction switches to an existing branch.
func CheckoutAction(ctx context.Context, rtx *runtime.Context, name string) *Result {
	const op = "checkout"

	if err := rtx.Repo.Checkout(ctx, name); err != nil {
		return failure(op, err)
	}
	return success(op, "Switched to branch %s", name)
}

// BranchListAction lists local branches, current branch first.
func BranchListAction(ctx context.Context, rtx *runtime.Context) ([]git.Branch, *Result) {
	const op = "branch-list"

	branches, err := rtx.Repo.Branches(ctx)
	if err != nil {
		return nil, failure(op, err)
	}
	return branches, success(op, "Found %d branch(es)", len(branches))
}

// StatusAction returns the working tree status text.
func StatusAction(ctx context.Context, rtx *runtime.Context) (string, *Result) {
	const op = "status"

	status, err := rtx.Repo.Status(ctx)
	if err != nil {
		return "", failure(op, err)
	}
	return status, success(op, "Status retrieved")
}
