package git

import "context"

// Push pushes the given branch to the named remote, setting the upstream.
// Preconditions: the remote must be configured and the current branch must
// have at least one commit.
func (r *Repo) Push(ctx context.Context, remote, branch string) error {
	const op = "push"

	if err := r.requireInitialized(op); err != nil {
		return err
	}

	view, err := r.openView()
	if err != nil {
		return err
	}
	configured, err := view.HasRemote(remote)
	if err != nil {
		return err
	}
	if !configured {
		return precondition(op, "remote %q is not configured", remote)
	}
	if !view.HasCommits() {
		return precondition(op, "current branch has no commits to push")
	}

	if _, err := r.run(ctx, op, "push", "-u", remote, branch); err != nil {
		return err
	}
	return nil
}
