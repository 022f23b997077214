package git

import "context"

// Pull fetches and integrates changes for the given branch from the named
// remote. Precondition: the remote must be configured.
func (r *Repo) Pull(ctx context.Context, remote, branch string) error {
	const op = "pull"

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

	if _, err := r.run(ctx, op, "pull", remote, branch); err != nil {
		return err
	}
	return nil
}
