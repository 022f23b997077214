package git

import "context"

// Status returns the working tree status as reported by the external tool.
func (r *Repo) Status(ctx context.Context) (string, error) {
	const op = "status"

	if err := r.requireInitialized(op); err != nil {
		return "", err
	}

	res, err := r.run(ctx, op, "status")
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}
