package git

import (
	"context"
	"strings"
)

// Branch is one entry in the branch listing.
type Branch struct {
	Name    string
	Current bool
}

// Branches lists local branches as reported by the external tool, with the
// current branch first and flagged.
func (r *Repo) Branches(ctx context.Context) ([]Branch, error) {
	const op = "branch-list"

	if err := r.requireInitialized(op); err != nil {
		return nil, err
	}

	res, err := r.run(ctx, op, "branch")
	if err != nil {
		return nil, err
	}

	var current *Branch
	var rest []Branch
	for _, line := range strings.Split(res.Stdout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if name, ok := strings.CutPrefix(line, "* "); ok {
			current = &Branch{Name: name, Current: true}
			continue
		}
		rest = append(rest, Branch{Name: line})
	}

	branches := make([]Branch, 0, len(rest)+1)
	if current != nil {
		branches = append(branches, *current)
	}
	branches = append(branches, rest...)
	return branches, nil
}
