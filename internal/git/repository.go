package git

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// View is a read-only snapshot of repository state backed by go-git. It is
// used only for precondition checks; all mutations go through the external
// tool. A View is opened fresh for every operation so state changed by other
// processes is observed.
type View struct {
	repo *git.Repository
}

// openView opens a read-only view of the repository.
func (r *Repo) openView() (*View, error) {
	repo, err := git.PlainOpenWithOptions(r.handle.Path(), &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	return &View{repo: repo}, nil
}

// BranchNames returns all local branch names.
func (v *View) BranchNames() ([]string, error) {
	branches, err := v.repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var names []string
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().IsBranch() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	return names, nil
}

// BranchExists reports whether a local branch with the given name exists.
func (v *View) BranchExists(name string) (bool, error) {
	names, err := v.BranchNames()
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// CurrentBranch returns the short name of the branch HEAD is on. It returns
// "" when HEAD is unborn (fresh init) or detached.
func (v *View) CurrentBranch() (string, error) {
	head, err := v.repo.Head()
	if err != nil {
		// Unborn HEAD: the branch exists in name only until the first commit.
		if err == plumbing.ErrReferenceNotFound {
			return "", nil
		}
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", nil
	}
	return head.Name().Short(), nil
}

// HasCommits reports whether HEAD resolves to a commit.
func (v *View) HasCommits() bool {
	_, err := v.repo.Head()
	return err == nil
}

// HasRemote reports whether a remote with the given name is configured.
// An empty name matches any configured remote.
func (v *View) HasRemote(name string) (bool, error) {
	remotes, err := v.repo.Remotes()
	if err != nil {
		return false, fmt.Errorf("failed to list remotes: %w", err)
	}
	if name == "" {
		return len(remotes) > 0, nil
	}
	for _, remote := range remotes {
		if remote.Config().Name == name {
			return true, nil
		}
	}
	return false, nil
}
