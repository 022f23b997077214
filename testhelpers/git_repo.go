// Package testhelpers provides fixtures for tests that need a real git
// repository on disk.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitRepo represents a git repository created for a single test.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new git repository in the specified directory.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	// Avoid the global git config so tests behave the same everywhere.
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	if err := repo.RunGit("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.RunGit("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}

	return repo, nil
}

// RunGit executes a git command in the repository directory.
func (r *GitRepo) RunGit(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git %v failed: %s: %w", args, string(out), err)
	}
	return nil
}

// GitOutput executes a git command and returns its trimmed stdout.
func (r *GitRepo) GitOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %v failed: %w", args, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// CreateChange writes a file in the repository working tree.
func (r *GitRepo) CreateChange(name, content string) error {
	return os.WriteFile(filepath.Join(r.Dir, name), []byte(content), 0644)
}

// CreateChangeAndCommit writes a file, stages it and commits it.
func (r *GitRepo) CreateChangeAndCommit(name, message string) error {
	if err := r.CreateChange(name, message); err != nil {
		return err
	}
	if err := r.RunGit("add", name); err != nil {
		return err
	}
	return r.RunGit("commit", "-m", message)
}

// CurrentBranchName returns the branch HEAD is on.
func (r *GitRepo) CurrentBranchName() (string, error) {
	return r.GitOutput("branch", "--show-current")
}

// AddRemote configures a remote pointing at a local bare repository created
// under dir, and returns its path.
func (r *GitRepo) AddRemote(name, dir string) (string, error) {
	remotePath := filepath.Join(dir, name+".git")
	cmd := exec.Command("git", "init", "--bare", remotePath)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to init bare remote: %w", err)
	}
	if err := r.RunGit("remote", "add", name, remotePath); err != nil {
		return "", err
	}
	return remotePath, nil
}
