package testhelpers

import (
	"os"
	"testing"
)

// Scene is a test fixture holding a temporary directory with a real git
// repository. Cleanup is registered automatically.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// NewScene creates a new test scene. It is safe for parallel tests because
// nothing chdirs into the scene directory.
func NewScene(t *testing.T) *Scene {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "repoman-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to create git repo: %v", err)
	}

	t.Cleanup(func() {
		if os.Getenv("DEBUG") == "" {
			os.RemoveAll(tmpDir)
		}
	})

	return &Scene{Dir: tmpDir, Repo: repo}
}
