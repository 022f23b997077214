package git

import (
	"context"
	"fmt"
	"os"
)

// InitResult distinguishes a fresh initialization from a repository that was
// already initialized, which is a no-op warning rather than a hard error.
type InitResult int

const (
	// InitDone indicates a repository was created
	InitDone InitResult = iota
	// InitAlreadyInitialized indicates the directory was already a repository
	InitAlreadyInitialized
)

// Init initializes a new repository at the handle's path, creating the
// directory first if needed. Initializing an existing repository is reported
// as InitAlreadyInitialized with no tool invocation.
func (r *Repo) Init(ctx context.Context) (InitResult, error) {
	const op = "init"

	if r.handle.Initialized() {
		return InitAlreadyInitialized, nil
	}

	if err := os.MkdirAll(r.handle.Path(), 0755); err != nil {
		return InitDone, fmt.Errorf("failed to create repository directory: %w", err)
	}

	if _, err := r.run(ctx, op, "init"); err != nil {
		return InitDone, err
	}

	return InitDone, nil
}
