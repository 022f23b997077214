// Package git drives the external git binary for repository lifecycle
// operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Repository setup (init)
//   - Staging and commit operations
//   - Branch management (create, checkout, merge, list)
//   - Remote operations (push, pull)
//
// Every operation validates its preconditions against a freshly derived
// repository view before any process is spawned, and maps non-zero exits
// into the error taxonomy in internal/errors. This package should be the
// only place where direct git commands are executed.
package git
