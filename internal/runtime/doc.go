// Package runtime provides the execution context for repoman commands.
//
// It bundles the shared dependencies every action needs: the repository
// operations, the logger and the repository root path.
package runtime
