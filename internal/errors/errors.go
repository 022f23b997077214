// Package errors provides the error taxonomy for the repoman application.
// Every expected failure mode maps to a Kind; use errors.Is() and
// errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the normalized classification of a failure. Kinds, not concrete
// error types, are what the front end keys display behavior on.
type Kind string

const (
	// KindNone marks a successful outcome
	KindNone Kind = ""

	// KindToolUnavailable means the external git binary could not be launched
	KindToolUnavailable Kind = "tool-unavailable"

	// KindPreconditionFailed means an operation precondition was not met
	KindPreconditionFailed Kind = "precondition-failed"

	// KindClassifiedToolError means git exited non-zero with recognized output
	KindClassifiedToolError Kind = "classified-tool-error"

	// KindUnclassifiedToolError means git exited non-zero with unrecognized output
	KindUnclassifiedToolError Kind = "unclassified-tool-error"

	// KindCatalogEntryInvalid means one external catalog entry failed validation
	KindCatalogEntryInvalid Kind = "catalog-entry-invalid"

	// KindCatalogLoadFailed means the external catalog file was unparseable
	KindCatalogLoadFailed Kind = "catalog-load-failed"

	// KindLicenseNotFound means the requested license id is absent from the catalog
	KindLicenseNotFound Kind = "license-not-found"

	// KindPartialSequenceFailure means a multi-step sequence succeeded partially
	KindPartialSequenceFailure Kind = "partial-sequence-failure"

	// KindUnexpected covers faults outside the taxonomy (e.g. filesystem errors)
	KindUnexpected Kind = "unexpected"
)

// Sentinel errors for common conditions
var (
	// ErrToolUnavailable indicates the git binary cannot be launched
	ErrToolUnavailable = errors.New("git is not installed or not in PATH")

	// ErrPreconditionFailed indicates an operation precondition was not met
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrToolFailed indicates git exited non-zero
	ErrToolFailed = errors.New("git command failed")

	// ErrCatalogLoadFailed indicates the external catalog file was unparseable
	ErrCatalogLoadFailed = errors.New("license catalog load failed")

	// ErrLicenseNotFound indicates a license id is absent from the catalog
	ErrLicenseNotFound = errors.New("license not found")

	// ErrPartialSequence indicates a sequence completed some steps before failing
	ErrPartialSequence = errors.New("sequence partially completed")
)

// ToolUnavailableError is raised before any operation result is produced
// when the external tool cannot be located or started.
type ToolUnavailableError struct {
	Tool string
	Err  error
}

func (e *ToolUnavailableError) Error() string {
	return fmt.Sprintf("%s is not installed or not in PATH: %v", e.Tool, e.Err)
}

func (e *ToolUnavailableError) Unwrap() error { return e.Err }

// Is returns true if the target error is ErrToolUnavailable
func (e *ToolUnavailableError) Is(target error) bool {
	return target == ErrToolUnavailable
}

// NewToolUnavailableError creates a new ToolUnavailableError
func NewToolUnavailableError(tool string, err error) *ToolUnavailableError {
	return &ToolUnavailableError{Tool: tool, Err: err}
}

// PreconditionError reports which validated precondition was not met.
// It is always recoverable and never produced by the external tool itself.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: precondition failed: %s", e.Op, e.Reason)
}

// Is returns true if the target error is ErrPreconditionFailed
func (e *PreconditionError) Is(target error) bool {
	return target == ErrPreconditionFailed
}

// NewPreconditionError creates a new PreconditionError
func NewPreconditionError(op, reason string) *PreconditionError {
	return &PreconditionError{Op: op, Reason: reason}
}

// ToolError represents a non-zero exit from the external tool. Reason is the
// classified failure pattern; an empty Reason means the output matched no
// known pattern and the raw stderr is the only diagnostic.
type ToolError struct {
	Op       string
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
	Reason   string
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("git %s failed (exit %d)", e.Op, e.ExitCode)
	if e.Reason != "" {
		msg += fmt.Sprintf(": %s", e.Reason)
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", stderr)
	}
	return msg
}

// Is returns true if the target error is ErrToolFailed
func (e *ToolError) Is(target error) bool {
	return target == ErrToolFailed
}

// Classified reports whether the tool output matched a known failure pattern.
func (e *ToolError) Classified() bool { return e.Reason != "" }

// Kind returns the taxonomy kind for this tool failure.
func (e *ToolError) Kind() Kind {
	if e.Classified() {
		return KindClassifiedToolError
	}
	return KindUnclassifiedToolError
}

// NewToolError creates a new ToolError
func NewToolError(op string, args []string, exitCode int, stdout, stderr, reason string) *ToolError {
	return &ToolError{
		Op:       op,
		Args:     args,
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
		Reason:   reason,
	}
}

// CatalogEntryError reports a single rejected external catalog entry.
// Catalog loading continues past these.
type CatalogEntryError struct {
	ID     string
	Reason string
}

func (e *CatalogEntryError) Error() string {
	return fmt.Sprintf("license catalog entry %q is invalid: %s", e.ID, e.Reason)
}

// NewCatalogEntryError creates a new CatalogEntryError
func NewCatalogEntryError(id, reason string) *CatalogEntryError {
	return &CatalogEntryError{ID: id, Reason: reason}
}

// CatalogLoadError reports an external catalog file that was present but
// unparseable as a whole. Built-in entries remain available.
type CatalogLoadError struct {
	Path string
	Err  error
}

func (e *CatalogLoadError) Error() string {
	return fmt.Sprintf("failed to load license catalog %s: %v", e.Path, e.Err)
}

func (e *CatalogLoadError) Unwrap() error { return e.Err }

// Is returns true if the target error is ErrCatalogLoadFailed
func (e *CatalogLoadError) Is(target error) bool {
	return target == ErrCatalogLoadFailed
}

// NewCatalogLoadError creates a new CatalogLoadError
func NewCatalogLoadError(path string, err error) *CatalogLoadError {
	return &CatalogLoadError{Path: path, Err: err}
}

// LicenseNotFoundError reports a lookup miss against the merged catalog.
type LicenseNotFoundError struct {
	ID string
}

func (e *LicenseNotFoundError) Error() string {
	return fmt.Sprintf("license %q is not available", e.ID)
}

// Is returns true if the target error is ErrLicenseNotFound
func (e *LicenseNotFoundError) Is(target error) bool {
	return target == ErrLicenseNotFound
}

// NewLicenseNotFoundError creates a new LicenseNotFoundError
func NewLicenseNotFoundError(id string) *LicenseNotFoundError {
	return &LicenseNotFoundError{ID: id}
}

// PartialSequenceError reports a multi-step sequence that completed some
// steps before failing. Both the completed and failed steps are carried so
// the caller knows exactly which side effects exist.
type PartialSequenceError struct {
	Op        string
	Completed []string
	Failed    string
	Err       error
}

func (e *PartialSequenceError) Error() string {
	return fmt.Sprintf("%s: completed [%s] but %s failed: %v",
		e.Op, strings.Join(e.Completed, ", "), e.Failed, e.Err)
}

func (e *PartialSequenceError) Unwrap() error { return e.Err }

// Is returns true if the target error is ErrPartialSequence
func (e *PartialSequenceError) Is(target error) bool {
	return target == ErrPartialSequence
}

// NewPartialSequenceError creates a new PartialSequenceError
func NewPartialSequenceError(op string, completed []string, failed string, err error) *PartialSequenceError {
	return &PartialSequenceError{Op: op, Completed: completed, Failed: failed, Err: err}
}

// KindOf maps any error to its taxonomy kind. Errors outside the taxonomy
// map to KindUnexpected; nil maps to KindNone.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}

	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return toolErr.Kind()
	}

	switch {
	case errors.Is(err, ErrToolUnavailable):
		return KindToolUnavailable
	case errors.Is(err, ErrPreconditionFailed):
		return KindPreconditionFailed
	case errors.Is(err, ErrLicenseNotFound):
		return KindLicenseNotFound
	case errors.Is(err, ErrCatalogLoadFailed):
		return KindCatalogLoadFailed
	case errors.Is(err, ErrPartialSequence):
		return KindPartialSequenceFailure
	}

	var entryErr *CatalogEntryError
	if errors.As(err, &entryErr) {
		return KindCatalogEntryInvalid
	}

	return KindUnexpected
}
