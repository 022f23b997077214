package actions

import (
	"errors"
	"fmt"

	repomanerrors "repoman.dev/repoman/internal/errors"
)

// Result is the outcome of one operation as consumed by the front end.
// Expected failures are carried here as data; actions never propagate them
// as raw errors.
type Result struct {
	Op      string
	Success bool
	// Warning marks no-op outcomes that succeed with a caveat, such as
	// initializing an already initialized repository.
	Warning bool
	Kind    repomanerrors.Kind
	Message string

	// Diagnostics from the external tool, when it was involved.
	ExitCode int
	Stderr   string

	// Completed and Failed describe partial multi-step sequences.
	Completed []string
	Failed    string
}

func success(op, format string, args ...interface{}) *Result {
	return &Result{Op: op, Success: true, Message: fmt.Sprintf(format, args...)}
}

func warning(op, format string, args ...interface{}) *Result {
	return &Result{Op: op, Success: true, Warning: true, Message: fmt.Sprintf(format, args...)}
}

// failure converts any error from the core layers into a Result, preserving
// tool diagnostics and partial-sequence details where present.
func failure(op string, err error) *Result {
	result := &Result{
		Op:      op,
		Kind:    repomanerrors.KindOf(err),
		Message: err.Error(),
	}

	var toolErr *repomanerrors.ToolError
	if errors.As(err, &toolErr) {
		result.ExitCode = toolErr.ExitCode
		result.Stderr = toolErr.Stderr
	}

	var seqErr *repomanerrors.PartialSequenceError
	if errors.As(err, &seqErr) {
		result.Completed = seqErr.Completed
		result.Failed = seqErr.Failed
	}

	return result
}
