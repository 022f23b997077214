package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindNone},
		{"tool unavailable", NewToolUnavailableError("git", errors.New("not found")), KindToolUnavailable},
		{"precondition", NewPreconditionError("commit", "message empty"), KindPreconditionFailed},
		{"classified tool error", NewToolError("merge", nil, 1, "", "CONFLICT", "merge conflict"), KindClassifiedToolError},
		{"unclassified tool error", NewToolError("merge", nil, 128, "", "something odd", ""), KindUnclassifiedToolError},
		{"catalog entry invalid", NewCatalogEntryError("Zlib", "body template is empty"), KindCatalogEntryInvalid},
		{"catalog load failed", NewCatalogLoadError("licenses.json", errors.New("bad json")), KindCatalogLoadFailed},
		{"license not found", NewLicenseNotFoundError("WTFPL"), KindLicenseNotFound},
		{"partial sequence", NewPartialSequenceError("license", []string{"wrote LICENSE"}, "stage LICENSE", errors.New("boom")), KindPartialSequenceFailure},
		{"unexpected", errors.New("disk on fire"), KindUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKindOfWrappedErrors(t *testing.T) {
	t.Parallel()

	// Wrapping must not change the classification.
	wrapped := fmt.Errorf("while generating: %w", NewLicenseNotFoundError("MIT-0"))
	require.Equal(t, KindLicenseNotFound, KindOf(wrapped))

	wrapped = fmt.Errorf("outer: %w", NewToolError("push", nil, 1, "", "[rejected]", "push rejected by remote"))
	require.Equal(t, KindClassifiedToolError, KindOf(wrapped))
}

func TestSentinelMatching(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, NewToolUnavailableError("git", errors.New("exec")), ErrToolUnavailable)
	require.ErrorIs(t, NewPreconditionError("add", "no files"), ErrPreconditionFailed)
	require.ErrorIs(t, NewToolError("commit", nil, 1, "", "", ""), ErrToolFailed)
	require.ErrorIs(t, NewCatalogLoadError("x.json", errors.New("parse")), ErrCatalogLoadFailed)
	require.ErrorIs(t, NewLicenseNotFoundError("GPL-4"), ErrLicenseNotFound)
	require.ErrorIs(t, NewPartialSequenceError("license", nil, "stage", errors.New("x")), ErrPartialSequence)
}

func TestToolErrorClassified(t *testing.T) {
	t.Parallel()

	classified := NewToolError("merge", []string{"merge", "feature"}, 1, "", "CONFLICT (content)", "merge conflict")
	require.True(t, classified.Classified())
	require.Equal(t, KindClassifiedToolError, classified.Kind())

	unclassified := NewToolError("merge", []string{"merge", "feature"}, 128, "", "weird failure", "")
	require.False(t, unclassified.Classified())
	require.Equal(t, KindUnclassifiedToolError, unclassified.Kind())
}

func TestToolErrorMessagePreservesDiagnostics(t *testing.T) {
	t.Parallel()

	err := NewToolError("push", []string{"push", "-u", "origin", "main"}, 1, "", "fatal: remote error\n", "push rejected by remote")
	msg := err.Error()
	require.Contains(t, msg, "push")
	require.Contains(t, msg, "exit 1")
	require.Contains(t, msg, "push rejected by remote")
	require.Contains(t, msg, "fatal: remote error")
}

func TestPartialSequenceErrorCarriesSteps(t *testing.T) {
	t.Parallel()

	cause := NewPreconditionError("add", "not a git repository")
	err := NewPartialSequenceError("license", []string{"rendered MIT license", "wrote LICENSE"}, "stage LICENSE", cause)

	require.Equal(t, []string{"rendered MIT license", "wrote LICENSE"}, err.Completed)
	require.Equal(t, "stage LICENSE", err.Failed)
	require.ErrorIs(t, err, ErrPartialSequence)

	// The underlying cause remains reachable for callers that care.
	var precondition *PreconditionError
	require.ErrorAs(t, err, &precondition)
}
