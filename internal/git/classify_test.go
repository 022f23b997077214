package git

import (
	"testing"

	"github.com/stretchr/testify/require"

	repomanerrors "repoman.dev/repoman/internal/errors"
)

func TestClassifyFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stderr string
		stdout string
		reason string
	}{
		{
			name:   "not a repository",
			stderr: "fatal: not a git repository (or any of the parent directories): .git",
			reason: ReasonNotARepository,
		},
		{
			name:   "nothing to commit",
			stdout: "On branch main\nnothing to commit, working tree clean",
			reason: ReasonNothingToCommit,
		},
		{
			name:   "branch already exists",
			stderr: "fatal: a branch named 'feature' already exists",
			reason: ReasonAlreadyExists,
		},
		{
			name:   "merge conflict",
			stdout: "CONFLICT (content): Merge conflict in main.go\nAutomatic merge failed; fix conflicts and then commit the result.",
			reason: ReasonMergeConflict,
		},
		{
			name:   "push rejected",
			stderr: " ! [rejected]        main -> main (non-fast-forward)\nerror: failed to push some refs",
			reason: ReasonPushRejected,
		},
		{
			name:   "no push destination",
			stderr: "fatal: No configured push destination.",
			reason: ReasonNoRemote,
		},
		{
			name:   "remote unreachable",
			stderr: "fatal: 'origin' does not appear to be a git repository\nfatal: Could not read from remote repository.",
			reason: ReasonRemoteUnreachable,
		},
		{
			name:   "unknown pathspec",
			stderr: "error: pathspec 'nope' did not match any file(s) known to git",
			reason: ReasonUnknownRevision,
		},
		{
			name:   "checkout blocked by local changes",
			stderr: "error: Your local changes to the following files would be overwritten by checkout:",
			reason: ReasonUncommittedChanges,
		},
		{
			name:   "case insensitive match",
			stderr: "FATAL: NOT A GIT REPOSITORY",
			reason: ReasonNotARepository,
		},
		{
			name:   "unrecognized output",
			stderr: "fatal: the remote end hung up unexpectedly",
			reason: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := &RunResult{ExitCode: 1, Stdout: tt.stdout, Stderr: tt.stderr}
			toolErr := classifyFailure("test-op", []string{"test"}, res)

			require.Equal(t, tt.reason, toolErr.Reason)
			if tt.reason == "" {
				require.False(t, toolErr.Classified())
				require.Equal(t, repomanerrors.KindUnclassifiedToolError, toolErr.Kind())
			} else {
				require.True(t, toolErr.Classified())
				require.Equal(t, repomanerrors.KindClassifiedToolError, toolErr.Kind())
			}
		})
	}
}

func TestClassifyFailurePreservesRawOutput(t *testing.T) {
	t.Parallel()

	res := &RunResult{ExitCode: 128, Stdout: "some stdout", Stderr: "some unrecognized stderr"}
	toolErr := classifyFailure("merge", []string{"merge", "feature"}, res)

	require.Equal(t, "merge", toolErr.Op)
	require.Equal(t, 128, toolErr.ExitCode)
	require.Equal(t, "some stdout", toolErr.Stdout)
	require.Equal(t, "some unrecognized stderr", toolErr.Stderr)
}
