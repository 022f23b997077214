package git

import (
	"strings"

	repomanerrors "repoman.dev/repoman/internal/errors"
)

// Reasons assigned to classified tool failures. These are stable strings the
// front end can show to users alongside the raw diagnostics.
const (
	ReasonNotARepository     = "not a git repository"
	ReasonNothingToCommit    = "nothing to commit"
	ReasonAlreadyExists      = "already exists"
	ReasonMergeConflict      = "merge conflict"
	ReasonPushRejected       = "push rejected by remote"
	ReasonNoRemote           = "no remote configured"
	ReasonRemoteUnreachable  = "remote unreachable"
	ReasonUnknownRevision    = "unknown branch or path"
	ReasonUncommittedChanges = "local changes would be overwritten"
)

// failurePattern maps a known substring of git output to a stable reason.
type failurePattern struct {
	substring string
	reason    string
}

// failurePatterns is matched case-insensitively against stderr then stdout.
// Order matters: more specific patterns come first. Git's textual output is
// an unstable interface, so matching is best-effort; anything unmatched
// becomes an unclassified error that preserves the raw output.
var failurePatterns = []failurePattern{
	// The remote form embeds the local one, so it must match first.
	{"does not appear to be a git repository", ReasonRemoteUnreachable},
	{"could not read from remote", ReasonRemoteUnreachable},
	{"not a git repository", ReasonNotARepository},
	{"nothing to commit", ReasonNothingToCommit},
	{"nothing added to commit", ReasonNothingToCommit},
	{"no changes added to commit", ReasonNothingToCommit},
	{"your local changes", ReasonUncommittedChanges},
	{"would be overwritten", ReasonUncommittedChanges},
	{"already exists", ReasonAlreadyExists},
	{"conflict", ReasonMergeConflict},
	{"needs merge", ReasonMergeConflict},
	{"unmerged", ReasonMergeConflict},
	{"non-fast-forward", ReasonPushRejected},
	{"[rejected]", ReasonPushRejected},
	{"failed to push", ReasonPushRejected},
	{"no configured push destination", ReasonNoRemote},
	{"no upstream branch", ReasonNoRemote},
	{"did not match any", ReasonUnknownRevision},
	{"unknown revision", ReasonUnknownRevision},
	{"not something we can merge", ReasonUnknownRevision},
	{"pathspec", ReasonUnknownRevision},
}

// classifyFailure maps a non-zero git exit to a ToolError. All pattern
// knowledge lives here so tables can change without touching call sites.
func classifyFailure(op string, args []string, res *RunResult) *repomanerrors.ToolError {
	haystack := strings.ToLower(res.Stderr + "\n" + res.Stdout)
	for _, p := range failurePatterns {
		if strings.Contains(haystack, p.substring) {
			return repomanerrors.NewToolError(op, args, res.ExitCode, res.Stdout, res.Stderr, p.reason)
		}
	}
	return repomanerrors.NewToolError(op, args, res.ExitCode, res.Stdout, res.Stderr, "")
}
