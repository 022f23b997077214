package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"repoman.dev/repoman/internal/actions"
	"repoman.dev/repoman/internal/runtime"
)

// getContext builds the runtime context for the repository named by the
// --repo flag.
func getContext(cmd *cobra.Command) (*runtime.Context, error) {
	repoPath, err := cmd.Root().PersistentFlags().GetString("repo")
	if err != nil {
		repoPath = "."
	}
	return runtime.NewContext(repoPath)
}

// showResult displays a Result. Failures come back as an error so cobra
// reports them and the process exits non-zero; the expected failure itself
// never escapes as a raw fault.
func showResult(rtx *runtime.Context, result *actions.Result) error {
	if result.Success {
		if result.Warning {
			rtx.Splog.Warn(result.Message)
		} else {
			rtx.Splog.Info(result.Message)
		}
		return nil
	}
	return errors.New(result.Message)
}
