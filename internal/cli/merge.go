package cli

import (
	"github.com/spf13/cobra"

	"repoman.dev/repoman/internal/actions"
)

// newMergeCmd creates the merge command
func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <branch>",
		Short: "Merge a branch into the current branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rtx, err := getContext(cmd)
			if err != nil {
				return err
			}
			defer rtx.Close()

			return showResult(rtx, actions.MergeAction(cmd.Context(), rtx, args[0]))
		},
	}
}
