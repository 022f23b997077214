package cli

import (
	"github.com/spf13/cobra"

	"repoman.dev/repoman/internal/actions"
)

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Record the staged changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			rtx, err := getContext(cmd)
			if err != nil {
				return err
			}
			defer rtx.Close()

			return showResult(rtx, actions.CommitAction(cmd.Context(), rtx, message))
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")

	return cmd
}
