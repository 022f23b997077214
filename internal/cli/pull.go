package cli

import (
	"github.com/spf13/cobra"

	"repoman.dev/repoman/internal/actions"
	"repoman.dev/repoman/internal/config"
)

// newPullCmd creates the pull command
func newPullCmd() *cobra.Command {
	var remote, branch string

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Pull a branch from a remote",
		RunE: func(cmd *cobra.Command, args []string) error {
			rtx, err := getContext(cmd)
			if err != nil {
				return err
			}
			defer rtx.Close()

			if remote == "" {
				remote, err = config.GetDefaultRemote(rtx.RepoRoot)
				if err != nil {
					return err
				}
			}
			if branch == "" {
				branch, err = config.GetDefaultBranch(rtx.RepoRoot)
				if err != nil {
					return err
				}
			}

			return showResult(rtx, actions.PullAction(cmd.Context(), rtx, remote, branch))
		},
	}

	cmd.Flags().StringVarP(&remote, "remote", "r", "", "Remote name (default from config, falls back to origin)")
	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Branch name (default from config, falls back to main)")

	return cmd
}
