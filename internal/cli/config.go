package cli

import (
	"github.com/spf13/cobra"

	"repoman.dev/repoman/internal/config"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	var (
		author string
		remote string
		branch string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change repoman settings for this repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			rtx, err := getContext(cmd)
			if err != nil {
				return err
			}
			defer rtx.Close()

			changed := false
			if cmd.Flags().Changed("author") {
				if err := config.SetAuthor(rtx.RepoRoot, author); err != nil {
					return err
				}
				changed = true
			}
			if cmd.Flags().Changed("remote") {
				if err := config.SetDefaultRemote(rtx.RepoRoot, remote); err != nil {
					return err
				}
				changed = true
			}
			if cmd.Flags().Changed("branch") {
				if err := config.SetDefaultBranch(rtx.RepoRoot, branch); err != nil {
					return err
				}
				changed = true
			}
			if changed {
				rtx.Splog.Info("Configuration updated.")
				return nil
			}

			currentAuthor, err := config.GetAuthor(rtx.RepoRoot)
			if err != nil {
				return err
			}
			currentRemote, err := config.GetDefaultRemote(rtx.RepoRoot)
			if err != nil {
				return err
			}
			currentBranch, err := config.GetDefaultBranch(rtx.RepoRoot)
			if err != nil {
				return err
			}
			rtx.Splog.Info("author: %s", currentAuthor)
			rtx.Splog.Info("default remote: %s", currentRemote)
			rtx.Splog.Info("default branch: %s", currentBranch)
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "Set the author name used for license generation")
	cmd.Flags().StringVar(&remote, "remote", "", "Set the default remote for push and pull")
	cmd.Flags().StringVar(&branch, "branch", "", "Set the default branch for push and pull")

	return cmd
}
