package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var repoPath string

	rootCmd := &cobra.Command{
		Use:   "repoman",
		Short: "Repoman manages repository lifecycle operations and license generation",
		Long: `Repoman drives the git command line tool to manage a repository
(init, add, commit, push, branch, merge, pull, checkout) and generates
license files from a built-in catalog that an external licenses.json can
override or extend.

Running repoman without a subcommand opens the interactive menu.`,
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&repoPath, "repo", "C", ".", "Path to the repository working directory")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newPushCmd())
	rootCmd.AddCommand(newPullCmd())
	rootCmd.AddCommand(newBranchCmd())
	rootCmd.AddCommand(newMergeCmd())
	rootCmd.AddCommand(newCheckoutCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newLicenseCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newMenuCmd())

	return rootCmd
}
