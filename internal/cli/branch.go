package cli

import (
	"github.com/spf13/cobra"

	"repoman.dev/repoman/internal/actions"
	"repoman.dev/repoman/internal/output"
)

// newBranchCmd creates the branch command with create/list subcommands
func newBranchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branch",
		Short: "Create or list branches",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create <name>",
		Short: "Create a new branch and switch to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rtx, err := getContext(cmd)
			if err != nil {
				return err
			}
			defer rtx.Close()

			return showResult(rtx, actions.CreateBranchAction(cmd.Context(), rtx, args[0]))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List branches, current branch first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rtx, err := getContext(cmd)
			if err != nil {
				return err
			}
			defer rtx.Close()

			branches, result := actions.BranchListAction(cmd.Context(), rtx)
			if !result.Success {
				return showResult(rtx, result)
			}
			for _, b := range branches {
				marker := "  "
				if b.Current {
					marker = "* "
				}
				rtx.Splog.Info("%s%s", marker, output.ColorBranchName(b.Name, b.Current))
			}
			return nil
		},
	})

	return cmd
}
