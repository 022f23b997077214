package cli

import (
	"github.com/spf13/cobra"

	"repoman.dev/repoman/internal/actions"
)

// newAddCmd creates the add command
func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <path>...",
		Short: "Stage files for the next commit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rtx, err := getContext(cmd)
			if err != nil {
				return err
			}
			defer rtx.Close()

			return showResult(rtx, actions.AddAction(cmd.Context(), rtx, args))
		},
	}
}
