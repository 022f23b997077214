package cli

import (
	"github.com/spf13/cobra"

	"repoman.dev/repoman/internal/actions"
)

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the working tree status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rtx, err := getContext(cmd)
			if err != nil {
				return err
			}
			defer rtx.Close()

			status, result := actions.StatusAction(cmd.Context(), rtx)
			if !result.Success {
				return showResult(rtx, result)
			}
			rtx.Splog.Info("%s", status)
			return nil
		},
	}
}
