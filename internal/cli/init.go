package cli

import (
	"github.com/spf13/cobra"

	"repoman.dev/repoman/internal/actions"
	"repoman.dev/repoman/internal/runtime"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Initialize a new repository",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rtx *runtime.Context
			var err error
			if len(args) > 0 {
				rtx, err = runtime.NewContext(args[0])
			} else {
				rtx, err = getContext(cmd)
			}
			if err != nil {
				return err
			}
			defer rtx.Close()

			return showResult(rtx, actions.InitAction(cmd.Context(), rtx))
		},
	}
}
