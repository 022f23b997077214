package cli

import (
	"github.com/spf13/cobra"

	"repoman.dev/repoman/internal/actions"
)

// newCheckoutCmd creates the checkout command
func newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "checkout <branch>",
		Aliases: []string{"co"},
		Short:   "Switch to an existing branch",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rtx, err := getContext(cmd)
			if err != nil {
				return err
			}
			defer rtx.Close()

			return showResult(rtx, actions.CheckoutAction(cmd.Context(), rtx, args[0]))
		},
	}
}
