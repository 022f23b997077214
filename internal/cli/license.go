package cli

import (
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"repoman.dev/repoman/internal/actions"
	"repoman.dev/repoman/internal/config"
	"repoman.dev/repoman/internal/runtime"
)

// newLicenseCmd creates the license command
func newLicenseCmd() *cobra.Command {
	var (
		author  string
		year    int
		noStage bool
		list    bool
	)

	cmd := &cobra.Command{
		Use:   "license [id]",
		Short: "Generate a license file and stage it",
		Long: `Generate a license file at the repository root and stage it.

If no license id is given, an interactive selector lists the merged catalog
(built-ins plus any entries from licenses.json).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rtx, err := getContext(cmd)
			if err != nil {
				return err
			}
			defer rtx.Close()

			if list {
				for _, entry := range actions.ListLicensesAction(rtx) {
					rtx.Splog.Info("%-14s %s", entry.ID, entry.Name)
				}
				return nil
			}

			licenseID := ""
			if len(args) > 0 {
				licenseID = args[0]
			} else {
				licenseID, err = promptLicenseID(rtx)
				if err != nil {
					return err
				}
			}

			if author == "" {
				author, err = config.GetAuthor(rtx.RepoRoot)
				if err != nil {
					return err
				}
			}
			if year == 0 {
				year = time.Now().Year()
			}

			opts := actions.GenerateLicenseOptions{
				LicenseID: licenseID,
				Author:    author,
				Year:      year,
				Stage:     !noStage,
			}
			return showResult(rtx, actions.GenerateLicenseAction(cmd.Context(), rtx, opts))
		},
	}

	cmd.Flags().StringVarP(&author, "author", "a", "", "Author or organization name (default from config)")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Copyright year (default: current year)")
	cmd.Flags().BoolVar(&noStage, "no-stage", false, "Write the license file without staging it")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "List available licenses")

	return cmd
}

// promptLicenseID shows an interactive selector over the merged catalog.
func promptLicenseID(rtx *runtime.Context) (string, error) {
	entries := actions.ListLicensesAction(rtx)
	options := make([]string, len(entries))
	for i, entry := range entries {
		options[i] = entry.ID
	}

	var licenseID string
	prompt := &survey.Select{
		Message: "Choose a license",
		Options: options,
	}
	if err := survey.AskOne(prompt, &licenseID); err != nil {
		return "", fmt.Errorf("canceled")
	}
	return licenseID, nil
}
