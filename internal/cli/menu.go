package cli

import (
	"context"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"repoman.dev/repoman/internal/actions"
	"repoman.dev/repoman/internal/config"
	"repoman.dev/repoman/internal/output"
	"repoman.dev/repoman/internal/runtime"
)

// Menu operation labels, in display order.
const (
	menuInit     = "Initialize repository"
	menuAdd      = "Add files"
	menuCommit   = "Commit changes"
	menuPush     = "Push to remote"
	menuBranch   = "Create branch"
	menuMerge    = "Merge branch"
	menuPull     = "Pull from remote"
	menuCheckout = "Checkout branch"
	menuList     = "List branches"
	menuStatus   = "Show status"
	menuLicense  = "Generate license"
	menuExit     = "Exit"
)

var menuOperations = []string{
	menuInit, menuAdd, menuCommit, menuPush, menuBranch, menuMerge,
	menuPull, menuCheckout, menuList, menuStatus, menuLicense, menuExit,
}

// newMenuCmd creates the menu command
func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Open the interactive operation menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd)
		},
	}
}

// runMenu drives the interactive loop. Expected operation failures are shown
// and the loop continues; only a direct exit request or a canceled prompt
// ends it.
func runMenu(cmd *cobra.Command) error {
	rtx, err := getContext(cmd)
	if err != nil {
		return err
	}
	defer func() { rtx.Close() }()

	rtx.Splog.Info(output.Emphasize("Repository & License Manager"))

	for {
		var choice string
		prompt := &survey.Select{
			Message:  "What would you like to do?",
			Options:  menuOperations,
			PageSize: len(menuOperations),
		}
		if err := survey.AskOne(prompt, &choice); err != nil {
			return menuCanceled(rtx, err)
		}

		if choice == menuExit {
			rtx.Splog.Info("Goodbye!")
			return nil
		}

		newRtx, err := runMenuChoice(cmd, rtx, choice)
		if err != nil {
			return menuCanceled(rtx, err)
		}
		if newRtx != nil {
			rtx.Close()
			rtx = newRtx
		}

		again := true
		confirm := &survey.Confirm{
			Message: "Perform another operation?",
			Default: true,
		}
		if err := survey.AskOne(confirm, &again); err != nil {
			return menuCanceled(rtx, err)
		}
		if !again {
			rtx.Splog.Info("Goodbye!")
			return nil
		}
	}
}

// menuCanceled turns a prompt interrupt into a clean exit.
func menuCanceled(rtx *runtime.Context, err error) error {
	if err == terminal.InterruptErr {
		rtx.Splog.Newline()
		rtx.Splog.Info("Goodbye!")
		return nil
	}
	return err
}

// runMenuChoice executes one menu operation. It returns a replacement
// context when the operation switched repositories (init on a new path).
func runMenuChoice(cmd *cobra.Command, rtx *runtime.Context, choice string) (*runtime.Context, error) {
	ctx := cmd.Context()

	switch choice {
	case menuInit:
		path, err := promptInput("Repository path:", rtx.RepoRoot)
		if err != nil {
			return nil, err
		}
		newRtx, err := runtime.NewContext(path)
		if err != nil {
			rtx.Splog.Warn("%v", err)
			return nil, nil
		}
		showMenuResult(newRtx, actions.InitAction(ctx, newRtx))
		return newRtx, nil

	case menuAdd:
		raw, err := promptInput("File paths (space-separated):", "")
		if err != nil {
			return nil, err
		}
		showMenuResult(rtx, actions.AddAction(ctx, rtx, strings.Fields(raw)))

	case menuCommit:
		message, err := promptInput("Commit message:", "")
		if err != nil {
			return nil, err
		}
		showMenuResult(rtx, actions.CommitAction(ctx, rtx, message))

	case menuPush:
		remote, branch, err := promptRemoteAndBranch(rtx)
		if err != nil {
			return nil, err
		}
		showMenuResult(rtx, actions.PushAction(ctx, rtx, remote, branch))

	case menuPull:
		remote, branch, err := promptRemoteAndBranch(rtx)
		if err != nil {
			return nil, err
		}
		showMenuResult(rtx, actions.PullAction(ctx, rtx, remote, branch))

	case menuBranch:
		name, err := promptInput("New branch name:", "")
		if err != nil {
			return nil, err
		}
		showMenuResult(rtx, actions.CreateBranchAction(ctx, rtx, name))

	case menuMerge:
		name, err := promptInput("Branch to merge:", "")
		if err != nil {
			return nil, err
		}
		showMenuResult(rtx, actions.MergeAction(ctx, rtx, name))

	case menuCheckout:
		name, err := promptBranchSelection(ctx, rtx)
		if err != nil {
			return nil, err
		}
		if name != "" {
			showMenuResult(rtx, actions.CheckoutAction(ctx, rtx, name))
		}

	case menuList:
		branches, result := actions.BranchListAction(ctx, rtx)
		if !result.Success {
			showMenuResult(rtx, result)
			break
		}
		for _, b := range branches {
			marker := "  "
			if b.Current {
				marker = "* "
			}
			rtx.Splog.Info("%s%s", marker, output.ColorBranchName(b.Name, b.Current))
		}

	case menuStatus:
		status, result := actions.StatusAction(ctx, rtx)
		if !result.Success {
			showMenuResult(rtx, result)
			break
		}
		rtx.Splog.Info("%s", status)

	case menuLicense:
		if err := runMenuLicense(cmd, rtx); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// runMenuLicense gathers license inputs and runs the generation sequence.
func runMenuLicense(cmd *cobra.Command, rtx *runtime.Context) error {
	licenseID, err := promptLicenseID(rtx)
	if err != nil {
		return err
	}

	defaultAuthor, err := config.GetAuthor(rtx.RepoRoot)
	if err != nil {
		defaultAuthor = ""
	}
	author, err := promptInput("Author/organization name:", defaultAuthor)
	if err != nil {
		return err
	}

	stage := true
	confirm := &survey.Confirm{
		Message: "Stage the license file?",
		Default: true,
	}
	if err := survey.AskOne(confirm, &stage); err != nil {
		return err
	}

	opts := actions.GenerateLicenseOptions{
		LicenseID: licenseID,
		Author:    author,
		Year:      time.Now().Year(),
		Stage:     stage,
	}
	showMenuResult(rtx, actions.GenerateLicenseAction(cmd.Context(), rtx, opts))
	return nil
}

// promptInput asks for a single line of input.
func promptInput(message, defaultValue string) (string, error) {
	var value string
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &value); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// promptRemoteAndBranch asks for a remote and branch, defaulted from config.
func promptRemoteAndBranch(rtx *runtime.Context) (string, string, error) {
	defaultRemote, err := config.GetDefaultRemote(rtx.RepoRoot)
	if err != nil {
		defaultRemote = "origin"
	}
	defaultBranch, err := config.GetDefaultBranch(rtx.RepoRoot)
	if err != nil {
		defaultBranch = "main"
	}

	remote, err := promptInput("Remote name:", defaultRemote)
	if err != nil {
		return "", "", err
	}
	branch, err := promptInput("Branch name:", defaultBranch)
	if err != nil {
		return "", "", err
	}
	return remote, branch, nil
}

// promptBranchSelection lists branches in a selector. It falls back to plain
// input when the listing fails (e.g. uninitialized repository) so the
// underlying operation can report the real failure.
func promptBranchSelection(ctx context.Context, rtx *runtime.Context) (string, error) {
	branches, result := actions.BranchListAction(ctx, rtx)
	if !result.Success || len(branches) == 0 {
		if !result.Success {
			showMenuResult(rtx, result)
			return "", nil
		}
		return promptInput("Branch to checkout:", "")
	}

	options := make([]string, len(branches))
	for i, b := range branches {
		options[i] = b.Name
	}

	var name string
	prompt := &survey.Select{
		Message: "Branch to checkout",
		Options: options,
	}
	if err := survey.AskOne(prompt, &name); err != nil {
		return "", err
	}
	return name, nil
}

// showMenuResult displays a Result without ending the menu loop.
func showMenuResult(rtx *runtime.Context, result *actions.Result) {
	if result.Success {
		if result.Warning {
			rtx.Splog.Warn(result.Message)
		} else {
			rtx.Splog.Info(result.Message)
		}
		return
	}
	rtx.Splog.Warn("Error: %s", result.Message)
}
