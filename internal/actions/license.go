package actions

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"repoman.dev/repoman/internal/config"
	repomanerrors "repoman.dev/repoman/internal/errors"
	"repoman.dev/repoman/internal/license"
	"repoman.dev/repoman/internal/runtime"
)

// LicenseFileName is the conventional license file at the repository root.
const LicenseFileName = "LICENSE"

// GenerateLicenseOptions specifies options for license generation.
type GenerateLicenseOptions struct {
	LicenseID string
	Author    string
	// Year is the copyright year. Callers default it to the current
	// calendar year; the renderer never does.
	Year int
	// Stage controls whether the written file is staged afterwards.
	Stage bool
}

// loadCatalog builds the merged catalog for the repository, surfacing
// per-entry warnings and falling back to built-ins when the external file is
// unusable as a whole.
func loadCatalog(rtx *runtime.Context) *license.Catalog {
	catalogPath, err := config.GetCatalogPath(rtx.RepoRoot)
	if err != nil {
		rtx.Splog.Warn("Could not read config, using built-in licenses: %v", err)
		return license.LoadBuiltin()
	}

	catalog, warnings, loadErr := license.Load(catalogPath)
	for _, w := range warnings {
		rtx.Splog.Warn("%v", w)
		rtx.Splog.Event("license.catalog",
			"outcome", string(repomanerrors.KindCatalogEntryInvalid),
			"detail", w.Error())
	}
	if loadErr != nil {
		rtx.Splog.Warn("%v; falling back to built-in licenses", loadErr)
		rtx.Splog.Event("license.catalog",
			"path", catalogPath,
			"outcome", string(repomanerrors.KindCatalogLoadFailed))
	}
	return catalog
}

// ListLicensesAction returns the merged catalog entries available for
// rendering.
func ListLicensesAction(rtx *runtime.Context) []license.Entry {
	return loadCatalog(rtx).Entries()
}

// GenerateLicenseAction renders the requested license and writes it to the
// conventional file at the repository root, then optionally stages it. The
// sequence halts at the first failure; a file that was written but not
// staged is reported as a partial sequence failure so the caller knows the
// file exists.
func GenerateLicenseAction(ctx context.Context, rtx *runtime.Context, opts GenerateLicenseOptions) *Result {
	const op = "license"
	seqID := uuid.NewString()

	catalog := loadCatalog(rtx)

	entry, err := catalog.Lookup(opts.LicenseID)
	if err != nil {
		rtx.Splog.Event("license.generate", "seq", seqID, "license", opts.LicenseID,
			"outcome", string(repomanerrors.KindLicenseNotFound))
		return failure(op, err)
	}

	rendered, err := license.Render(entry, opts.Author, opts.Year)
	if err != nil {
		rtx.Splog.Event("license.generate", "seq", seqID, "license", entry.ID,
			"outcome", string(repomanerrors.KindOf(err)))
		return failure(op, err)
	}

	licensePath := filepath.Join(rtx.RepoRoot, LicenseFileName)
	if err := os.WriteFile(licensePath, []byte(rendered.Text), 0644); err != nil {
		rtx.Splog.Event("license.generate", "seq", seqID, "license", entry.ID,
			"outcome", "write-failed")
		return failure(op, fmt.Errorf("failed to save %s: %w", LicenseFileName, err))
	}

	completed := []string{
		fmt.Sprintf("rendered %s license", entry.ID),
		fmt.Sprintf("wrote %s", LicenseFileName),
	}

	if opts.Stage {
		if err := rtx.Repo.Add(ctx, []string{LicenseFileName}); err != nil {
			seqErr := repomanerrors.NewPartialSequenceError(op, completed,
				fmt.Sprintf("stage %s", LicenseFileName), err)
			rtx.Splog.Event("license.generate", "seq", seqID, "license", entry.ID,
				"file_written", true, "staged", false,
				"outcome", string(repomanerrors.KindPartialSequenceFailure))
			result := failure(op, seqErr)
			result.Message = fmt.Sprintf(
				"%s was written but could not be staged: %v", LicenseFileName, err)
			return result
		}
		completed = append(completed, fmt.Sprintf("staged %s", LicenseFileName))
	}

	rtx.Splog.Event("license.generate", "seq", seqID, "license", entry.ID,
		"author", rendered.Author, "year", rendered.Year,
		"staged", opts.Stage, "outcome", "ok")
	return success(op, "Generated %s license at %s", entry.ID, licensePath)
}
