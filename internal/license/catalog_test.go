package license

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	repomanerrors "repoman.dev/repoman/internal/errors"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "licenses.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadBuiltin(t *testing.T) {
	t.Parallel()

	catalog := LoadBuiltin()
	require.Equal(t, 6, catalog.Len())

	for _, id := range []string{"MIT", "Apache-1.1", "Apache-2.0", "BSD-2-Clause", "BSD-3-Clause", "BSD-4-Clause"} {
		entry, err := catalog.Lookup(id)
		require.NoError(t, err, "expected built-in %s", id)
		require.NotEmpty(t, entry.Body)
		require.True(t, entry.RequiresAuthor)
		require.Contains(t, entry.Body, "{year}")
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	catalog := LoadBuiltin()

	entry, err := catalog.Lookup("mit")
	require.NoError(t, err)
	require.Equal(t, "MIT", entry.ID)

	entry, err = catalog.Lookup("BSD-3-CLAUSE")
	require.NoError(t, err)
	require.Equal(t, "BSD-3-Clause", entry.ID)
}

func TestLookupMiss(t *testing.T) {
	t.Parallel()

	catalog := LoadBuiltin()
	_, err := catalog.Lookup("WTFPL")
	require.ErrorIs(t, err, repomanerrors.ErrLicenseNotFound)

	var notFound *repomanerrors.LicenseNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "WTFPL", notFound.ID)
}

func TestLoadMissingExternalFile(t *testing.T) {
	t.Parallel()

	catalog, warnings, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, 6, catalog.Len())
}

func TestLoadExternalAddsAndOverrides(t *testing.T) {
	t.Parallel()

	path := writeCatalogFile(t, `{
		// Corporate catalog overrides and additions.
		"MIT": {
			"name": "Company MIT Variant",
			"text": "Custom MIT body for {name}, {year}."
		},
		"Zlib": {
			"name": "zlib License",
			"spdx": "Zlib",
			"text": "Copyright (c) {year} {name}\n\nThis software is provided as-is.",
		},
	}`)

	catalog, warnings, err := Load(path)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, 7, catalog.Len())

	// The external entry replaces the built-in wholesale.
	entry, err := catalog.Lookup("mit")
	require.NoError(t, err)
	require.Equal(t, "Company MIT Variant", entry.Name)
	require.Equal(t, "Custom MIT body for {name}, {year}.", entry.Body)

	entry, err = catalog.Lookup("zlib")
	require.NoError(t, err)
	require.Equal(t, "Zlib", entry.ID)
	require.Equal(t, "Zlib", entry.SPDX)
}

func TestLoadExternalRequiresName(t *testing.T) {
	t.Parallel()

	path := writeCatalogFile(t, `{
		"Unlicense": {
			"name": "The Unlicense",
			"text": "This is free and unencumbered software released into the public domain.",
			"requires_name": false
		}
	}`)

	catalog, warnings, err := Load(path)
	require.NoError(t, err)
	require.Empty(t, warnings)

	entry, err := catalog.Lookup("unlicense")
	require.NoError(t, err)
	require.False(t, entry.RequiresAuthor)
}

func TestLoadSkipsInvalidEntries(t *testing.T) {
	t.Parallel()

	path := writeCatalogFile(t, `{
		"Empty-Body": {
			"name": "No Body",
			"text": "   "
		},
		"Bad-Placeholder": {
			"name": "Bad Placeholder",
			"text": "Copyright {year} {email}"
		},
		"Good": {
			"name": "Good License",
			"text": "Copyright (c) {year} {name}"
		}
	}`)

	catalog, warnings, err := Load(path)
	require.NoError(t, err)
	require.Len(t, warnings, 2)

	for _, w := range warnings {
		require.Equal(t, repomanerrors.KindCatalogEntryInvalid, repomanerrors.KindOf(w))
	}

	_, err = catalog.Lookup("Good")
	require.NoError(t, err)
	_, err = catalog.Lookup("Empty-Body")
	require.ErrorIs(t, err, repomanerrors.ErrLicenseNotFound)
	_, err = catalog.Lookup("Bad-Placeholder")
	require.ErrorIs(t, err, repomanerrors.ErrLicenseNotFound)
}

func TestLoadUnparseableFileFallsBackToBuiltins(t *testing.T) {
	t.Parallel()

	path := writeCatalogFile(t, `{this is not json at all`)

	catalog, warnings, err := Load(path)
	require.ErrorIs(t, err, repomanerrors.ErrCatalogLoadFailed)
	require.Empty(t, warnings)

	// Built-ins stay available as the fallback catalog.
	require.Equal(t, 6, catalog.Len())
	_, lookupErr := catalog.Lookup("MIT")
	require.NoError(t, lookupErr)
}

func TestEntriesOrderIsDeterministic(t *testing.T) {
	t.Parallel()

	path := writeCatalogFile(t, `{
		"Zlib": {"text": "z {year} {name}"},
		"Artistic-2.0": {"text": "a {year} {name}"}
	}`)

	first, _, err := Load(path)
	require.NoError(t, err)
	second, _, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, first.IDs(), second.IDs())

	// Built-ins keep their pinned order; external additions sort after.
	ids := first.IDs()
	require.Equal(t, "MIT", ids[0])
	require.Equal(t, []string{"Artistic-2.0", "Zlib"}, ids[len(ids)-2:])
}
