package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newConfigRoot(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	return dir
}

func TestGetMissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	root := newConfigRoot(t)

	author, err := GetAuthor(root)
	require.NoError(t, err)
	require.Empty(t, author)

	remote, err := GetDefaultRemote(root)
	require.NoError(t, err)
	require.Equal(t, "origin", remote)

	branch, err := GetDefaultBranch(root)
	require.NoError(t, err)
	require.Equal(t, "main", branch)

	catalogPath, err := GetCatalogPath(root)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "licenses.json"), catalogPath)
}

func TestSetAndGetRoundTrip(t *testing.T) {
	t.Parallel()

	root := newConfigRoot(t)

	require.NoError(t, SetAuthor(root, "Jane Doe"))
	require.NoError(t, SetDefaultRemote(root, "upstream"))
	require.NoError(t, SetDefaultBranch(root, "trunk"))

	author, err := GetAuthor(root)
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", author)

	remote, err := GetDefaultRemote(root)
	require.NoError(t, err)
	require.Equal(t, "upstream", remote)

	branch, err := GetDefaultBranch(root)
	require.NoError(t, err)
	require.Equal(t, "trunk", branch)
}

func TestSettersPreserveOtherFields(t *testing.T) {
	t.Parallel()

	root := newConfigRoot(t)

	require.NoError(t, SetAuthor(root, "Jane Doe"))
	require.NoError(t, SetDefaultRemote(root, "upstream"))

	author, err := GetAuthor(root)
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", author)
}

func TestGetCatalogPathResolvesRelative(t *testing.T) {
	t.Parallel()

	root := newConfigRoot(t)
	relative := "configs/licenses.jsonc"
	require.NoError(t, Save(root, &Config{CatalogPath: &relative}))

	catalogPath, err := GetCatalogPath(root)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, relative), catalogPath)
}

func TestGetCatalogPathKeepsAbsolute(t *testing.T) {
	t.Parallel()

	root := newConfigRoot(t)
	absolute := filepath.Join(t.TempDir(), "shared-licenses.json")
	require.NoError(t, Save(root, &Config{CatalogPath: &absolute}))

	catalogPath, err := GetCatalogPath(root)
	require.NoError(t, err)
	require.Equal(t, absolute, catalogPath)
}

func TestGetCorruptFileIsAnError(t *testing.T) {
	t.Parallel()

	root := newConfigRoot(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".git", ".repoman_config"), []byte("{nope"), 0600))

	_, err := Get(root)
	require.Error(t, err)
}
