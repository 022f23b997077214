package actions

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	repomanerrors "repoman.dev/repoman/internal/errors"
	"repoman.dev/repoman/testhelpers"
)

func TestInitAction(t *testing.T) {
	t.Parallel()

	t.Run("fresh directory", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "project")
		rtx := newRuntimeContext(t, dir)

		result := InitAction(context.Background(), rtx)
		require.True(t, result.Success)
		require.False(t, result.Warning)
	})

	t.Run("already initialized is a warning", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)
		rtx := newRuntimeContext(t, scene.Dir)

		result := InitAction(context.Background(), rtx)
		require.True(t, result.Success)
		require.True(t, result.Warning)
		require.Contains(t, result.Message, "already initialized")
	})
}

func TestAddCommitFlow(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t)
	rtx := newRuntimeContext(t, scene.Dir)
	require.NoError(t, scene.Repo.CreateChange("main.go", "package main"))

	result := AddAction(context.Background(), rtx, []string{"main.go"})
	require.True(t, result.Success)

	result = CommitAction(context.Background(), rtx, "initial commit")
	require.True(t, result.Success)

	// A second commit with nothing staged surfaces as a precondition result.
	result = CommitAction(context.Background(), rtx, "empty commit")
	require.False(t, result.Success)
	require.Equal(t, repomanerrors.KindPreconditionFailed, result.Kind)
}

func TestBranchActions(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t)
	rtx := newRuntimeContext(t, scene.Dir)
	require.NoError(t, scene.Repo.CreateChangeAndCommit("a.txt", "first"))

	result := CreateBranchAction(context.Background(), rtx, "feature")
	require.True(t, result.Success)

	branches, listResult := BranchListAction(context.Background(), rtx)
	require.True(t, listResult.Success)
	require.Len(t, branches, 2)
	require.Equal(t, "feature", branches[0].Name)
	require.True(t, branches[0].Current)

	result = CheckoutAction(context.Background(), rtx, "main")
	require.True(t, result.Success)

	result = MergeAction(context.Background(), rtx, "feature")
	require.True(t, result.Success)

	result = CheckoutAction(context.Background(), rtx, "missing")
	require.False(t, result.Success)
	require.Equal(t, repomanerrors.KindPreconditionFailed, result.Kind)
}

func TestPushActionFailureCarriesDiagnostics(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t)
	rtx := newRuntimeContext(t, scene.Dir)
	require.NoError(t, scene.Repo.CreateChangeAndCommit("a.txt", "first"))

	// Point origin at a path that does not hold a repository.
	require.NoError(t, scene.Repo.RunGit("remote", "add", "origin", filepath.Join(t.TempDir(), "missing.git")))

	result := PushAction(context.Background(), rtx, "origin", "main")
	require.False(t, result.Success)
	require.Equal(t, repomanerrors.KindClassifiedToolError, result.Kind)
	require.NotZero(t, result.ExitCode)
	require.NotEmpty(t, result.Stderr)
}

func TestPullAction(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t)
	rtx := newRuntimeContext(t, scene.Dir)
	require.NoError(t, scene.Repo.CreateChangeAndCommit("a.txt", "first"))
	_, err := scene.Repo.AddRemote("origin", t.TempDir())
	require.NoError(t, err)

	result := PushAction(context.Background(), rtx, "origin", "main")
	require.True(t, result.Success)

	result = PullAction(context.Background(), rtx, "origin", "main")
	require.True(t, result.Success)
}

func TestStatusAction(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t)
	rtx := newRuntimeContext(t, scene.Dir)
	require.NoError(t, scene.Repo.CreateChangeAndCommit("a.txt", "first"))

	status, result := StatusAction(context.Background(), rtx)
	require.True(t, result.Success)
	require.Contains(t, status, "working tree clean")
}
