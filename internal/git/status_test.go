package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkratoch-git-workshop/git-tasks/internal/git"
	"github.com/pkratoch-git-workshop/git-tasks/testhelpers"
)

func TestStagedAndUnstagedChanges(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	runner := git.NewCommandRunner(scene.Dir)
	ctx := context.Background()

	clean, err := runner.IsWorktreeClean(ctx)
	require.NoError(t, err)
	require.True(t, clean)

	require.NoError(t, scene.Repo.WriteFile("README.md", "edited\n"))

	unstaged, err := runner.HasUnstagedChanges(ctx)
	require.NoError(t, err)
	require.True(t, unstaged)
	staged, err := runner.HasStagedChanges(ctx)
	require.NoError(t, err)
	require.False(t, staged)

	require.NoError(t, scene.Repo.RunGitCommand("add", "README.md"))

	staged, err = runner.HasStagedChanges(ctx)
	require.NoError(t, err)
	require.True(t, staged)
	clean, err = runner.IsWorktreeClean(ctx)
	require.NoError(t, err)
	require.False(t, clean)
}

func TestHasMergeInProgress(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	runner := git.NewCommandRunner(scene.Dir)
	ctx := context.Background()

	merging, err := runner.HasMergeInProgress(ctx)
	require.NoError(t, err)
	require.False(t, merging)

	// Build a conflicting merge and leave it unresolved
	require.NoError(t, scene.Repo.CommitFile("shared.txt", "base\n", "Add shared"))
	require.NoError(t, scene.Repo.CreateAndCheckoutBranch("side"))
	require.NoError(t, scene.Repo.CommitFile("shared.txt", "side\n", "Side edit"))
	require.NoError(t, scene.Repo.CheckoutBranch("main"))
	require.NoError(t, scene.Repo.CommitFile("shared.txt", "main\n", "Main edit"))
	require.Error(t, scene.Repo.RunGitCommand("merge", "side"))

	merging, err = runner.HasMergeInProgress(ctx)
	require.NoError(t, err)
	require.True(t, merging)

	require.NoError(t, scene.Repo.RunGitCommand("merge", "--abort"))
	merging, err = runner.HasMergeInProgress(ctx)
	require.NoError(t, err)
	require.False(t, merging)
}
