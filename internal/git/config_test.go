package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkratoch-git-workshop/git-tasks/internal/git"
	"github.com/pkratoch-git-workshop/git-tasks/testhelpers"
)

func TestLocalConfigRoundTrip(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	runner := git.NewCommandRunner(scene.Dir)
	ctx := context.Background()

	_, ok, err := runner.GetLocalConfig(ctx, "workshop.flavor")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, runner.SetLocalConfig(ctx, "workshop.flavor", "espresso"))

	value, ok, err := runner.GetLocalConfig(ctx, "workshop.flavor")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "espresso", value)

	require.NoError(t, runner.UnsetLocalConfig(ctx, "workshop.flavor"))
	_, ok, err = runner.GetLocalConfig(ctx, "workshop.flavor")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestUnsetMissingKeyIsNotAnError(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	runner := git.NewCommandRunner(scene.Dir)

	require.NoError(t, runner.UnsetLocalConfig(context.Background(), "workshop.absent"))
}

func TestGetUserName(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	runner := git.NewCommandRunner(scene.Dir)
	ctx := context.Background()

	name, ok, err := runner.GetUserName(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Test User", name)
}
