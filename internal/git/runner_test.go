package git_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	taskerrors "github.com/pkratoch-git-workshop/git-tasks/internal/errors"
	"github.com/pkratoch-git-workshop/git-tasks/internal/git"
	"github.com/pkratoch-git-workshop/git-tasks/testhelpers"
)

func TestRunReturnsTrimmedOutput(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	runner := git.NewCommandRunner(scene.Dir)

	out, err := runner.Run(context.Background(), "rev-parse", "--abbrev-ref", "HEAD")
	require.NoError(t, err)
	require.Equal(t, "main", out)
}

func TestRunWrapsFailuresAsGitCommandError(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	runner := git.NewCommandRunner(scene.Dir)

	_, err := runner.Run(context.Background(), "rev-parse", "--verify", "no-such-ref")
	require.Error(t, err)

	var gitErr *taskerrors.GitCommandError
	require.True(t, errors.As(err, &gitErr))
	require.Equal(t, []string{"rev-parse", "--verify", "no-such-ref"}, gitErr.Args)
}

func TestRunRespectsContextCancellation(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	runner := git.NewCommandRunner(scene.Dir)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()

	_, err := runner.Run(ctx, "status")
	require.Error(t, err)
}

func TestRunLines(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.RunGitCommand("branch", "extra")
	})
	runner := git.NewCommandRunner(scene.Dir)

	lines, err := runner.RunLines(context.Background(), "branch", "--format=%(refname:short)")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"extra", "main"}, lines)
}

func TestRunLinesEmptyOutput(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	runner := git.NewCommandRunner(scene.Dir)

	lines, err := runner.RunLines(context.Background(), "status", "--porcelain")
	require.NoError(t, err)
	require.Empty(t, lines)
}
