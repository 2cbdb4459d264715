package actions_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkratoch-git-workshop/git-tasks/internal/actions"
	taskerrors "github.com/pkratoch-git-workshop/git-tasks/internal/errors"
	"github.com/pkratoch-git-workshop/git-tasks/internal/progress"
	"github.com/pkratoch-git-workshop/git-tasks/internal/runtime"
	"github.com/pkratoch-git-workshop/git-tasks/testhelpers"
)

func newContext(t *testing.T, scene *testhelpers.Scene) *runtime.Context {
	t.Helper()
	ctx, err := runtime.NewContext(scene.Dir)
	require.NoError(t, err)
	ctx.Splog.SetQuiet(true)
	return ctx
}

func TestStartAndCheckFirstCommit(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	ctx := newContext(t, scene)

	require.NoError(t, actions.StartAction(ctx, actions.StartOptions{TaskName: "first-commit"}))

	testhelpers.ExpectCurrentBranch(t, scene.Repo, "first-commit-task")
	record, ok, err := ctx.Store.Get("first-commit")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, progress.StatusStarted, record.Status)
	require.NotEmpty(t, record.BaseRevision)

	// Nothing done yet, the check must refuse
	err = actions.CheckAction(ctx, actions.CheckOptions{TaskName: "first-commit"})
	require.ErrorContains(t, err, "not complete yet")

	require.NoError(t, scene.Repo.CommitFile("hello.txt", "Hello, Git!\n", "Add a greeting"))

	require.NoError(t, actions.CheckAction(ctx, actions.CheckOptions{TaskName: "first-commit"}))
	record, ok, err = ctx.Store.Get("first-commit")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, progress.StatusDone, record.Status)
}

func TestStartUnknownTask(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	ctx := newContext(t, scene)

	err := actions.StartAction(ctx, actions.StartOptions{TaskName: "no-such-task"})
	require.True(t, errors.Is(err, taskerrors.ErrUnknownTask))
}

func TestStartRequiresCleanWorktree(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	ctx := newContext(t, scene)

	require.NoError(t, scene.Repo.WriteFile("README.md", "dirty\n"))

	err := actions.StartAction(ctx, actions.StartOptions{TaskName: "first-commit"})
	require.ErrorContains(t, err, "uncommitted changes")
}

func TestStartResumesExistingBranch(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	ctx := newContext(t, scene)

	require.NoError(t, actions.StartAction(ctx, actions.StartOptions{TaskName: "amend"}))
	baseBefore, _, err := ctx.Store.Get("amend")
	require.NoError(t, err)

	require.NoError(t, scene.Repo.CheckoutBranch("main"))
	require.NoError(t, actions.StartAction(ctx, actions.StartOptions{TaskName: "amend"}))

	// Resuming switches back without reseeding or moving the base
	testhelpers.ExpectCurrentBranch(t, scene.Repo, "amend-task")
	baseAfter, _, err := ctx.Store.Get("amend")
	require.NoError(t, err)
	require.Equal(t, baseBefore.BaseRevision, baseAfter.BaseRevision)
}

func TestCheckUnstartedTask(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	ctx := newContext(t, scene)

	err := actions.CheckAction(ctx, actions.CheckOptions{TaskName: "amend"})
	require.True(t, errors.Is(err, taskerrors.ErrTaskNotStarted))
}

func TestUserActionSetAndUnset(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	ctx := newContext(t, scene)

	require.NoError(t, actions.UserAction(ctx, actions.UserOptions{Name: "Eva Nováková"}))
	testhelpers.ExpectLocalConfig(t, scene.Repo, "user.name", "Eva Nováková")
	testhelpers.ExpectLocalConfig(t, scene.Repo, "user.email", "eva.nov.kov@git.example.com")

	require.NoError(t, actions.UserAction(ctx, actions.UserOptions{}))
	testhelpers.ExpectLocalConfig(t, scene.Repo, "user.name", "")
	testhelpers.ExpectLocalConfig(t, scene.Repo, "user.email", "")

	// Unsetting twice stays quiet
	require.NoError(t, actions.UserAction(ctx, actions.UserOptions{}))
}

func TestResetActionDeletesBranchesAndProgress(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	ctx := newContext(t, scene)

	require.NoError(t, actions.StartAction(ctx, actions.StartOptions{TaskName: "merging"}))
	testhelpers.ExpectBranches(t, scene.Repo, []string{"main", "merging-feature", "merging-task"})

	// Reset while standing on the task branch
	require.NoError(t, actions.ResetAction(ctx, actions.ResetOptions{TaskName: "merging", Force: true}))

	testhelpers.ExpectBranches(t, scene.Repo, []string{"main"})
	_, ok, err := ctx.Store.Get("merging")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestResetActionPromptRespectsNonInteractive(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	ctx := newContext(t, scene)

	require.NoError(t, actions.StartAction(ctx, actions.StartOptions{TaskName: "amend"}))

	t.Setenv("GIT_TASKS_TEST_NO_INTERACTIVE", "1")
	err := actions.ResetAction(ctx, actions.ResetOptions{TaskName: "amend"})
	require.ErrorContains(t, err, "interactive prompts are disabled")
}

func TestListAction(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	ctx := newContext(t, scene)

	require.NoError(t, actions.ListAction(ctx))

	require.NoError(t, actions.StartAction(ctx, actions.StartOptions{TaskName: "first-commit"}))
	require.NoError(t, scene.Repo.CommitFile("hello.txt", "Hello, Git!\n", "Add a greeting"))
	require.NoError(t, actions.CheckAction(ctx, actions.CheckOptions{TaskName: "first-commit"}))

	require.NoError(t, actions.ListAction(ctx))
}

func TestCheatsheetAction(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	ctx := newContext(t, scene)

	require.NoError(t, actions.CheatsheetAction(actions.CheatsheetOptions{Splog: ctx.Splog}))
	require.NoError(t, actions.CheatsheetAction(actions.CheatsheetOptions{Topic: "branches", Splog: ctx.Splog}))

	err := actions.CheatsheetAction(actions.CheatsheetOptions{Topic: "nope", Splog: ctx.Splog})
	require.True(t, errors.Is(err, taskerrors.ErrUnknownTopic))
}
