package task_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	taskerrors "github.com/pkratoch-git-workshop/git-tasks/internal/errors"
	"github.com/pkratoch-git-workshop/git-tasks/internal/task"
)

func TestCatalogIsWellFormed(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, tsk := range task.All() {
		require.NotEmpty(t, tsk.Name)
		require.False(t, seen[tsk.Name], "duplicate task name %s", tsk.Name)
		seen[tsk.Name] = true

		require.NotEmpty(t, tsk.Title, "task %s has no title", tsk.Name)
		require.NotEmpty(t, tsk.Summary, "task %s has no summary", tsk.Name)
		require.NotEmpty(t, tsk.Instructions, "task %s has no instructions", tsk.Name)
		require.NotEmpty(t, tsk.Requirements, "task %s has no requirements", tsk.Name)

		require.Equal(t, tsk.Name+"-task", tsk.Branch())
		for _, req := range tsk.Requirements {
			require.NotEmpty(t, req.Description, "task %s has an undescribed requirement", tsk.Name)
			require.NotEmpty(t, req.Hint, "task %s requirement %q has no hint", tsk.Name, req.Description)
			require.NotNil(t, req.Check)
		}
		for _, branch := range tsk.Branches() {
			require.True(t, strings.HasPrefix(branch, tsk.Name+"-"),
				"task %s branch %s does not follow <name>-<suffix>", tsk.Name, branch)
		}
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	tsk, err := task.Lookup("merging")
	require.NoError(t, err)
	require.Equal(t, "merging", tsk.Name)
	require.Equal(t, "merging-task", tsk.Branch())
	require.Equal(t, []string{"merging-task", "merging-feature"}, tsk.Branches())
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()

	_, err := task.Lookup("time-travel")
	require.Error(t, err)
	require.True(t, errors.Is(err, taskerrors.ErrUnknownTask))
	require.Contains(t, err.Error(), "time-travel")
	require.Contains(t, err.Error(), "merging", "error should list valid tasks")
}

func TestNamesMatchCatalogOrder(t *testing.T) {
	t.Parallel()

	names := task.Names()
	require.Len(t, names, len(task.All()))
	for i, tsk := range task.All() {
		require.Equal(t, tsk.Name, names[i])
	}
}
