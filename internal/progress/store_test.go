package progress_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkratoch-git-workshop/git-tasks/internal/progress"
	"github.com/pkratoch-git-workshop/git-tasks/testhelpers"
)

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	store := progress.NewStore(scene.Dir)

	record, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, record)
}

func TestStartedDoneRoundTrip(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	store := progress.NewStore(scene.Dir)

	require.NoError(t, store.MarkStarted("merging", "abc123"))

	p, ok, err := store.Get("merging")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, progress.StatusStarted, p.Status)
	require.Equal(t, "abc123", p.BaseRevision)
	require.NotNil(t, p.StartedAt)
	require.Nil(t, p.CompletedAt)

	require.NoError(t, store.MarkDone("merging"))

	p, ok, err = store.Get("merging")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, progress.StatusDone, p.Status)
	require.Equal(t, "abc123", p.BaseRevision, "completion must keep the started state")
	require.NotNil(t, p.CompletedAt)
}

func TestRestartResetsCompletion(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	store := progress.NewStore(scene.Dir)

	require.NoError(t, store.MarkStarted("amend", "abc123"))
	require.NoError(t, store.MarkDone("amend"))
	require.NoError(t, store.MarkStarted("amend", "def456"))

	p, _, err := store.Get("amend")
	require.NoError(t, err)
	require.Equal(t, progress.StatusStarted, p.Status)
	require.Equal(t, "def456", p.BaseRevision)
	require.Nil(t, p.CompletedAt)
}

func TestClear(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	store := progress.NewStore(scene.Dir)

	require.NoError(t, store.MarkStarted("revert", "abc123"))
	require.NoError(t, store.Clear("revert"))

	_, ok, err := store.Get("revert")
	require.NoError(t, err)
	require.False(t, ok)

	// Clearing an unknown task is fine
	require.NoError(t, store.Clear("revert"))
}

func TestTasksAreIndependent(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	store := progress.NewStore(scene.Dir)

	require.NoError(t, store.MarkStarted("amend", "a"))
	require.NoError(t, store.MarkStarted("revert", "b"))
	require.NoError(t, store.MarkDone("amend"))

	p, _, err := store.Get("revert")
	require.NoError(t, err)
	require.Equal(t, progress.StatusStarted, p.Status)
}
