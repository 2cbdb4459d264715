package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkratoch-git-workshop/git-tasks/internal/git"
	"github.com/pkratoch-git-workshop/git-tasks/testhelpers"
)

func openRepo(t *testing.T, scene *testhelpers.Scene) *git.Repository {
	t.Helper()
	repo, err := git.OpenRepository(scene.Dir)
	require.NoError(t, err)
	return repo
}

func TestOpenRepositoryRejectsNonRepo(t *testing.T) {
	t.Parallel()
	_, err := git.OpenRepository(t.TempDir())
	require.Error(t, err)
}

func TestGetBranchNames(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.RunGitCommand("branch", "develop")
	})
	repo := openRepo(t, scene)

	names, err := repo.GetBranchNames()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"develop", "main"}, names)
}

func TestGetCurrentBranch(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	repo := openRepo(t, scene)

	branch, err := repo.GetCurrentBranch()
	require.NoError(t, err)
	require.Equal(t, "main", branch)

	// Detached HEAD has no current branch
	require.NoError(t, scene.Repo.RunGitCommand("checkout", "--detach", "HEAD"))
	_, err = repo.GetCurrentBranch()
	require.Error(t, err)
}

func TestGetRevision(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	repo := openRepo(t, scene)

	rev, err := repo.GetRevision("HEAD")
	require.NoError(t, err)
	require.Len(t, rev, 40)
	require.Equal(t, testhelpers.Must(scene.Repo.Revision("HEAD")), rev)

	byBranch, err := repo.GetRevision("main")
	require.NoError(t, err)
	require.Equal(t, rev, byBranch)

	_, err = repo.GetRevision("no-such-ref")
	require.Error(t, err)
}

func TestCommitSubject(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CommitFile("a.txt", "a\n", "Subject line\n\nBody text")
	})
	repo := openRepo(t, scene)

	subject, err := repo.CommitSubject("HEAD")
	require.NoError(t, err)
	require.Equal(t, "Subject line", subject)
}

func TestFileContentAt(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CommitFile("dir/file.txt", "payload\n", "Add payload")
	})
	repo := openRepo(t, scene)

	content, ok, err := repo.FileContentAt("HEAD", "dir/file.txt")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "payload\n", content)

	_, ok, err = repo.FileContentAt("HEAD", "absent.txt")
	require.NoError(t, err)
	require.False(t, ok)

	// Older revisions keep their tree
	require.NoError(t, scene.Repo.CommitFile("dir/file.txt", "changed\n", "Change payload"))
	content, ok, err = repo.FileContentAt("HEAD~1", "dir/file.txt")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "payload\n", content)
}

func TestIsAncestorAndMergeBase(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	repo := openRepo(t, scene)

	root := testhelpers.Must(scene.Repo.Revision("HEAD"))
	require.NoError(t, scene.Repo.CreateAndCheckoutBranch("left"))
	require.NoError(t, scene.Repo.CommitFile("l.txt", "l\n", "left"))
	require.NoError(t, scene.Repo.CheckoutBranch("main"))
	require.NoError(t, scene.Repo.CreateAndCheckoutBranch("right"))
	require.NoError(t, scene.Repo.CommitFile("r.txt", "r\n", "right"))

	ok, err := repo.IsAncestor("main", "left")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.IsAncestor("left", "right")
	require.NoError(t, err)
	require.False(t, ok)

	base, err := repo.MergeBase("left", "right")
	require.NoError(t, err)
	require.Equal(t, root, base)
}

func TestCountCommits(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	repo := openRepo(t, scene)

	base := testhelpers.Must(scene.Repo.Revision("HEAD"))
	require.NoError(t, scene.Repo.CommitFile("a.txt", "a\n", "one"))
	require.NoError(t, scene.Repo.CommitFile("b.txt", "b\n", "two"))
	require.NoError(t, scene.Repo.CommitFile("c.txt", "c\n", "three"))

	n, err := repo.CountCommits(base, "HEAD")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	n, err = repo.CountCommits("HEAD", "HEAD")
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestHasMergeCommits(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	repo := openRepo(t, scene)

	base := testhelpers.Must(scene.Repo.Revision("HEAD"))
	require.NoError(t, scene.Repo.CreateAndCheckoutBranch("side"))
	require.NoError(t, scene.Repo.CommitFile("s.txt", "s\n", "side work"))
	require.NoError(t, scene.Repo.CheckoutBranch("main"))
	require.NoError(t, scene.Repo.CommitFile("m.txt", "m\n", "main work"))

	has, err := repo.HasMergeCommits(base, "HEAD")
	require.NoError(t, err)
	require.False(t, has)

	require.NoError(t, scene.Repo.RunGitCommand("merge", "--no-edit", "side"))

	has, err = repo.HasMergeCommits(base, "HEAD")
	require.NoError(t, err)
	require.True(t, has)
}
