package testhelpers

import (
	"os/exec"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper that panics if err is not nil, otherwise returns
// the value. Useful for test setup code where errors should halt immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectBranches asserts that the repository has exactly the expected branches.
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	cmd := exec.Command("git", "-C", repo.Dir,
		"for-each-ref", "refs/heads/", "--format=%(refname:short)")
	output, err := cmd.Output()
	require.NoError(t, err, "Failed to list branches")

	var branches []string
	for _, b := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		b = strings.TrimSpace(b)
		if b != "" {
			branches = append(branches, b)
		}
	}

	sorted := append([]string(nil), expected...)
	sort.Strings(sorted)
	sort.Strings(branches)

	require.Equal(t, sorted, branches, "Branches do not match")
}

// ExpectCurrentBranch asserts the checked out branch name.
func ExpectCurrentBranch(t *testing.T, repo *GitRepo, expected string) {
	t.Helper()

	current, err := repo.CurrentBranch()
	require.NoError(t, err, "Failed to get current branch")
	require.Equal(t, expected, current, "Wrong branch checked out")
}

// ExpectLocalConfig asserts a repository-local git config value.
// Pass empty expected to assert the key is not set.
func ExpectLocalConfig(t *testing.T, repo *GitRepo, key, expected string) {
	t.Helper()

	value, err := repo.RunGitCommandAndGetOutput("config", "--local", "--get", key)
	if expected == "" {
		require.Error(t, err, "Expected config %s to be unset", key)
		return
	}
	require.NoError(t, err, "Failed to get config %s", key)
	require.Equal(t, expected, value, "Wrong value for config %s", key)
}
