package git

import (
	"fmt"
	"os"

	gogit "github.com/go-git/go-git/v5"

	taskerrors "github.com/pkratoch-git-workshop/git-tasks/internal/errors"
)

// GetRepoRoot returns the root directory of the Git repository enclosing
// the current working directory.
func GetRepoRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(wd, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", taskerrors.ErrNotInRepo, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}
