package git

import (
	"context"
	"fmt"
	"strings"
)

// HasStagedChanges checks if there are staged changes
func (r *CommandRunner) HasStagedChanges(ctx context.Context) (bool, error) {
	output, err := r.Run(ctx, "diff", "--cached", "--shortstat")
	if err != nil {
		return false, fmt.Errorf("failed to check staged changes: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// HasUnstagedChanges checks if there are unstaged changes to tracked files
func (r *CommandRunner) HasUnstagedChanges(ctx context.Context) (bool, error) {
	files, err := r.RunLines(ctx, "diff", "--name-only")
	if err != nil {
		return false, fmt.Errorf("failed to check unstaged changes: %w", err)
	}
	return len(files) > 0, nil
}

// IsWorktreeClean checks that there are no staged, unstaged or merge-pending changes
func (r *CommandRunner) IsWorktreeClean(ctx context.Context) (bool, error) {
	entries, err := r.RunLines(ctx, "status", "--porcelain", "--untracked-files=no")
	if err != nil {
		return false, fmt.Errorf("failed to check worktree status: %w", err)
	}
	return len(entries) == 0, nil
}

// HasMergeInProgress checks whether a merge is currently in progress
func (r *CommandRunner) HasMergeInProgress(ctx context.Context) (bool, error) {
	_, err := r.Run(ctx, "rev-parse", "--verify", "--quiet", "MERGE_HEAD")
	if err != nil {
		return false, nil
	}
	return true, nil
}
