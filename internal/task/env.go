// Package task defines the workshop task catalog: fixture seeding,
// per-task instructions, and the repository checks that grade them.
package task

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkratoch-git-workshop/git-tasks/internal/git"
)

// Env gives seeds and checks access to one repository. Base is the revision
// the task branch pointed at when the task was started; checks use it to
// reason about what the learner added since.
type Env struct {
	Runner *git.CommandRunner
	Repo   *git.Repository
	Root   string
	Base   string
}

// NewEnv creates an Env bound to the repository at repoRoot
func NewEnv(repoRoot string) (*Env, error) {
	repo, err := git.OpenRepository(repoRoot)
	if err != nil {
		return nil, err
	}
	return &Env{
		Runner: git.NewCommandRunner(repoRoot),
		Repo:   repo,
		Root:   repoRoot,
	}, nil
}

// WriteFile writes a file relative to the repository root, creating parent
// directories as needed. Used by fixture seeding.
func (e *Env) WriteFile(relPath, content string) error {
	path := filepath.Join(e.Root, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", relPath, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", relPath, err)
	}
	return nil
}

// CurrentBranchIs checks that HEAD is on the named branch
func (e *Env) CurrentBranchIs(branchName string) (bool, error) {
	current, err := e.Repo.GetCurrentBranch()
	if err != nil {
		// Detached HEAD (e.g. mid-rebase) is simply "not on the branch"
		return false, nil
	}
	return current == branchName, nil
}

// BranchExists checks that a local branch exists
func (e *Env) BranchExists(branchName string) (bool, error) {
	return e.Repo.BranchExists(branchName)
}

// FileAtRefContains checks that a file exists in the tree of ref and its
// content contains each of the given substrings.
func (e *Env) FileAtRefContains(ref, relPath string, substrings ...string) (bool, error) {
	content, ok, err := e.Repo.FileContentAt(ref, relPath)
	if err != nil || !ok {
		return false, err
	}
	for _, s := range substrings {
		if !strings.Contains(content, s) {
			return false, nil
		}
	}
	return true, nil
}

// FileAtRefExists checks that a file exists in the tree of ref
func (e *Env) FileAtRefExists(ref, relPath string) (bool, error) {
	_, ok, err := e.Repo.FileContentAt(ref, relPath)
	return ok, err
}

// HeadSubjectIs checks that the subject of HEAD equals the given text
func (e *Env) HeadSubjectIs(subject string) (bool, error) {
	got, err := e.Repo.CommitSubject("HEAD")
	if err != nil {
		return false, err
	}
	return got == subject, nil
}

// SubjectAtIs checks that the subject of the commit at ref equals the given
// text. Unresolvable refs (too-short history mid-exercise) are simply "no".
func (e *Env) SubjectAtIs(ref, subject string) (bool, error) {
	got, err := e.Repo.CommitSubject(ref)
	if err != nil {
		return false, nil
	}
	return got == subject, nil
}

// HeadSubjectHasPrefix checks that the subject of HEAD starts with the given text
func (e *Env) HeadSubjectHasPrefix(prefix string) (bool, error) {
	got, err := e.Repo.CommitSubject("HEAD")
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(got, prefix), nil
}

// CommitsSinceBase returns the number of commits on ref that are not
// reachable from the recorded base revision.
func (e *Env) CommitsSinceBase(ref string) (int, error) {
	return e.Repo.CountCommits(e.Base, ref)
}

// IsAncestor checks that ancestor is reachable from descendant
func (e *Env) IsAncestor(ancestor, descendant string) (bool, error) {
	ok, err := e.Repo.IsAncestor(ancestor, descendant)
	if err != nil {
		// Unresolvable refs (deleted branch, rewritten base) mean "no"
		return false, nil
	}
	return ok, nil
}

// LinearSince checks that the base..ref range contains no merge commits
func (e *Env) LinearSince(ref string) (bool, error) {
	hasMerges, err := e.Repo.HasMergeCommits(e.Base, ref)
	if err != nil {
		return false, err
	}
	return !hasMerges, nil
}

// WorktreeClean checks that nothing is staged, modified or mid-merge
func (e *Env) WorktreeClean(ctx context.Context) (bool, error) {
	merging, err := e.Runner.HasMergeInProgress(ctx)
	if err != nil {
		return false, err
	}
	if merging {
		return false, nil
	}
	return e.Runner.IsWorktreeClean(ctx)
}

// IdentitySet checks that git user.name is configured
func (e *Env) IdentitySet(ctx context.Context) (bool, error) {
	_, ok, err := e.Runner.GetUserName(ctx)
	return ok, err
}
