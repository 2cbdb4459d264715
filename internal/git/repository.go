package git

import (
	"fmt"
	"path/filepath"
	"sync"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// goGitMu synchronizes go-git operations to prevent concurrent packfile access
var goGitMu sync.Mutex

// maxWalkCommits bounds history walks; workshop repositories are tiny,
// anything past this is a runaway walk on the host repository.
const maxWalkCommits = 10000

// Repository wraps a go-git repository for read-side inspection
type Repository struct {
	*gogit.Repository
	path string
}

// OpenRepository opens a git repository at the given path
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return &Repository{
		Repository: repo,
		path:       absPath,
	}, nil
}

// Root returns the root directory of the repository
func (r *Repository) Root() string {
	return r.path
}

// GetBranchNames returns all local branch names
func (r *Repository) GetBranchNames() ([]string, error) {
	branches, err := r.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var names []string
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().IsBranch() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	return names, nil
}

// BranchExists reports whether a local branch exists
func (r *Repository) BranchExists(branchName string) (bool, error) {
	goGitMu.Lock()
	defer goGitMu.Unlock()

	_, err := r.Reference(plumbing.NewBranchReferenceName(branchName), true)
	if err == plumbing.ErrReferenceNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up branch %s: %w", branchName, err)
	}
	return true, nil
}

// GetCurrentBranch returns the current branch name
func (r *Repository) GetCurrentBranch() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is not on a branch")
	}

	return head.Name().Short(), nil
}

// GetRevision returns the SHA a ref resolves to
func (r *Repository) GetRevision(ref string) (string, error) {
	hash, err := r.resolveRefHash(ref)
	if err != nil {
		return "", err
	}
	return hash.String(), nil
}

// CommitSubject returns the subject (first message line) of the commit a ref resolves to
func (r *Repository) CommitSubject(ref string) (string, error) {
	commit, err := r.commitAt(ref)
	if err != nil {
		return "", err
	}
	return messageSubject(commit.Message), nil
}

// FileContentAt returns the content of a file in the tree of the given ref.
// Returns os-agnostic not-found via the second return value.
func (r *Repository) FileContentAt(ref, path string) (string, bool, error) {
	commit, err := r.commitAt(ref)
	if err != nil {
		return "", false, err
	}

	goGitMu.Lock()
	defer goGitMu.Unlock()

	file, err := commit.File(path)
	if err == object.ErrFileNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s at %s: %w", path, ref, err)
	}

	content, err := file.Contents()
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s at %s: %w", path, ref, err)
	}
	return content, true, nil
}

// IsAncestor checks if the first ref is an ancestor of the second ref
func (r *Repository) IsAncestor(ancestor, descendant string) (bool, error) {
	ancestorCommit, err := r.commitAt(ancestor)
	if err != nil {
		return false, err
	}
	descendantCommit, err := r.commitAt(descendant)
	if err != nil {
		return false, err
	}

	if ancestorCommit.Hash == descendantCommit.Hash {
		return true, nil
	}

	goGitMu.Lock()
	defer goGitMu.Unlock()
	return ancestorCommit.IsAncestor(descendantCommit)
}

// MergeBase returns the merge base between two refs
func (r *Repository) MergeBase(ref1, ref2 string) (string, error) {
	commit1, err := r.commitAt(ref1)
	if err != nil {
		return "", err
	}
	commit2, err := r.commitAt(ref2)
	if err != nil {
		return "", err
	}

	goGitMu.Lock()
	defer goGitMu.Unlock()

	mergeBases, err := commit1.MergeBase(commit2)
	if err != nil {
		return "", fmt.Errorf("failed to find merge base: %w", err)
	}
	if len(mergeBases) == 0 {
		return "", fmt.Errorf("no merge base between %s and %s", ref1, ref2)
	}
	return mergeBases[0].Hash.String(), nil
}

// CommitsBetween returns the commits reachable from head but not from base,
// newest first. A zero base walks the full history of head.
func (r *Repository) CommitsBetween(base, head string) ([]*object.Commit, error) {
	headCommit, err := r.commitAt(head)
	if err != nil {
		return nil, err
	}

	var baseHash plumbing.Hash
	if base != "" {
		baseHash, err = r.resolveRefHash(base)
		if err != nil {
			return nil, err
		}
	}

	goGitMu.Lock()
	defer goGitMu.Unlock()

	// Everything reachable from base is excluded, matching base..head
	seen := map[plumbing.Hash]bool{}
	if !baseHash.IsZero() {
		baseCommit, err := r.CommitObject(baseHash)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve base commit: %w", err)
		}
		baseIter := object.NewCommitPreorderIter(baseCommit, nil, nil)
		err = baseIter.ForEach(func(c *object.Commit) error {
			if len(seen) >= maxWalkCommits {
				return storer.ErrStop
			}
			seen[c.Hash] = true
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk base commits: %w", err)
		}
	}

	iter := object.NewCommitPreorderIter(headCommit, seen, nil)
	var commits []*object.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if len(commits) >= maxWalkCommits {
			return storer.ErrStop
		}
		commits = append(commits, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk commits: %w", err)
	}
	return commits, nil
}

// CountCommits returns the number of commits reachable from head but not from base
func (r *Repository) CountCommits(base, head string) (int, error) {
	commits, err := r.CommitsBetween(base, head)
	if err != nil {
		return 0, err
	}
	return len(commits), nil
}

// HasMergeCommits reports whether the base..head range contains a merge commit
func (r *Repository) HasMergeCommits(base, head string) (bool, error) {
	commits, err := r.CommitsBetween(base, head)
	if err != nil {
		return false, err
	}
	for _, c := range commits {
		if c.NumParents() > 1 {
			return true, nil
		}
	}
	return false, nil
}

// commitAt resolves a ref and returns its commit object
func (r *Repository) commitAt(ref string) (*object.Commit, error) {
	hash, err := r.resolveRefHash(ref)
	if err != nil {
		return nil, err
	}

	goGitMu.Lock()
	defer goGitMu.Unlock()

	commit, err := r.CommitObject(hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get commit for %s: %w", ref, err)
	}
	return commit, nil
}

// resolveRefHash resolves a ref (branch name, SHA, or ref path) to a hash
func (r *Repository) resolveRefHash(ref string) (plumbing.Hash, error) {
	goGitMu.Lock()
	defer goGitMu.Unlock()

	// 1. Try as a full reference name
	if ref2, err := r.Reference(plumbing.ReferenceName(ref), true); err == nil {
		return ref2.Hash(), nil
	}

	// 2. Try as a local branch
	if ref2, err := r.Reference(plumbing.ReferenceName("refs/heads/"+ref), true); err == nil {
		return ref2.Hash(), nil
	}

	// 3. Try as a tag
	if ref2, err := r.Reference(plumbing.ReferenceName("refs/tags/"+ref), true); err == nil {
		return ref2.Hash(), nil
	}

	// 4. Try ResolveRevision (handles SHAs, short SHAs, and expressions like HEAD~1)
	hash, err := r.ResolveRevision(plumbing.Revision(ref))
	if err == nil {
		return *hash, nil
	}

	return plumbing.ZeroHash, fmt.Errorf("failed to resolve ref %s: reference not found", ref)
}

// messageSubject returns the first line of a commit message
func messageSubject(message string) string {
	for i := 0; i < len(message); i++ {
		if message[i] == '\n' {
			return message[:i]
		}
	}
	return message
}
