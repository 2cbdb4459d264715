// Package testhelpers provides testing utilities for git-tasks: a fixture
// Git repository, a scene wrapper, and custom assertions.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitRepo represents a Git repository created for one test.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new Git repository in the specified directory.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	// Avoid the global config so host settings never leak into tests
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "-c", "core.fileMode=false", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	// Configure Git user (required for commits)
	if err := repo.RunGitCommand("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.RunGitCommand("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}

	return repo, nil
}

// RunGitCommand executes a git command in the repository directory.
func (r *GitRepo) RunGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if os.Getenv("DEBUG") == "" {
		cmd.Stdout = nil
		cmd.Stderr = nil
	}
	return cmd.Run()
}

// RunGitCommandAndGetOutput executes a git command and returns its trimmed output.
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git command failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// WriteFile writes a file relative to the repository root.
func (r *GitRepo) WriteFile(relPath, content string) error {
	path := filepath.Join(r.Dir, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// CommitFile writes a file and commits it with the given message.
func (r *GitRepo) CommitFile(relPath, content, message string) error {
	if err := r.WriteFile(relPath, content); err != nil {
		return err
	}
	if err := r.RunGitCommand("add", "-A"); err != nil {
		return err
	}
	return r.RunGitCommand("commit", "-m", message)
}

// CreateInitialCommit records a first commit so branches can be created.
func (r *GitRepo) CreateInitialCommit() error {
	return r.CommitFile("README.md", "workshop sandbox\n", "Initial commit")
}

// CreateAndCheckoutBranch creates and checks out a new branch.
func (r *GitRepo) CreateAndCheckoutBranch(name string) error {
	return r.RunGitCommand("checkout", "-b", name)
}

// CheckoutBranch checks out a branch.
func (r *GitRepo) CheckoutBranch(name string) error {
	return r.RunGitCommand("checkout", name)
}

// DeleteBranch deletes a branch.
func (r *GitRepo) DeleteBranch(name string) error {
	return r.RunGitCommand("branch", "-D", name)
}

// CurrentBranch returns the checked out branch name.
func (r *GitRepo) CurrentBranch() (string, error) {
	return r.RunGitCommandAndGetOutput("rev-parse", "--abbrev-ref", "HEAD")
}

// Revision resolves a ref to a SHA.
func (r *GitRepo) Revision(ref string) (string, error) {
	return r.RunGitCommandAndGetOutput("rev-parse", ref)
}
