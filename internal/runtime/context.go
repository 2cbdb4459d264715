// Package runtime provides the execution context for git-tasks commands.
//
// It encapsulates the shared dependencies actions need: the git runner and
// repository bound to the repo root, the progress store, and the logger.
package runtime

import (
	"os"
	"path/filepath"

	"github.com/pkratoch-git-workshop/git-tasks/internal/git"
	"github.com/pkratoch-git-workshop/git-tasks/internal/progress"
	"github.com/pkratoch-git-workshop/git-tasks/internal/task"
	"github.com/pkratoch-git-workshop/git-tasks/internal/tui"
)

// Context provides access to the repository and output for commands
type Context struct {
	Env      *task.Env
	Store    *progress.Store
	Splog    *tui.Splog
	RepoRoot string
}

// NewContext creates a context bound to the repository at repoRoot
func NewContext(repoRoot string) (*Context, error) {
	env, err := task.NewEnv(repoRoot)
	if err != nil {
		return nil, err
	}

	return &Context{
		Env:      env,
		Store:    progress.NewStore(repoRoot),
		Splog:    newSplog(repoRoot),
		RepoRoot: repoRoot,
	}, nil
}

// GetContext creates a context from the current working directory.
// It fails with ErrNotInRepo when run outside a git repository.
func GetContext() (*Context, error) {
	repoRoot, err := git.GetRepoRoot()
	if err != nil {
		return nil, err
	}
	return NewContext(repoRoot)
}

// newSplog builds the logger, adding a rotating file sink under .git when
// debug logging is requested.
func newSplog(repoRoot string) *tui.Splog {
	if os.Getenv("GIT_TASKS_LOG_FILE") == "" && os.Getenv("DEBUG") == "" {
		return tui.NewSplog()
	}

	logPath := os.Getenv("GIT_TASKS_LOG_FILE")
	if logPath == "" {
		logPath = filepath.Join(repoRoot, ".git", "git_tasks.log")
	}

	splog, err := tui.NewSplogWithLogFile(logPath)
	if err != nil {
		return tui.NewSplog()
	}
	return splog
}
