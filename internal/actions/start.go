// Package actions implements the command bodies behind the CLI layer.
package actions

import (
	"context"
	"fmt"

	"github.com/pkratoch-git-workshop/git-tasks/internal/runtime"
	"github.com/pkratoch-git-workshop/git-tasks/internal/task"
	"github.com/pkratoch-git-workshop/git-tasks/internal/tui/style"
)

// StartOptions contains options for the start command
type StartOptions struct {
	TaskName string
}

// StartAction prepares a task: it creates or re-enters the task branch,
// seeds the fixture state, and prints the instructions.
func StartAction(ctx *runtime.Context, opts StartOptions) error {
	t, err := task.Lookup(opts.TaskName)
	if err != nil {
		return err
	}

	gctx := context.Background()
	env := ctx.Env

	clean, err := env.WorktreeClean(gctx)
	if err != nil {
		return err
	}
	if !clean {
		if staged, err := env.Runner.HasStagedChanges(gctx); err == nil && staged {
			return fmt.Errorf("your staging area holds uncommitted changes; commit or stash them before starting a task")
		}
		if unstaged, err := env.Runner.HasUnstagedChanges(gctx); err == nil && unstaged {
			return fmt.Errorf("your working tree has uncommitted changes; commit or stash them before starting a task")
		}
		return fmt.Errorf("a merge is in progress; conclude or abort it before starting a task")
	}

	exists, err := env.BranchExists(t.Branch())
	if err != nil {
		return err
	}

	if exists {
		if err := env.Runner.CheckoutBranch(gctx, t.Branch()); err != nil {
			return err
		}
		ctx.Splog.Info("Resuming task %s on branch %s", style.Code(t.Name), style.ColorBranchName(t.Branch(), true))
	} else {
		startPoint, err := env.Repo.GetRevision("HEAD")
		if err != nil {
			return fmt.Errorf("this repository has no commits yet; create an initial commit first: %w", err)
		}

		if err := env.Runner.CreateAndCheckoutBranchAt(gctx, t.Branch(), startPoint); err != nil {
			return err
		}

		if t.Seed != nil {
			if err := t.Seed(gctx, env, startPoint); err != nil {
				return fmt.Errorf("failed to seed task %s: %w", t.Name, err)
			}
		}

		base, err := env.Repo.GetRevision(t.Branch())
		if err != nil {
			return err
		}
		if err := ctx.Store.MarkStarted(t.Name, base); err != nil {
			return err
		}

		ctx.Splog.Info("Started task %s on branch %s", style.Code(t.Name), style.ColorBranchName(t.Branch(), true))
	}

	ctx.Splog.Newline()
	ctx.Splog.Info("%s", style.Title(t.Title))
	for _, line := range t.Instructions {
		ctx.Splog.Info("  %s", line)
	}
	ctx.Splog.Newline()
	ctx.Splog.Tip("When you are done, run: git-tasks check %s", t.Name)

	return nil
}
