package actions

import (
	"context"
	"fmt"

	"github.com/pkratoch-git-workshop/git-tasks/internal/runtime"
	"github.com/pkratoch-git-workshop/git-tasks/internal/task"
	"github.com/pkratoch-git-workshop/git-tasks/internal/tui"
	"github.com/pkratoch-git-workshop/git-tasks/internal/tui/style"
)

// ResetOptions contains options for the reset command
type ResetOptions struct {
	TaskName string
	Force    bool
}

// ResetAction deletes a task's branches and clears its recorded progress,
// so the task can be started from scratch.
func ResetAction(ctx *runtime.Context, opts ResetOptions) error {
	t, err := task.Lookup(opts.TaskName)
	if err != nil {
		return err
	}

	if !opts.Force {
		confirmed, err := tui.PromptConfirm(fmt.Sprintf("Delete the branches of task %s and forget its progress?", t.Name), false)
		if err != nil {
			return err
		}
		if !confirmed {
			ctx.Splog.Info("Reset canceled")
			return nil
		}
	}

	env := ctx.Env
	gctx := context.Background()

	// Step off any branch we are about to delete
	current, err := env.Repo.GetCurrentBranch()
	if err == nil {
		for _, branch := range t.Branches() {
			if current == branch {
				if _, err := env.Runner.Run(gctx, "checkout", "--detach", "HEAD"); err != nil {
					return err
				}
				break
			}
		}
	}

	deleted := 0
	for _, branch := range t.Branches() {
		exists, err := env.BranchExists(branch)
		if err != nil {
			return err
		}
		if !exists {
			continue
		}
		if err := env.Runner.DeleteBranch(gctx, branch); err != nil {
			return err
		}
		deleted++
		ctx.Splog.Debug("deleted branch %s", branch)
	}

	if err := ctx.Store.Clear(t.Name); err != nil {
		return err
	}

	ctx.Splog.Info("Task %s reset (%d branches deleted)", style.Code(t.Name), deleted)
	ctx.Splog.Tip("Start over with: git-tasks start %s", t.Name)
	return nil
}
