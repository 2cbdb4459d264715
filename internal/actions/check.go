package actions

import (
	"context"
	"fmt"

	taskerrors "github.com/pkratoch-git-workshop/git-tasks/internal/errors"
	"github.com/pkratoch-git-workshop/git-tasks/internal/runtime"
	"github.com/pkratoch-git-workshop/git-tasks/internal/task"
	"github.com/pkratoch-git-workshop/git-tasks/internal/tui/style"
)

// CheckOptions contains options for the check command
type CheckOptions struct {
	TaskName string
}

// CheckAction grades a task: every requirement is evaluated and reported,
// and full success is recorded in the progress store.
func CheckAction(ctx *runtime.Context, opts CheckOptions) error {
	t, err := task.Lookup(opts.TaskName)
	if err != nil {
		return err
	}

	record, ok, err := ctx.Store.Get(t.Name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: start it first with: git-tasks start %s", taskerrors.ErrTaskNotStarted, t.Name)
	}

	env := ctx.Env
	env.Base = record.BaseRevision

	gctx := context.Background()
	ctx.Splog.Info("Checking task %s", style.Code(t.Name))
	ctx.Splog.Newline()

	failed := 0
	for _, req := range t.Requirements {
		passed, err := req.Check(gctx, env)
		if err != nil {
			return fmt.Errorf("failed to evaluate %q: %w", req.Description, err)
		}
		if passed {
			ctx.Splog.Info("%s", style.Pass(req.Description))
		} else {
			failed++
			ctx.Splog.Info("%s", style.Fail(req.Description))
			ctx.Splog.Info("  %s", style.Dim(req.Hint))
		}
	}

	ctx.Splog.Newline()
	if failed > 0 {
		ctx.Splog.Info("%d of %d requirements still open. Keep going!", failed, len(t.Requirements))
		return fmt.Errorf("task %s is not complete yet", t.Name)
	}

	if err := ctx.Store.MarkDone(t.Name); err != nil {
		return err
	}
	ctx.Splog.Info("Task %s complete! 🎉", style.Code(t.Name))

	if next := nextTask(t.Name); next != nil {
		ctx.Splog.Tip("Next up: git-tasks start %s", next.Name)
	}

	return nil
}

// nextTask returns the task after the named one in learning order, if any
func nextTask(name string) *task.Task {
	all := task.All()
	for i, t := range all {
		if t.Name == name && i+1 < len(all) {
			return all[i+1]
		}
	}
	return nil
}
