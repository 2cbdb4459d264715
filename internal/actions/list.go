package actions

import (
	"github.com/pkratoch-git-workshop/git-tasks/internal/progress"
	"github.com/pkratoch-git-workshop/git-tasks/internal/runtime"
	"github.com/pkratoch-git-workshop/git-tasks/internal/task"
	"github.com/pkratoch-git-workshop/git-tasks/internal/tui/style"
)

// ListAction prints the task catalog with recorded progress
func ListAction(ctx *runtime.Context) error {
	record, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	ctx.Splog.Info("%s", style.Title("Workshop tasks"))
	ctx.Splog.Newline()

	done := 0
	for _, t := range task.All() {
		status := ""
		if p, ok := record[t.Name]; ok {
			status = p.Status
		}
		if status == progress.StatusDone {
			done++
		}
		ctx.Splog.Info("%s %-14s %s", style.StatusGlyph(status), t.Name, style.Dim(t.Summary))
	}

	ctx.Splog.Newline()
	ctx.Splog.Info("%d of %d tasks done", done, len(task.All()))
	if done < len(task.All()) {
		ctx.Splog.Tip("Start one with: git-tasks start <task>")
	}

	return nil
}
