package cli

import (
	"github.com/spf13/cobra"

	"github.com/pkratoch-git-workshop/git-tasks/internal/actions"
	"github.com/pkratoch-git-workshop/git-tasks/internal/runtime"
)

// newStartCmd creates the start command
func newStartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "start [task]",
		Aliases: []string{"s"},
		Short:   "Start a task: prepare its branch and print the instructions",
		Long: `Start a task. If no task is provided, opens an interactive selector.

Starting a task creates its working branch (<task>-task) from the current
commit, seeds any fixture branches the exercise needs, and prints what to do.
Starting an already started task re-enters its branch without reseeding.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			taskName, err := resolveTaskName(args)
			if err != nil {
				return err
			}

			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			return actions.StartAction(ctx, actions.StartOptions{TaskName: taskName})
		},
	}

	return cmd
}
