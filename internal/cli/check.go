package cli

import (
	"github.com/spf13/cobra"

	"github.com/pkratoch-git-workshop/git-tasks/internal/actions"
	"github.com/pkratoch-git-workshop/git-tasks/internal/runtime"
)

// newCheckCmd creates the check command
func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check [task]",
		Aliases: []string{"c"},
		Short:   "Grade a task against the repository state",
		Long: `Grade a task. If no task is provided, opens an interactive selector.

Every requirement of the task is checked and reported. When all of them
pass, the task is recorded as done. Exits non-zero while requirements
remain open.`,
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

			return actions.CheckAction(ctx, actions.CheckOptions{TaskName: taskName})
		},
	}

	return cmd
}
