package cli

import (
	"github.com/spf13/cobra"

	"github.com/pkratoch-git-workshop/git-tasks/internal/actions"
	"github.com/pkratoch-git-workshop/git-tasks/internal/runtime"
)

// newResetCmd creates the reset command
func newResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset <task>",
		Short: "Delete a task's branches and forget its progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			return actions.ResetAction(ctx, actions.ResetOptions{
				TaskName: args[0],
				Force:    force,
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}
