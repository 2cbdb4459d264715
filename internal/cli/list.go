package cli

import (
	"github.com/spf13/cobra"

	"github.com/pkratoch-git-workshop/git-tasks/internal/actions"
	"github.com/pkratoch-git-workshop/git-tasks/internal/runtime"
)

// newListCmd creates the list command
func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all tasks with your progress",
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			return actions.ListAction(ctx)
		},
	}

	return cmd
}
