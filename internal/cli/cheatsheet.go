package cli

import (
	"github.com/spf13/cobra"

	"github.com/pkratoch-git-workshop/git-tasks/internal/actions"
	"github.com/pkratoch-git-workshop/git-tasks/internal/tui"
)

// newCheatsheetCmd creates the cheatsheet command
func newCheatsheetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cheatsheet [topic]",
		Aliases: []string{"cs"},
		Short:   "Show a Git cheatsheet, or list the available topics",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			topic := ""
			if len(args) > 0 {
				topic = args[0]
			}

			// Cheatsheets work outside a git repository
			return actions.CheatsheetAction(actions.CheatsheetOptions{
				Topic: topic,
				Splog: tui.NewSplog(),
			})
		},
	}

	return cmd
}
