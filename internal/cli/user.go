package cli

import (
	"github.com/spf13/cobra"

	"github.com/pkratoch-git-workshop/git-tasks/internal/actions"
	"github.com/pkratoch-git-workshop/git-tasks/internal/runtime"
)

// newUserCmd creates the user command
func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user [name]",
		Short: "Switch the repository-local committer identity",
		Long: `Switch the repository-local committer identity.

With exactly one name, sets user.name to it and user.email to a derived
address, so a workshop host can demonstrate commits from different authors.
Any other number of arguments unsets both and commits fall back to your
global git config. Both forms succeed; unsetting an identity that is not
set is fine.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			// Anything other than exactly one name means unset
			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			return actions.UserAction(ctx, actions.UserOptions{Name: name})
		},
	}

	return cmd
}
