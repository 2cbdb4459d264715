package actions

import (
	"context"

	"github.com/pkratoch-git-workshop/git-tasks/internal/identity"
	"github.com/pkratoch-git-workshop/git-tasks/internal/runtime"
	"github.com/pkratoch-git-workshop/git-tasks/internal/tui/style"
)

// UserOptions contains options for the user command
type UserOptions struct {
	// Name is the committer name to switch to; empty means unset
	Name string
}

// UserAction switches the repository-local committer identity. With a name
// it sets user.name and a derived user.email; without one it unsets both.
// Both paths succeed; unsetting an absent identity is not an error.
func UserAction(ctx *runtime.Context, opts UserOptions) error {
	gctx := context.Background()
	runner := ctx.Env.Runner

	if opts.Name == "" {
		if err := identity.Unset(gctx, runner); err != nil {
			return err
		}
		ctx.Splog.Info("Local identity unset; commits use your global git config again")
		return nil
	}

	if err := identity.Set(gctx, runner, opts.Name); err != nil {
		return err
	}
	ctx.Splog.Info("Committing as %s %s", opts.Name, style.Dim("<"+identity.EmailFor(opts.Name)+">"))
	return nil
}
