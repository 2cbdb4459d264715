package actions

import (
	"github.com/pkratoch-git-workshop/git-tasks/internal/cheatsheet"
	"github.com/pkratoch-git-workshop/git-tasks/internal/tui"
)

// CheatsheetOptions contains options for the cheatsheet command.
// Unlike the task actions this carries its own logger: cheatsheets are
// available outside a git repository.
type CheatsheetOptions struct {
	// Topic is the cheatsheet to show; empty lists the topics
	Topic string
	Splog *tui.Splog
}

// CheatsheetAction renders a cheatsheet topic, or the topic index
func CheatsheetAction(opts CheatsheetOptions) error {
	if opts.Topic == "" {
		opts.Splog.Page(cheatsheet.RenderIndex())
		return nil
	}

	topic, err := cheatsheet.Lookup(opts.Topic)
	if err != nil {
		return err
	}

	opts.Splog.Page(cheatsheet.Render(topic))
	return nil
}
