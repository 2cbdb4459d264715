package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/pkratoch-git-workshop/git-tasks/internal/task"
	"github.com/pkratoch-git-workshop/git-tasks/internal/tui"
)

// resolveTaskName returns the task name from args, falling back to an
// interactive selector when run from a terminal.
func resolveTaskName(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if !tui.IsTTY() {
		return "", fmt.Errorf("task name required; valid tasks: %v", task.Names())
	}

	options := make([]string, 0, len(task.All()))
	for _, t := range task.All() {
		options = append(options, t.Name)
	}

	var selected string
	prompt := &survey.Select{
		Message: "Choose a task",
		Options: options,
		Description: func(value string, _ int) string {
			if t, err := task.Lookup(value); err == nil {
				return t.Summary
			}
			return ""
		},
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", fmt.Errorf("canceled")
	}

	return selected, nil
}
