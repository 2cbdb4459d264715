package task

import (
	taskerrors "github.com/pkratoch-git-workshop/git-tasks/internal/errors"
)

// catalog is the fixed task list, in recommended learning order
var catalog = []*Task{
	firstCommitTask(),
	amendTask(),
	branchingTask(),
	mergingTask(),
	conflictTask(),
	cherryPickTask(),
	rebasingTask(),
	changeMessageTask(),
	revertTask(),
}

// All returns the catalog in learning order
func All() []*Task {
	return catalog
}

// Names returns all task names in learning order
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, t := range catalog {
		names = append(names, t.Name)
	}
	return names
}

// Lookup finds a task by name
func Lookup(name string) (*Task, error) {
	for _, t := range catalog {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, taskerrors.NewUnknownTaskError(name, Names())
}
