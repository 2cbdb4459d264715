// Package cheatsheet holds the Git command references shipped with the
// workshop and renders them for the terminal.
package cheatsheet

import (
	taskerrors "github.com/pkratoch-git-workshop/git-tasks/internal/errors"
)

// Command is one command/description row in a cheatsheet table
type Command struct {
	Cmd  string
	Desc string
}

// Section is one heading of a topic: optional prose followed by a command table
type Section struct {
	Heading  string
	Prose    []string
	Commands []Command
}

// Topic is one browsable cheatsheet
type Topic struct {
	Name     string
	Title    string
	Intro    []string
	Sections []Section
}

// topics is the fixed topic list, in browsing order
var topics = []*Topic{
	basicsTopic,
	commitsTopic,
	branchesTopic,
	mergingTopic,
	undoingTopic,
	remotesTopic,
	glossaryTopic,
}

// All returns the topics in browsing order
func All() []*Topic {
	return topics
}

// Names returns all topic names in browsing order
func Names() []string {
	names := make([]string, 0, len(topics))
	for _, t := range topics {
		names = append(names, t.Name)
	}
	return names
}

// Lookup finds a topic by name
func Lookup(name string) (*Topic, error) {
	for _, t := range topics {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, taskerrors.NewUnknownTopicError(name, Names())
}

var basicsTopic = &Topic{
	Name:  "basics",
	Title: "Getting oriented",
	Intro: []string{
		"Commands for creating a repository and understanding what state it is in.",
	},
	Sections: []Section{
		{
			Heading: "Setting up",
			Commands: []Command{
				{"git init", "create an empty repository in the current directory"},
				{"git clone <url>", "copy an existing repository, history included"},
				{"git config user.name \"<name>\"", "set the committer name for this repository"},
			},
		},
		{
			Heading: "Looking around",
			Prose: []string{
				"git status is the command you will run most. It never changes anything.",
			},
			Commands: []Command{
				{"git status", "what is modified, staged, or untracked"},
				{"git log", "the commit history of the current branch"},
				{"git log --oneline --graph", "history as a compact graph"},
				{"git show <commit>", "what one commit changed"},
				{"git diff", "unstaged changes against the staging area"},
				{"git diff --staged", "staged changes against the last commit"},
			},
		},
	},
}

var commitsTopic = &Topic{
	Name:  "commits",
	Title: "Recording changes",
	Intro: []string{
		"A commit records the staging area, not the working directory.",
		"Stage exactly what you want, then commit it.",
	},
	Sections: []Section{
		{
			Heading: "Staging",
			Commands: []Command{
				{"git add <file>", "stage one file for the next commit"},
				{"git add -p", "stage interactively, hunk by hunk"},
				{"git restore --staged <file>", "unstage a file, keep the edits"},
			},
		},
		{
			Heading: "Committing",
			Commands: []Command{
				{"git commit -m \"<msg>\"", "record the staged changes"},
				{"git commit --amend", "replace the last commit with a corrected one"},
				{"git commit --amend -m \"<msg>\"", "amend and rewrite the message in one go"},
			},
		},
	},
}

var branchesTopic = &Topic{
	Name:  "branches",
	Title: "Branching",
	Intro: []string{
		"A branch is a movable pointer to a commit; creating one is free.",
	},
	Sections: []Section{
		{
			Heading: "Creating and switching",
			Commands: []Command{
				{"git branch", "list local branches"},
				{"git switch <branch>", "switch to an existing branch"},
				{"git switch -c <branch>", "create a branch and switch to it"},
				{"git checkout -b <branch>", "the older spelling of switch -c"},
				{"git branch -d <branch>", "delete a merged branch"},
				{"git branch -D <branch>", "delete a branch, merged or not"},
			},
		},
	},
}

var mergingTopic = &Topic{
	Name:  "merging",
	Title: "Merging and rebasing",
	Intro: []string{
		"Merging joins two histories; rebasing replays one on top of the other.",
	},
	Sections: []Section{
		{
			Heading: "Merging",
			Commands: []Command{
				{"git merge <branch>", "merge a branch into the current one"},
				{"git merge --abort", "give up on a conflicted merge"},
			},
		},
		{
			Heading: "Conflicts",
			Prose: []string{
				"A conflict pauses the merge. Edit the files, remove the",
				"<<<<<<< / ======= / >>>>>>> markers, then stage and commit.",
			},
			Commands: []Command{
				{"git status", "list the conflicted files"},
				{"git add <file>", "mark a conflict as resolved"},
				{"git commit", "conclude the merge"},
			},
		},
		{
			Heading: "Rebasing",
			Commands: []Command{
				{"git rebase <branch>", "replay the current branch onto another"},
				{"git rebase --continue", "resume after resolving a conflict"},
				{"git rebase --abort", "give up and restore the original branch"},
				{"git cherry-pick <commit>", "copy one commit onto the current branch"},
			},
		},
	},
}

var undoingTopic = &Topic{
	Name:  "undoing",
	Title: "Undoing things",
	Intro: []string{
		"Prefer commands that add history (revert) over commands that",
		"rewrite it (reset) once work has been shared.",
	},
	Sections: []Section{
		{
			Heading: "Working directory",
			Commands: []Command{
				{"git restore <file>", "discard unstaged edits to a file"},
				{"git clean -fd", "delete untracked files and directories"},
			},
		},
		{
			Heading: "History",
			Commands: []Command{
				{"git revert <commit>", "add a commit that undoes another"},
				{"git reset --soft HEAD~1", "drop the last commit, keep its changes staged"},
				{"git reset --hard HEAD~1", "drop the last commit and its changes"},
				{"git reflog", "where HEAD has been; the escape hatch"},
			},
		},
	},
}

var remotesTopic = &Topic{
	Name:  "remotes",
	Title: "Working with remotes",
	Sections: []Section{
		{
			Heading: "Syncing",
			Commands: []Command{
				{"git remote -v", "list configured remotes"},
				{"git fetch", "download remote history without touching your branches"},
				{"git pull", "fetch and integrate the current branch"},
				{"git push", "upload the current branch"},
				{"git push -u origin <branch>", "push a new branch and track it"},
			},
		},
	},
}

var glossaryTopic = &Topic{
	Name:  "glossary",
	Title: "Glossary",
	Sections: []Section{
		{
			Heading: "The three areas",
			Commands: []Command{
				{"working directory", "the checked-out files a user edits"},
				{"staging area", "the index of changes marked for the next commit"},
				{"repository", "the committed history store"},
			},
		},
	},
}
