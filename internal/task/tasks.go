package task

import (
	"context"
)

func firstCommitTask() *Task {
	t := &Task{
		Name:    "first-commit",
		Title:   "Your first commit",
		Summary: "Create a file, stage it, and record your first commit.",
		Instructions: []string{
			"Create a file named hello.txt containing the line: Hello, Git!",
			"Stage it with: git add hello.txt",
			"Commit it with: git commit -m \"<your message>\"",
		},
	}
	t.Requirements = []Requirement{
		onTaskBranch(t),
		{
			Description: "hello.txt is committed with the expected content",
			Hint:        "the committed hello.txt must contain the line: Hello, Git!",
			Check: func(_ context.Context, env *Env) (bool, error) {
				return env.FileAtRefContains("HEAD", "hello.txt", "Hello, Git!")
			},
		},
		{
			Description: "exactly one new commit was made",
			Hint:        "stage hello.txt and commit it once; use git log to review your history",
			Check: func(_ context.Context, env *Env) (bool, error) {
				n, err := env.CommitsSinceBase("HEAD")
				return n == 1, err
			},
		},
		cleanWorktree("commit your changes; git status should report a clean working tree"),
	}
	return t
}

func amendTask() *Task {
	t := &Task{
		Name:    "amend",
		Title:   "Fixing the last commit",
		Summary: "Repair a typo in the last commit message with --amend.",
		Instructions: []string{
			"The last commit on this branch has a typo in its message.",
			"Fix the subject to exactly: Add notes file",
			"Use: git commit --amend -m \"Add notes file\"",
		},
		Seed: func(ctx context.Context, env *Env, _ string) error {
			if err := env.WriteFile("notes.txt", "remember to water the plants\n"); err != nil {
				return err
			}
			return env.Runner.CommitAll(ctx, "Add notse file")
		},
	}
	t.Requirements = []Requirement{
		onTaskBranch(t),
		{
			Description: "the last commit subject is \"Add notes file\"",
			Hint:        "use git commit --amend -m \"Add notes file\"",
			Check: func(_ context.Context, env *Env) (bool, error) {
				return env.HeadSubjectIs("Add notes file")
			},
		},
		{
			Description: "the commit was amended, not followed by a new one",
			Hint:        "amending replaces the last commit; the typo commit must disappear from git log",
			Check: func(_ context.Context, env *Env) (bool, error) {
				// The seeded typo commit must no longer be reachable
				stillThere, err := env.IsAncestor(env.Base, "HEAD")
				if err != nil || stillThere {
					return false, err
				}
				n, err := env.CommitsSinceBase("HEAD")
				return n == 1, err
			},
		},
		{
			Description: "notes.txt is still committed",
			Hint:        "the amended commit must still contain notes.txt",
			Check: func(_ context.Context, env *Env) (bool, error) {
				return env.FileAtRefExists("HEAD", "notes.txt")
			},
		},
		cleanWorktree("git status should report a clean working tree"),
	}
	return t
}

func branchingTask() *Task {
	t := &Task{
		Name:    "branching",
		Title:   "Working on a branch",
		Summary: "Create a feature branch and commit on it.",
		Instructions: []string{
			"Create a branch named feature off this branch and switch to it.",
			"On it, commit a file named feature.txt (any content).",
			"Try: git switch -c feature",
		},
	}
	t.Requirements = []Requirement{
		{
			Description: "a branch named feature exists",
			Hint:        "create it with git switch -c feature (or git checkout -b feature)",
			Check: func(_ context.Context, env *Env) (bool, error) {
				return env.BranchExists("feature")
			},
		},
		{
			Description: "feature builds on the task branch",
			Hint:        "feature must be created from " + t.Branch() + ", not from another branch",
			Check: func(_ context.Context, env *Env) (bool, error) {
				ok, err := env.BranchExists("feature")
				if err != nil || !ok {
					return false, err
				}
				return env.IsAncestor(env.Base, "feature")
			},
		},
		{
			Description: "feature.txt is committed on feature",
			Hint:        "commit a file named feature.txt on the feature branch",
			Check: func(_ context.Context, env *Env) (bool, error) {
				ok, err := env.BranchExists("feature")
				if err != nil || !ok {
					return false, err
				}
				return env.FileAtRefExists("feature", "feature.txt")
			},
		},
		{
			Description: "feature has at least one commit of its own",
			Hint:        "make a commit on feature; git log feature should show it ahead of " + t.Branch(),
			Check: func(_ context.Context, env *Env) (bool, error) {
				ok, err := env.BranchExists("feature")
				if err != nil || !ok {
					return false, err
				}
				n, err := env.CommitsSinceBase("feature")
				return n >= 1, err
			},
		},
	}
	return t
}

func mergingTask() *Task {
	t := &Task{
		Name:    "merging",
		Title:   "Merging a branch",
		Summary: "Bring a finished feature branch back with git merge.",
		Instructions: []string{
			"A branch named merging-feature contains a finished recipe.",
			"Merge it into this branch: git merge merging-feature",
		},
		FixtureRoles: []string{"feature"},
		Seed: func(ctx context.Context, env *Env, startPoint string) error {
			feature := "merging-feature"
			if err := env.Runner.CreateAndCheckoutBranchAt(ctx, feature, startPoint); err != nil {
				return err
			}
			if err := env.WriteFile("recipe.txt", "soup: water, salt, patience\n"); err != nil {
				return err
			}
			if err := env.Runner.CommitAll(ctx, "Add soup recipe"); err != nil {
				return err
			}
			// Diverge the task branch so the merge is a real merge
			if err := env.Runner.CheckoutBranch(ctx, "merging-task"); err != nil {
				return err
			}
			if err := env.WriteFile("menu.txt", "monday: soup\n"); err != nil {
				return err
			}
			return env.Runner.CommitAll(ctx, "Plan the menu")
		},
	}
	t.Requirements = []Requirement{
		onTaskBranch(t),
		{
			Description: "merging-feature is merged into the task branch",
			Hint:        "run git merge merging-feature on " + t.Branch(),
			Check: func(_ context.Context, env *Env) (bool, error) {
				return env.IsAncestor("merging-feature", "HEAD")
			},
		},
		{
			Description: "the recipe arrived on the task branch",
			Hint:        "after the merge, recipe.txt must be present in the committed tree",
			Check: func(_ context.Context, env *Env) (bool, error) {
				return env.FileAtRefExists("HEAD", "recipe.txt")
			},
		},
		cleanWorktree("finish the merge; git status should report a clean working tree"),
	}
	return t
}

func conflictTask() *Task {
	t := &Task{
		Name:    "conflict",
		Title:   "Resolving a merge conflict",
		Summary: "Merge a branch that disagrees with yours, and keep both sides.",
		Instructions: []string{
			"This branch greets in Spanish; branch conflict-alt greets in Czech.",
			"Merge conflict-alt and resolve the conflict so greeting.txt keeps",
			"both greetings (Hola and Ahoj), one per line.",
			"Then conclude the merge: git add greeting.txt && git commit",
		},
		FixtureRoles: []string{"alt"},
		Seed: func(ctx context.Context, env *Env, _ string) error {
			// Shared ancestor commit
			if err := env.WriteFile("greeting.txt", "Hello\n"); err != nil {
				return err
			}
			if err := env.Runner.CommitAll(ctx, "Add greeting"); err != nil {
				return err
			}
			// Czech side
			alt := "conflict-alt"
			if err := env.Runner.CreateAndCheckoutBranchAt(ctx, alt, "HEAD"); err != nil {
				return err
			}
			if err := env.WriteFile("greeting.txt", "Ahoj\n"); err != nil {
				return err
			}
			if err := env.Runner.CommitAll(ctx, "Greet in Czech"); err != nil {
				return err
			}
			// Spanish side on the task branch
			if err := env.Runner.CheckoutBranch(ctx, "conflict-task"); err != nil {
				return err
			}
			if err := env.WriteFile("greeting.txt", "Hola\n"); err != nil {
				return err
			}
			return env.Runner.CommitAll(ctx, "Greet in Spanish")
		},
	}
	t.Requirements = []Requirement{
		onTaskBranch(t),
		{
			Description: "conflict-alt is merged into the task branch",
			Hint:        "run git merge conflict-alt and resolve the conflict it reports",
			Check: func(_ context.Context, env *Env) (bool, error) {
				return env.IsAncestor("conflict-alt", "HEAD")
			},
		},
		{
			Description: "greeting.txt keeps both greetings",
			Hint:        "edit greeting.txt so it contains both Hola and Ahoj before committing",
			Check: func(_ context.Context, env *Env) (bool, error) {
				return env.FileAtRefContains("HEAD", "greeting.txt", "Hola", "Ahoj")
			},
		},
		{
			Description: "no conflict markers were committed",
			Hint:        "remove the <<<<<<< / ======= / >>>>>>> lines while resolving",
			Check: func(_ context.Context, env *Env) (bool, error) {
				hasMarkers, err := env.FileAtRefContains("HEAD", "greeting.txt", "<<<<<<<")
				if err != nil {
					return false, err
				}
				return !hasMarkers, nil
			},
		},
		cleanWorktree("conclude the merge with git commit; git status should be clean"),
	}
	return t
}

func rebasingTask() *Task {
	t := &Task{
		Name:    "rebasing",
		Title:   "Rebasing onto a moved base",
		Summary: "Replay your commits on top of a branch that moved ahead.",
		Instructions: []string{
			"While you worked on topic.txt, branch rebasing-base moved ahead.",
			"Replay this branch on top of it: git rebase rebasing-base",
			"The history must stay linear; do not merge.",
		},
		FixtureRoles: []string{"base"},
		Seed: func(ctx context.Context, env *Env, startPoint string) error {
			// The base branch moves ahead by one commit
			base := "rebasing-base"
			if err := env.Runner.CreateAndCheckoutBranchAt(ctx, base, startPoint); err != nil {
				return err
			}
			if err := env.WriteFile("base.txt", "the ground moved\n"); err != nil {
				return err
			}
			if err := env.Runner.CommitAll(ctx, "Move the base ahead"); err != nil {
				return err
			}
			// The learner's topic work on the task branch
			if err := env.Runner.CheckoutBranch(ctx, "rebasing-task"); err != nil {
				return err
			}
			if err := env.WriteFile("topic.txt", "my topic work\n"); err != nil {
				return err
			}
			return env.Runner.CommitAll(ctx, "Start topic work")
		},
	}
	t.Requirements = []Requirement{
		onTaskBranch(t),
		{
			Description: "the task branch builds on rebasing-base",
			Hint:        "run git rebase rebasing-base on " + t.Branch(),
			Check: func(_ context.Context, env *Env) (bool, error) {
				return env.IsAncestor("rebasing-base", "HEAD")
			},
		},
		{
			Description: "the history is linear (no merge commits)",
			Hint:        "rebase instead of merging; git log --oneline --graph should show a straight line",
			Check: func(_ context.Context, env *Env) (bool, error) {
				hasMerges, err := env.Repo.HasMergeCommits("rebasing-base", "HEAD")
				return !hasMerges, err
			},
		},
		{
			Description: "the topic work survived the rebase",
			Hint:        "topic.txt must still be present in the committed tree",
			Check: func(_ context.Context, env *Env) (bool, error) {
				return env.FileAtRefExists("HEAD", "topic.txt")
			},
		},
		cleanWorktree("finish the rebase; git status should report a clean working tree"),
	}
	return t
}

func cherryPickTask() *Task {
	t := &Task{
		Name:    "cherry-pick",
		Title:   "Picking a single commit",
		Summary: "Copy one useful commit from another branch without merging it.",
		Instructions: []string{
			"Branch cherry-pick-source carries scratch notes and one useful fix.",
			"Find the commit titled \"Fix the counter\": git log --oneline cherry-pick-source",
			"Copy just that commit onto this branch: git cherry-pick <sha>",
		},
		FixtureRoles: []string{"source"},
		Seed: func(ctx context.Context, env *Env, startPoint string) error {
			source := "cherry-pick-source"
			if err := env.Runner.CreateAndCheckoutBranchAt(ctx, source, startPoint); err != nil {
				return err
			}
			if err := env.WriteFile("scratch.txt", "do not ship this\n"); err != nil {
				return err
			}
			if err := env.Runner.CommitAll(ctx, "Add scratch notes"); err != nil {
				return err
			}
			if err := env.WriteFile("counter.txt", "count from zero\n"); err != nil {
				return err
			}
			if err := env.Runner.CommitAll(ctx, "Fix the counter"); err != nil {
				return err
			}
			return env.Runner.CheckoutBranch(ctx, "cherry-pick-task")
		},
	}
	t.Requirements = []Requirement{
		onTaskBranch(t),
		{
			Description: "the fix arrived on the task branch",
			Hint:        "after the cherry-pick, counter.txt must be present in the committed tree",
			Check: func(_ context.Context, env *Env) (bool, error) {
				return env.FileAtRefExists("HEAD", "counter.txt")
			},
		},
		{
			Description: "the picked commit kept its subject",
			Hint:        "git cherry-pick preserves the message; the last commit must be \"Fix the counter\"",
			Check: func(_ context.Context, env *Env) (bool, error) {
				return env.HeadSubjectIs("Fix the counter")
			},
		},
		{
			Description: "only the fix was picked, not the whole branch",
			Hint:        "cherry-pick the single commit instead of merging; scratch.txt must stay off this branch",
			Check: func(_ context.Context, env *Env) (bool, error) {
				hasScratch, err := env.FileAtRefExists("HEAD", "scratch.txt")
				if err != nil {
					return false, err
				}
				return !hasScratch, nil
			},
		},
		{
			Description: "exactly one new commit was added",
			Hint:        "git log should show a single commit on top of where you started",
			Check: func(_ context.Context, env *Env) (bool, error) {
				n, err := env.CommitsSinceBase("HEAD")
				return n == 1, err
			},
		},
		cleanWorktree("finish the cherry-pick; git status should report a clean working tree"),
	}
	return t
}

func changeMessageTask() *Task {
	t := &Task{
		Name:    "change-message",
		Title:   "Rewording an earlier commit",
		Summary: "Fix a commit message deeper in history with an interactive rebase.",
		Instructions: []string{
			"The older of the two commits on this branch has a typo in its message.",
			"Fix its subject to exactly: Add changelog",
			"Use: git rebase -i HEAD~2, change pick to reword on the first line,",
			"and leave the newer commit alone.",
		},
		Seed: func(ctx context.Context, env *Env, _ string) error {
			if err := env.WriteFile("changelog.txt", "## unreleased\n"); err != nil {
				return err
			}
			if err := env.Runner.CommitAll(ctx, "Add chngelog"); err != nil {
				return err
			}
			if err := env.WriteFile("notes.txt", "release notes go here\n"); err != nil {
				return err
			}
			return env.Runner.CommitAll(ctx, "Add release notes")
		},
	}
	t.Requirements = []Requirement{
		onTaskBranch(t),
		{
			Description: "the older commit's subject is \"Add changelog\"",
			Hint:        "reword the older commit; its subject must be exactly: Add changelog",
			Check: func(_ context.Context, env *Env) (bool, error) {
				return env.SubjectAtIs("HEAD~1", "Add changelog")
			},
		},
		{
			Description: "the newer commit is untouched",
			Hint:        "only the older message changes; the last commit stays \"Add release notes\"",
			Check: func(_ context.Context, env *Env) (bool, error) {
				return env.HeadSubjectIs("Add release notes")
			},
		},
		{
			Description: "the typo commit disappeared from the log",
			Hint:        "rewording rewrites history; git log must not show \"Add chngelog\" anymore",
			Check: func(_ context.Context, env *Env) (bool, error) {
				stillThere, err := env.IsAncestor(env.Base, "HEAD")
				if err != nil || stillThere {
					return false, err
				}
				n, err := env.CommitsSinceBase("HEAD")
				return n == 2, err
			},
		},
		{
			Description: "both files are still committed",
			Hint:        "the rebase must keep changelog.txt and notes.txt in the tree",
			Check: func(_ context.Context, env *Env) (bool, error) {
				hasChangelog, err := env.FileAtRefExists("HEAD", "changelog.txt")
				if err != nil || !hasChangelog {
					return false, err
				}
				return env.FileAtRefExists("HEAD", "notes.txt")
			},
		},
		cleanWorktree("finish the rebase; git status should report a clean working tree"),
	}
	return t
}

func revertTask() *Task {
	t := &Task{
		Name:    "revert",
		Title:   "Undoing a commit safely",
		Summary: "Undo a bad commit with git revert, without rewriting history.",
		Instructions: []string{
			"The last commit on this branch broke the config.",
			"Undo it without rewriting history: git revert HEAD",
			"Keep the default commit message the revert offers.",
		},
		Seed: func(ctx context.Context, env *Env, _ string) error {
			if err := env.WriteFile("config.txt", "color: blue\n"); err != nil {
				return err
			}
			if err := env.Runner.CommitAll(ctx, "Add config"); err != nil {
				return err
			}
			if err := env.WriteFile("config.txt", "color: broken\n"); err != nil {
				return err
			}
			return env.Runner.CommitAll(ctx, "Break the config")
		},
	}
	t.Requirements = []Requirement{
		onTaskBranch(t),
		{
			Description: "the config is back to its working state",
			Hint:        "after the revert, config.txt must contain: color: blue",
			Check: func(_ context.Context, env *Env) (bool, error) {
				return env.FileAtRefContains("HEAD", "config.txt", "color: blue")
			},
		},
		{
			Description: "history was not rewritten",
			Hint:        "use git revert, not git reset; the bad commit must stay in git log",
			Check: func(_ context.Context, env *Env) (bool, error) {
				return env.IsAncestor(env.Base, "HEAD")
			},
		},
		{
			Description: "a revert commit was added",
			Hint:        "git revert records a new commit; its subject starts with Revert",
			Check: func(_ context.Context, env *Env) (bool, error) {
				n, err := env.CommitsSinceBase("HEAD")
				if err != nil || n < 1 {
					return false, err
				}
				return env.HeadSubjectHasPrefix("Revert")
			},
		},
		cleanWorktree("git status should report a clean working tree"),
	}
	return t
}

// onTaskBranch is the shared "you are on the task branch" requirement
func onTaskBranch(t *Task) Requirement {
	return Requirement{
		Description: "you are on branch " + t.Branch(),
		Hint:        "switch back with: git switch " + t.Branch(),
		Check: func(_ context.Context, env *Env) (bool, error) {
			return env.CurrentBranchIs(t.Branch())
		},
	}
}

// cleanWorktree is the shared "nothing left uncommitted" requirement
func cleanWorktree(hint string) Requirement {
	return Requirement{
		Description: "the working tree is clean",
		Hint:        hint,
		Check: func(ctx context.Context, env *Env) (bool, error) {
			return env.WorktreeClean(ctx)
		},
	}
}
