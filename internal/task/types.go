package task

import (
	"context"
)

// BranchSuffix is appended to a task name to form its working branch
const BranchSuffix = "-task"

// SeedFunc prepares the fixture state for a task. It runs with the task
// branch created and checked out; startPoint is the revision the branch was
// created from, for seeding sibling fixture branches.
type SeedFunc func(ctx context.Context, env *Env, startPoint string) error

// CheckFunc evaluates one requirement against the repository
type CheckFunc func(ctx context.Context, env *Env) (bool, error)

// Requirement is one gradeable condition of a task
type Requirement struct {
	// Description is shown next to the pass/fail marker
	Description string
	// Hint is shown when the requirement fails
	Hint string
	// Check evaluates the requirement
	Check CheckFunc
}

// Task is one guided exercise of the workshop
type Task struct {
	// Name is the catalog key, also the prefix of all task branches
	Name string
	// Title is a short human heading
	Title string
	// Summary is a one-line description for listings
	Summary string
	// Instructions are printed after start, one line each
	Instructions []string
	// Seed prepares fixture state, may be nil
	Seed SeedFunc
	// FixtureRoles lists the sibling branches Seed creates, by role suffix
	FixtureRoles []string
	// Requirements are graded in order by check
	Requirements []Requirement
}

// Branch returns the working branch for this task (<name>-task)
func (t *Task) Branch() string {
	return t.Name + BranchSuffix
}

// FixtureBranch returns a seeded sibling branch name (<name>-<role>)
func (t *Task) FixtureBranch(role string) string {
	return t.Name + "-" + role
}

// Branches returns every branch this task may create: the working branch
// plus all fixture branches. Used by reset.
func (t *Task) Branches() []string {
	branches := []string{t.Branch()}
	for _, role := range t.FixtureRoles {
		branches = append(branches, t.FixtureBranch(role))
	}
	return branches
}
