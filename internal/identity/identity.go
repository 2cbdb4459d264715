// Package identity switches the repository-local committer identity, so a
// workshop host can demonstrate commits from different authors.
package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkratoch-git-workshop/git-tasks/internal/git"
)

// EmailDomain is the synthetic domain used for derived addresses
const EmailDomain = "git.example.com"

// EmailFor derives a deterministic email address from a committer name
func EmailFor(name string) string {
	return Slugify(name) + "@" + EmailDomain
}

// Slugify lowercases a name and reduces it to [a-z0-9.] with dots between words
func Slugify(name string) string {
	var b strings.Builder
	lastDot := true // suppress leading dots
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDot = false
		default:
			if !lastDot {
				b.WriteByte('.')
				lastDot = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), ".")
}

// Set configures the repository-local user.name and a derived user.email
func Set(ctx context.Context, runner *git.CommandRunner, name string) error {
	if err := runner.SetLocalConfig(ctx, "user.name", name); err != nil {
		return fmt.Errorf("failed to set identity: %w", err)
	}
	if err := runner.SetLocalConfig(ctx, "user.email", EmailFor(name)); err != nil {
		return fmt.Errorf("failed to set identity: %w", err)
	}
	return nil
}

// Unset removes the repository-local user.name and user.email.
// Values that are already unset are not an error.
func Unset(ctx context.Context, runner *git.CommandRunner) error {
	if err := runner.UnsetLocalConfig(ctx, "user.name"); err != nil {
		return fmt.Errorf("failed to unset identity: %w", err)
	}
	if err := runner.UnsetLocalConfig(ctx, "user.email"); err != nil {
		return fmt.Errorf("failed to unset identity: %w", err)
	}
	return nil
}

// Current returns the repository-local identity, if set
func Current(ctx context.Context, runner *git.CommandRunner) (name, email string, ok bool, err error) {
	name, ok, err = runner.GetLocalConfig(ctx, "user.name")
	if err != nil || !ok {
		return "", "", false, err
	}
	email, _, err = runner.GetLocalConfig(ctx, "user.email")
	if err != nil {
		return "", "", false, err
	}
	return name, email, true, nil
}
