package git

import (
	"context"
	"errors"
	"fmt"

	taskerrors "github.com/pkratoch-git-workshop/git-tasks/internal/errors"
)

// GetLocalConfig returns a value from the repository-local git config.
// A missing key is reported via the second return value, not an error.
func (r *CommandRunner) GetLocalConfig(ctx context.Context, key string) (string, bool, error) {
	value, err := r.Run(ctx, "config", "--local", "--get", key)
	if err != nil {
		// git config --get exits 1 when the key is not set
		var cmdErr *taskerrors.GitCommandError
		if errors.As(err, &cmdErr) && cmdErr.Stderr == "" {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get config %s: %w", key, err)
	}
	return value, true, nil
}

// SetLocalConfig sets a value in the repository-local git config
func (r *CommandRunner) SetLocalConfig(ctx context.Context, key, value string) error {
	if _, err := r.Run(ctx, "config", "--local", key, value); err != nil {
		return fmt.Errorf("failed to set config %s: %w", key, err)
	}
	return nil
}

// UnsetLocalConfig removes a key from the repository-local git config.
// Unsetting a key that is not set is not an error.
func (r *CommandRunner) UnsetLocalConfig(ctx context.Context, key string) error {
	if _, err := r.Run(ctx, "config", "--local", "--unset", key); err != nil {
		// git config --unset exits 5 when the key was not set
		var cmdErr *taskerrors.GitCommandError
		if errors.As(err, &cmdErr) && cmdErr.Stderr == "" {
			return nil
		}
		return fmt.Errorf("failed to unset config %s: %w", key, err)
	}
	return nil
}

// GetUserName returns the effective git user.name, if configured
func (r *CommandRunner) GetUserName(ctx context.Context) (string, bool, error) {
	value, err := r.Run(ctx, "config", "--get", "user.name")
	if err != nil {
		var cmdErr *taskerrors.GitCommandError
		if errors.As(err, &cmdErr) && cmdErr.Stderr == "" {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get git user name: %w", err)
	}
	return value, true, nil
}
