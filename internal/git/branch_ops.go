package git

import (
	"context"
	"fmt"
)

// CheckoutBranch checks out an existing branch
func (r *CommandRunner) CheckoutBranch(ctx context.Context, branchName string) error {
	_, err := r.Run(ctx, "checkout", branchName)
	if err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branchName, err)
	}
	return nil
}

// CreateAndCheckoutBranchAt creates a branch at the given start point and checks it out
func (r *CommandRunner) CreateAndCheckoutBranchAt(ctx context.Context, branchName, startPoint string) error {
	_, err := r.Run(ctx, "checkout", "-b", branchName, startPoint)
	if err != nil {
		return fmt.Errorf("failed to create branch %s at %s: %w", branchName, startPoint, err)
	}
	return nil
}

// DeleteBranch deletes a branch
func (r *CommandRunner) DeleteBranch(ctx context.Context, branchName string) error {
	_, err := r.Run(ctx, "branch", "-D", branchName)
	if err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", branchName, err)
	}
	return nil
}

// Commit records a commit with the given message
func (r *CommandRunner) Commit(ctx context.Context, message string) error {
	_, err := r.Run(ctx, "commit", "-m", message)
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// CommitAll stages all changes and records a commit with the given message
func (r *CommandRunner) CommitAll(ctx context.Context, message string) error {
	if _, err := r.Run(ctx, "add", "-A"); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	return r.Commit(ctx, message)
}
