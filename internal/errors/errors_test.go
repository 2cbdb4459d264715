package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkratoch-git-workshop/git-tasks/internal/errors"
)

func TestUnknownTaskError(t *testing.T) {
	t.Parallel()

	err := errors.NewUnknownTaskError("nope", []string{"merging", "amend"})
	require.True(t, stderrors.Is(err, errors.ErrUnknownTask))
	require.Equal(t, `unknown task "nope", valid tasks are: amend, merging`, err.Error())

	var typed *errors.UnknownTaskError
	require.True(t, stderrors.As(fmt.Errorf("wrapped: %w", err), &typed))
	require.Equal(t, "nope", typed.Name)
}

func TestUnknownTopicError(t *testing.T) {
	t.Parallel()

	err := errors.NewUnknownTopicError("nope", []string{"basics"})
	require.True(t, stderrors.Is(err, errors.ErrUnknownTopic))
	require.Contains(t, err.Error(), "basics")
}

func TestGitCommandErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("exit status 128")
	err := errors.NewGitCommandError("git", []string{"status"}, "", "fatal: boom", cause)

	require.True(t, stderrors.Is(err, cause))
	require.Contains(t, err.Error(), "fatal: boom")
	require.Contains(t, err.Error(), "git")
}
