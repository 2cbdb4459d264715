// Package errors provides sentinel errors and custom error types for the git-tasks application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNotInRepo indicates the command was run outside a git repository
	ErrNotInRepo = errors.New("not a git repository")

	// ErrUnknownTask indicates a task name that is not in the catalog
	ErrUnknownTask = errors.New("unknown task")

	// ErrTaskNotStarted indicates a check/reset for a task that was never started
	ErrTaskNotStarted = errors.New("task not started")

	// ErrUnknownTopic indicates a cheatsheet topic that is not registered
	ErrUnknownTopic = errors.New("unknown cheatsheet topic")
)

// UnknownTaskError represents a task name that is not in the catalog.
// It carries the valid names so callers can show them to the user.
type UnknownTaskError struct {
	Name       string
	ValidNames []string
}

func (e *UnknownTaskError) Error() string {
	names := append([]string(nil), e.ValidNames...)
	sort.Strings(names)
	return fmt.Sprintf("unknown task %q, valid tasks are: %s", e.Name, strings.Join(names, ", "))
}

// Is returns true if the target error is ErrUnknownTask
func (e *UnknownTaskError) Is(target error) bool {
	return target == ErrUnknownTask
}

// NewUnknownTaskError creates a new UnknownTaskError
func NewUnknownTaskError(name string, validNames []string) *UnknownTaskError {
	return &UnknownTaskError{Name: name, ValidNames: validNames}
}

// UnknownTopicError represents a cheatsheet topic that is not registered
type UnknownTopicError struct {
	Topic       string
	ValidTopics []string
}

func (e *UnknownTopicError) Error() string {
	topics := append([]string(nil), e.ValidTopics...)
	sort.Strings(topics)
	return fmt.Sprintf("unknown topic %q, valid topics are: %s", e.Topic, strings.Join(topics, ", "))
}

// Is returns true if the target error is ErrUnknownTopic
func (e *UnknownTopicError) Is(target error) bool {
	return target == ErrUnknownTopic
}

// NewUnknownTopicError creates a new UnknownTopicError
func NewUnknownTopicError(topic string, validTopics []string) *UnknownTopicError {
	return &UnknownTopicError{Topic: topic, ValidTopics: validTopics}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
