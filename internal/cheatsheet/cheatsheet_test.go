package cheatsheet_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkratoch-git-workshop/git-tasks/internal/cheatsheet"
	taskerrors "github.com/pkratoch-git-workshop/git-tasks/internal/errors"
)

func TestTopicsAreWellFormed(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, topic := range cheatsheet.All() {
		require.NotEmpty(t, topic.Name)
		require.NotEmpty(t, topic.Title)
		require.False(t, seen[topic.Name], "duplicate topic %s", topic.Name)
		seen[topic.Name] = true

		require.NotEmpty(t, topic.Sections, "topic %s has no sections", topic.Name)
		for _, section := range topic.Sections {
			require.NotEmpty(t, section.Heading, "topic %s has a section without a heading", topic.Name)
			for _, cmd := range section.Commands {
				require.NotEmpty(t, cmd.Cmd)
				require.NotEmpty(t, cmd.Desc)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	topic, err := cheatsheet.Lookup("branches")
	require.NoError(t, err)
	require.Equal(t, "branches", topic.Name)

	_, err = cheatsheet.Lookup("nope")
	require.True(t, errors.Is(err, taskerrors.ErrUnknownTopic))
	require.Contains(t, err.Error(), "branches")
}

func TestGlossaryDefinesCoreTerms(t *testing.T) {
	t.Parallel()

	topic, err := cheatsheet.Lookup("glossary")
	require.NoError(t, err)

	rendered := cheatsheet.Render(topic)
	for _, term := range []string{"working directory", "staging area", "repository"} {
		require.Contains(t, strings.ToLower(rendered), term)
	}
}

func TestRenderContainsCommands(t *testing.T) {
	t.Parallel()

	topic, err := cheatsheet.Lookup("basics")
	require.NoError(t, err)

	rendered := cheatsheet.Render(topic)
	require.Contains(t, rendered, "git status")
	require.Contains(t, rendered, "git log")
}

func TestRenderIndexListsEveryTopic(t *testing.T) {
	t.Parallel()

	index := cheatsheet.RenderIndex()
	for _, name := range cheatsheet.Names() {
		require.Contains(t, index, name)
	}
}
