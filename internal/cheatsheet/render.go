package cheatsheet

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pkratoch-git-workshop/git-tasks/internal/tui/style"
)

var (
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	cmdColStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("11"))
)

// Render formats a topic for the terminal
func Render(t *Topic) string {
	var b strings.Builder

	b.WriteString(style.Title(t.Title))
	b.WriteString("\n")
	for _, line := range t.Intro {
		b.WriteString(line)
		b.WriteString("\n")
	}

	for _, section := range t.Sections {
		b.WriteString("\n")
		b.WriteString(style.Heading(section.Heading))
		b.WriteString("\n")
		for _, line := range section.Prose {
			b.WriteString(line)
			b.WriteString("\n")
		}
		if len(section.Commands) > 0 {
			b.WriteString(renderCommands(section.Commands))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderCommands renders a command table for one section
func renderCommands(commands []Command) string {
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 0 {
				return cmdColStyle
			}
			return cellStyle
		})

	for _, c := range commands {
		tbl.Row(c.Cmd, c.Desc)
	}

	return tbl.String()
}

// RenderIndex formats the topic listing shown when no topic is named
func RenderIndex() string {
	var b strings.Builder
	b.WriteString(style.Title("Cheatsheets"))
	b.WriteString("\n")

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 0 {
				return cmdColStyle
			}
			return cellStyle
		})

	for _, t := range All() {
		tbl.Row(t.Name, t.Title)
	}
	b.WriteString(tbl.String())
	b.WriteString("\n")
	b.WriteString(style.Dim("Show one with: git-tasks cheatsheet <topic>"))
	b.WriteString("\n")
	return b.String()
}
