// Package style provides lipgloss styles shared by command output.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	codeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	startedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Title renders a top-level title
func Title(text string) string {
	return titleStyle.Render(text)
}

// Heading renders a section heading
func Heading(text string) string {
	return headingStyle.Render(text)
}

// Dim renders de-emphasized text
func Dim(text string) string {
	return dimStyle.Render(text)
}

// Code renders an inline command or file name
func Code(text string) string {
	return codeStyle.Render(text)
}

// Pass renders a passed requirement line
func Pass(text string) string {
	return passStyle.Render("✓ " + text)
}

// Fail renders a failed requirement line
func Fail(text string) string {
	return failStyle.Render("✗ " + text)
}

// ColorBranchName colors a branch name based on whether it's current
func ColorBranchName(branchName string, isCurrent bool) string {
	if isCurrent {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Render(branchName + " (current)")
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Render(branchName)
}

// StatusGlyph renders a progress glyph for a task status string
// ("done", "started", anything else is treated as not started).
func StatusGlyph(status string) string {
	switch status {
	case "done":
		return doneStyle.Render("●")
	case "started":
		return startedStyle.Render("◐")
	default:
		return dimStyle.Render("◯")
	}
}
