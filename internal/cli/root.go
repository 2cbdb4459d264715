// Package cli wires the cobra command tree for git-tasks.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "git-tasks",
		Short: "git-tasks is a guided workshop for learning Git on the command line",
		Long: `git-tasks is a guided workshop for learning Git on the command line.

It ships a set of small exercises (tasks), each living on its own branch,
plus terminal cheatsheets of the Git commands the exercises practice.
Start a task, follow the instructions, and let the tool grade your work.`,
		SilenceUsage: true,
	}

	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)

	rootCmd.AddCommand(newStartCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newUserCmd())
	rootCmd.AddCommand(newCheatsheetCmd())

	return rootCmd
}
