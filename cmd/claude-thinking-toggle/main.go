// Package main provides the entry point for the claude-thinking-toggle CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LanceVCS/claude-thinking-toggle/cmd/claude-thinking-toggle/commands"
	"github.com/LanceVCS/claude-thinking-toggle/pkg/version"
)

func main() {
	version.Init()

	rootCmd := &cobra.Command{
		Use:   "claude-thinking-toggle",
		Short: "Keep Claude Code's thinking panel always visible",
		Long: `claude-thinking-toggle patches the installed Claude Code cli.js so the
thinking panel stays visible, with optional header and content colors.

Commands:
  apply     Patch the target (backup is written first)
  check     Report patch state without modifying anything
  restore   Restore the target from its backup`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewApplyCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewRestoreCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(commands.ExitCode(err))
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(os.Stdout, version.String())
		},
	}
}
