// Package cli implements the tasklist command-line interface using Cobra.
// Each subcommand maps to one widget operation (add, toggle, rm, clear, …).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tasklist",
	Short: "A local task list",
	Long: `tasklist keeps an ordered list of tasks on this machine.
Add, complete, delete and filter tasks from the command line,
the terminal UI (tasklist tui) or the local HTTP API (tasklist serve).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	flagBackend   string
	flagEphemeral bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Storage backend: sqlite, file or memory (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagEphemeral, "ephemeral", false, "Keep tasks in memory only for this run")
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
