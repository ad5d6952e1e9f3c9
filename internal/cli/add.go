package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tasklist-app/tasklist/internal/app/export"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add TEXT...",
	Short: "Add a task",
	Long:  `Add a task. Arguments are joined with spaces; surrounding whitespace is trimmed.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	d, err := openDaemon()
	if err != nil {
		return err
	}
	defer d.Close()

	out := cmd.OutOrStdout()
	task, ok := d.Widget.AddTask(strings.Join(args, " "))
	if !ok {
		fmt.Fprintln(out, "Nothing added: task text is empty")
		return nil
	}

	fmt.Fprintf(out, "Added %s: %s\n", export.ShortID(task.ID), task.Text)
	return nil
}
