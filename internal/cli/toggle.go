package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tasklist-app/tasklist/internal/app/export"
)

func init() {
	rootCmd.AddCommand(toggleCmd)
}

var toggleCmd = &cobra.Command{
	Use:     "toggle ID",
	Aliases: []string{"done"},
	Short:   "Mark a task completed, or open again",
	Long:    `Flip a task between open and completed. ID may be any unique prefix.`,
	Args:    cobra.ExactArgs(1),
	RunE:    runToggle,
}

func runToggle(cmd *cobra.Command, args []string) error {
	d, err := openDaemon()
	if err != nil {
		return err
	}
	defer d.Close()

	out := cmd.OutOrStdout()
	task, ok, err := resolveArg(d.Widget, out, args[0])
	if err != nil || !ok {
		return err
	}

	toggled, ok := d.Widget.ToggleTask(task.ID)
	if !ok {
		fmt.Fprintf(out, "No task matches %q\n", args[0])
		return nil
	}
	state := "completed"
	if !toggled.Completed {
		state = "reopened"
	}
	fmt.Fprintf(out, "%s %s: %s\n", state, export.ShortID(toggled.ID), toggled.Text)
	return nil
}
