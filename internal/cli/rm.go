package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tasklist-app/tasklist/internal/app/export"
)

func init() {
	rootCmd.AddCommand(rmCmd)
}

var rmCmd = &cobra.Command{
	Use:     "rm ID",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE:    runRm,
}

func runRm(cmd *cobra.Command, args []string) error {
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

	d.Widget.DeleteTask(task.ID)
	fmt.Fprintf(out, "Removed %s: %s\n", export.ShortID(task.ID), task.Text)
	return nil
}
