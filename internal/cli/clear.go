package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(clearCmd)
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every completed task",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func runClear(cmd *cobra.Command, args []string) error {
	d, err := openDaemon()
	if err != nil {
		return err
	}
	defer d.Close()

	n := d.Widget.ClearCompleted()
	switch n {
	case 0:
		fmt.Fprintln(cmd.OutOrStdout(), "No completed tasks")
	case 1:
		fmt.Fprintln(cmd.OutOrStdout(), "Cleared 1 completed task")
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d completed tasks\n", n)
	}
	return nil
}
