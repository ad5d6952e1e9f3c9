package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one task in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
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

	fmt.Fprintf(out, "ID:        %s\n", task.ID)
	fmt.Fprintf(out, "Text:      %s\n", task.Text)
	fmt.Fprintf(out, "Status:    %s\n", task.Status())
	fmt.Fprintf(out, "Created:   %s\n", task.Timestamp)
	return nil
}
