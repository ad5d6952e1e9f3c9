package cli

import (
	"github.com/spf13/cobra"

	"github.com/tasklist-app/tasklist/internal/domain"
)

func init() {
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "Show all, active or completed tasks (default from config)")
	rootCmd.AddCommand(listCmd)
}

var listFilter string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func runList(cmd *cobra.Command, args []string) error {
	d, err := openDaemon()
	if err != nil {
		return err
	}
	defer d.Close()

	if listFilter != "" {
		f, err := domain.ParseFilter(listFilter)
		if err != nil {
			return err
		}
		d.Widget.SetFilter(f)
	}

	snap := d.Widget.Snapshot()
	return printTasks(cmd.OutOrStdout(), snap.Visible, snap.Filter, snap.Stats)
}
