package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tasklist-app/tasklist/internal/app/export"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Append tasks from a JSON or YAML export",
	Long: `Append tasks from FILE ("-" reads stdin). Accepts the output of
'tasklist export' or the raw "todos" value copied from the browser's
local storage. Tasks whose id already exists are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	tasks, err := export.Read(r)
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	d, err := openDaemon()
	if err != nil {
		return err
	}
	defer d.Close()

	n := d.Widget.Import(tasks)
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d tasks\n", n, len(tasks))
	return nil
}
