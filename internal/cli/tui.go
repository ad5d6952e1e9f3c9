package cli

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tasklist-app/tasklist/internal/daemon"
	"github.com/tasklist-app/tasklist/internal/tui"
)

func init() {
	rootCmd.AddCommand(tuiCmd)
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive task list",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// Log lines on stderr would tear the screen.
	if cfg.Logging.File == "" {
		cfg.Logging.File = filepath.Join(daemon.Home(), "tasklist.log")
	}

	d, err := newDaemon(cfg)
	if err != nil {
		return err
	}
	defer d.Close()

	p := tea.NewProgram(tui.New(d.Widget), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
