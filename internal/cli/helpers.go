package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/tasklist-app/tasklist/internal/app/export"
	"github.com/tasklist-app/tasklist/internal/app/tasklist"
	"github.com/tasklist-app/tasklist/internal/daemon"
	"github.com/tasklist-app/tasklist/internal/domain"
)

// loadConfig reads the config file and applies the persistent flags.
func loadConfig() (daemon.Config, error) {
	cfg, err := daemon.LoadConfig()
	if err != nil {
		return cfg, err
	}
	if flagBackend != "" {
		cfg.Storage.Backend = flagBackend
	}
	if flagEphemeral {
		cfg.Storage.Backend = daemon.BackendMemory
	}
	return cfg, nil
}

// openDaemon builds a daemon with the widget loaded.
func openDaemon() (*daemon.Daemon, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return newDaemon(cfg)
}

// newDaemon is daemon.NewWithConfig; tests swap it out.
var newDaemon = daemon.NewWithConfig

// resolveArg maps a user-typed id or prefix to a task. A reference matching
// nothing is reported on out and yields ok=false with no error, mirroring
// the widget, where unknown ids are a no-op.
func resolveArg(w *tasklist.Widget, out io.Writer, ref string) (domain.Task, bool, error) {
	task, err := w.Resolve(ref)
	if errors.Is(err, domain.ErrTaskNotFound) {
		fmt.Fprintf(out, "No task matches %q\n", ref)
		return domain.Task{}, false, nil
	}
	if err != nil {
		return domain.Task{}, false, err
	}
	return task, true, nil
}

// printTasks renders tasks as a table followed by the footer line.
func printTasks(out io.Writer, tasks []domain.Task, filter domain.Filter, stats tasklist.Stats) error {
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks found")
		fmt.Fprintln(out, emptyHint(filter))
	} else if err := export.Write(out, export.FormatTable, tasks); err != nil {
		return err
	}

	footer := fmt.Sprintf("\n%d total tasks", stats.Total)
	if stats.Completed > 0 {
		footer += fmt.Sprintf(" · %d completed (tasklist clear)", stats.Completed)
	}
	fmt.Fprintln(out, footer)
	return nil
}

func emptyHint(f domain.Filter) string {
	if f == domain.FilterAll {
		return "Add a new task to get started!"
	}
	return fmt.Sprintf("No %s tasks", f)
}
