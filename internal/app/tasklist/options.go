package tasklist

import (
	"log"

	"github.com/tasklist-app/tasklist/internal/domain"
)

// Option configures a Widget.
type Option func(*Widget)

// WithClock sets the clock used for creation timestamps.
func WithClock(c domain.Clock) Option {
	return func(w *Widget) { w.clock = c }
}

// WithIDGenerator sets the task id source.
func WithIDGenerator(g domain.IDGenerator) Option {
	return func(w *Widget) { w.ids = g }
}

// WithTimestampLayout sets the time.Format layout for Task.Timestamp.
// An empty layout keeps the default (RFC 3339).
func WithTimestampLayout(layout string) Option {
	return func(w *Widget) {
		if layout != "" {
			w.layout = layout
		}
	}
}

// WithFilter sets the initial filter.
func WithFilter(f domain.Filter) Option {
	return func(w *Widget) { w.filter = f }
}

// WithLogger sets the logger for load and write failures.
func WithLogger(l *log.Logger) Option {
	return func(w *Widget) {
		if l != nil {
			w.logger = l
		}
	}
}
