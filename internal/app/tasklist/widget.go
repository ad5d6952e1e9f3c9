// Package tasklist implements the task list widget: an ordered list of tasks
// loaded once from a TaskStore and written back in full after every mutation.
//
// The widget owns state only. Presentation layers (CLI, TUI, HTTP) read
// VisibleTasks and redraw when Subscribe notifies them.
package tasklist

import (
	"log"
	"slices"
	"sync"
	"time"

	"github.com/tasklist-app/tasklist/internal/domain"
	"github.com/tasklist-app/tasklist/internal/infra/metrics"
)

// Stats summarizes the full list, independent of the active filter.
type Stats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// Snapshot is the state handed to subscribers.
type Snapshot struct {
	Tasks   []domain.Task
	Visible []domain.Task
	Filter  domain.Filter
	Input   string
	Stats   Stats
}

// Widget is the task list state machine.
type Widget struct {
	mu     sync.Mutex
	store  domain.TaskStore
	tasks  []domain.Task
	input  string
	filter domain.Filter
	loaded bool

	clock  domain.Clock
	ids    domain.IDGenerator
	layout string
	logger *log.Logger

	subMu  sync.Mutex
	subs   map[int]func(Snapshot)
	nextID int
}

// New creates a widget persisting through store. Load runs on first
// mutation if the caller has not run it already.
func New(store domain.TaskStore, opts ...Option) *Widget {
	w := &Widget{
		store:  store,
		tasks:  []domain.Task{},
		filter: domain.FilterAll,
		clock:  domain.SystemClock{},
		ids:    UUIDGenerator{},
		layout: time.RFC3339,
		logger: log.Default(),
		subs:   make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Load reads the persisted list once. Absent, unreadable or malformed data
// leaves the list empty; the failure is logged, never returned.
// Later calls do nothing.
func (w *Widget) Load() {
	w.mu.Lock()
	if w.loaded {
		w.mu.Unlock()
		return
	}
	w.loaded = true

	raw, ok, err := w.store.Read()
	switch {
	case err != nil:
		w.logger.Printf("[tasklist] read stored tasks: %v (starting empty)", err)
		metrics.LoadFailures.WithLabelValues("read").Inc()
	case !ok:
		// First run.
	default:
		tasks, err := domain.DecodeTasks(raw)
		if err != nil {
			w.logger.Printf("[tasklist] failed to parse stored tasks: %v (starting empty)", err)
			metrics.LoadFailures.WithLabelValues("malformed").Inc()
			break
		}
		w.tasks = tasks
	}
	w.mu.Unlock()
	w.notify()
}

// AddTask appends a new open task built from raw. Input that is empty after
// trimming is ignored: nothing is added, written or cleared.
func (w *Widget) AddTask(raw string) (domain.Task, bool) {
	text, ok := domain.NormalizeText(raw)
	if !ok {
		metrics.Operations.WithLabelValues("add", "noop").Inc()
		return domain.Task{}, false
	}

	w.Load()
	w.mu.Lock()
	task := domain.Task{
		ID:        w.ids.NewID(),
		Text:      text,
		Completed: false,
		Timestamp: w.clock.Now().Format(w.layout),
	}
	w.tasks = append(w.tasks, task)
	w.input = ""
	w.persistLocked()
	w.mu.Unlock()

	metrics.Operations.WithLabelValues("add", "applied").Inc()
	w.notify()
	return task, true
}

// ToggleTask flips the completed flag of the task with id and returns the
// task as it is after the flip. It reports whether such a task exists.
func (w *Widget) ToggleTask(id string) (domain.Task, bool) {
	w.Load()
	w.mu.Lock()
	var task domain.Task
	found := false
	for i := range w.tasks {
		if w.tasks[i].ID == id {
			w.tasks[i].Completed = !w.tasks[i].Completed
			task, found = w.tasks[i], true
			break
		}
	}
	w.persistLocked()
	w.mu.Unlock()

	metrics.Operations.WithLabelValues("toggle", outcome(found)).Inc()
	w.notify()
	return task, found
}

// DeleteTask removes the task with id and reports whether it existed.
func (w *Widget) DeleteTask(id string) bool {
	w.Load()
	w.mu.Lock()
	before := len(w.tasks)
	w.tasks = slices.DeleteFunc(w.tasks, func(t domain.Task) bool { return t.ID == id })
	found := len(w.tasks) < before
	w.persistLocked()
	w.mu.Unlock()

	metrics.Operations.WithLabelValues("delete", outcome(found)).Inc()
	if found {
		metrics.TasksRemoved.WithLabelValues("delete").Inc()
	}
	w.notify()
	return found
}

// ClearCompleted removes every completed task, keeping the order of the rest.
// It returns the number removed.
func (w *Widget) ClearCompleted() int {
	w.Load()
	w.mu.Lock()
	before := len(w.tasks)
	w.tasks = slices.DeleteFunc(w.tasks, func(t domain.Task) bool { return t.Completed })
	removed := before - len(w.tasks)
	w.persistLocked()
	w.mu.Unlock()

	metrics.Operations.WithLabelValues("clear_completed", outcome(removed > 0)).Inc()
	metrics.TasksRemoved.WithLabelValues("clear_completed").Add(float64(removed))
	w.notify()
	return removed
}

// Import appends tasks whose id is not already present, skipping records
// with blank text or id. Completed flags and timestamps are kept as given.
// It returns the number added and writes once.
func (w *Widget) Import(tasks []domain.Task) int {
	w.Load()
	w.mu.Lock()
	seen := make(map[string]bool, len(w.tasks)+len(tasks))
	for _, t := range w.tasks {
		seen[t.ID] = true
	}
	added := 0
	for _, t := range tasks {
		text, ok := domain.NormalizeText(t.Text)
		if !ok || t.ID == "" || seen[t.ID] {
			continue
		}
		t.Text = text
		seen[t.ID] = true
		w.tasks = append(w.tasks, t)
		added++
	}
	if added > 0 {
		w.persistLocked()
	}
	w.mu.Unlock()

	metrics.Operations.WithLabelValues("import", outcome(added > 0)).Inc()
	w.notify()
	return added
}

// SetFilter changes the active filter. View state only; nothing is written.
func (w *Widget) SetFilter(f domain.Filter) {
	w.mu.Lock()
	w.filter = f
	w.mu.Unlock()
	w.notify()
}

// Filter returns the active filter.
func (w *Widget) Filter() domain.Filter {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.filter
}

// SetInput records the pending, not yet submitted input.
func (w *Widget) SetInput(s string) {
	w.mu.Lock()
	w.input = s
	w.mu.Unlock()
	w.notify()
}

// Input returns the pending input.
func (w *Widget) Input() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.input
}

// SubmitInput adds the pending input as a task.
func (w *Widget) SubmitInput() (domain.Task, bool) {
	return w.AddTask(w.Input())
}

// VisibleTasks returns the tasks matching the active filter, in list order.
// The result is a fresh copy on every call.
func (w *Widget) VisibleTasks() []domain.Task {
	w.mu.Lock()
	defer w.mu.Unlock()
	return filterTasks(w.tasks, w.filter)
}

// Tasks returns a copy of the full list.
func (w *Widget) Tasks() []domain.Task {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.tasks)
}

// Stats counts the full list.
func (w *Widget) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return countTasks(w.tasks)
}

// HasCompleted reports whether clear-completed would remove anything.
func (w *Widget) HasCompleted() bool {
	return w.Stats().Completed > 0
}

// Snapshot returns the current state.
func (w *Widget) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

// Subscribe registers fn to be called after every state change.
// The returned func removes the subscription.
func (w *Widget) Subscribe(fn func(Snapshot)) func() {
	w.subMu.Lock()
	id := w.nextID
	w.nextID++
	w.subs[id] = fn
	w.subMu.Unlock()

	return func() {
		w.subMu.Lock()
		delete(w.subs, id)
		w.subMu.Unlock()
	}
}

// persistLocked writes the full list. Failures are logged and counted.
func (w *Widget) persistLocked() {
	raw, err := domain.EncodeTasks(w.tasks)
	if err != nil {
		w.logger.Printf("[tasklist] %v", err)
		metrics.StoreWrites.WithLabelValues("error").Inc()
		return
	}
	if err := w.store.Write(raw); err != nil {
		w.logger.Printf("[tasklist] write tasks: %v", err)
		metrics.StoreWrites.WithLabelValues("error").Inc()
		return
	}
	metrics.StoreWrites.WithLabelValues("ok").Inc()
	metrics.StoreWriteBytes.Observe(float64(len(raw)))
}

func (w *Widget) snapshotLocked() Snapshot {
	return Snapshot{
		Tasks:   slices.Clone(w.tasks),
		Visible: filterTasks(w.tasks, w.filter),
		Filter:  w.filter,
		Input:   w.input,
		Stats:   countTasks(w.tasks),
	}
}

// notify runs subscribers outside the state lock so they may call back in.
func (w *Widget) notify() {
	w.subMu.Lock()
	if len(w.subs) == 0 {
		w.subMu.Unlock()
		return
	}
	fns := make([]func(Snapshot), 0, len(w.subs))
	for _, fn := range w.subs {
		fns = append(fns, fn)
	}
	w.subMu.Unlock()

	snap := w.Snapshot()
	for _, fn := range fns {
		fn(snap)
	}
}

func filterTasks(tasks []domain.Task, f domain.Filter) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

func countTasks(tasks []domain.Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		} else {
			s.Active++
		}
	}
	return s
}

func outcome(applied bool) string {
	if applied {
		return "applied"
	}
	return "noop"
}
