package tasklist

import (
	"fmt"
	"strings"

	"github.com/tasklist-app/tasklist/internal/domain"
)

// Resolve finds a task by full id or by a unique id prefix.
// Surfaces use it so users can type the first few characters of a UUID.
func (w *Widget) Resolve(ref string) (domain.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	var match *domain.Task
	for i := range w.tasks {
		if w.tasks[i].ID == ref {
			return w.tasks[i], nil
		}
	}
	for i := range w.tasks {
		if !strings.HasPrefix(w.tasks[i].ID, ref) {
			continue
		}
		if match != nil {
			return domain.Task{}, fmt.Errorf("%w: %q", domain.ErrAmbiguousID, ref)
		}
		match = &w.tasks[i]
	}
	if match == nil {
		return domain.Task{}, fmt.Errorf("%w: %q", domain.ErrTaskNotFound, ref)
	}
	return *match, nil
}
