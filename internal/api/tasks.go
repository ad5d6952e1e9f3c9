package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tasklist-app/tasklist/internal/app/tasklist"
	"github.com/tasklist-app/tasklist/internal/domain"
)

// ─── /api/tasks ─────────────────────────────────────────────────────────────

type listResponse struct {
	Tasks  []domain.Task  `json:"tasks"`
	Filter domain.Filter  `json:"filter"`
	Stats  tasklist.Stats `json:"stats"`
}

// handleListTasks returns the visible tasks. ?filter= overrides the widget's
// active filter for this request only.
func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	snap := s.widget.Snapshot()
	resp := listResponse{Tasks: snap.Visible, Filter: snap.Filter, Stats: snap.Stats}

	if q := r.URL.Query().Get("filter"); q != "" {
		f, err := domain.ParseFilter(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		resp.Filter = f
		resp.Tasks = make([]domain.Task, 0, len(snap.Tasks))
		for _, t := range snap.Tasks {
			if f.Match(t) {
				resp.Tasks = append(resp.Tasks, t)
			}
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type addRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleAddTask(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	task, ok := s.widget.AddTask(req.Text)
	if !ok {
		writeError(w, http.StatusBadRequest, domain.ErrEmptyText.Error())
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	task, ok := s.resolve(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleToggleTask(w http.ResponseWriter, r *http.Request) {
	task, ok := s.resolve(w, r)
	if !ok {
		return
	}
	toggled, ok := s.widget.ToggleTask(task.ID)
	if !ok {
		writeError(w, http.StatusNotFound, domain.ErrTaskNotFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, toggled)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	task, ok := s.resolve(w, r)
	if !ok {
		return
	}
	if !s.widget.DeleteTask(task.ID) {
		writeError(w, http.StatusNotFound, domain.ErrTaskNotFound.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearCompleted(w http.ResponseWriter, r *http.Request) {
	removed := s.widget.ClearCompleted()
	writeJSON(w, http.StatusOK, map[string]int{"removed": removed})
}

// resolve looks up {id} (full id or unique prefix) and writes the error
// response itself when the lookup fails.
func (s *Server) resolve(w http.ResponseWriter, r *http.Request) (domain.Task, bool) {
	task, err := s.widget.Resolve(chi.URLParam(r, "id"))
	switch {
	case err == nil:
		return task, true
	case errors.Is(err, domain.ErrAmbiguousID):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusNotFound, err.Error())
	}
	return domain.Task{}, false
}

// ─── /api/filter ────────────────────────────────────────────────────────────

type filterBody struct {
	Filter string `json:"filter"`
}

func (s *Server) handleGetFilter(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, filterBody{Filter: string(s.widget.Filter())})
}

func (s *Server) handleSetFilter(w http.ResponseWriter, r *http.Request) {
	var req filterBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	f, err := domain.ParseFilter(req.Filter)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.widget.SetFilter(f)
	writeJSON(w, http.StatusOK, filterBody{Filter: string(f)})
}

// ─── /api/storage ───────────────────────────────────────────────────────────

// handleStorage returns the raw persisted value, exactly as stored.
func (s *Server) handleStorage(w http.ResponseWriter, r *http.Request) {
	raw, ok, err := s.store.Read()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(raw))
}
