// Package domain holds the task list's core types.
// A Task is a single to-do entry: created once, toggled, eventually removed.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Task is a single to-do item. Field names are the persisted wire format.
type Task struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// Status returns a short human label for the task's state.
func (t Task) Status() string {
	if t.Completed {
		return "done"
	}
	return "open"
}

// NormalizeText trims user input. The boolean is false when nothing is left.
func NormalizeText(raw string) (string, bool) {
	text := strings.TrimSpace(raw)
	return text, text != ""
}

// EncodeTasks serializes the full list as a JSON array.
// A nil list encodes as "[]", never "null".
func EncodeTasks(tasks []Task) (string, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tasks); err != nil {
		return "", fmt.Errorf("encode tasks: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// DecodeTasks parses a persisted JSON array. JSON null yields an empty list.
func DecodeTasks(raw string) ([]Task, error) {
	var tasks []Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}
