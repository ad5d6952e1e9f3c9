// Package export renders task lists for humans and other tools, and parses
// lists exported from elsewhere (including a raw browser "todos" value).
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/tasklist-app/tasklist/internal/domain"
)

// Format names an output encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// ParseFormat accepts json, yaml/yml or table.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "table", "":
		return FormatTable, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownFormat, s)
}

// Write renders tasks to w in the given format.
func Write(w io.Writer, format Format, tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tasks); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTable:
		return writeTable(w, tasks)
	}
	return fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
}

func writeTable(w io.Writer, tasks []domain.Task) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tTEXT\tCREATED")
	for _, t := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", ShortID(t.ID), t.Status(), t.Text, t.Timestamp)
	}
	return tw.Flush()
}

// ShortID trims an id to 8 characters for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Read parses a task list in JSON or YAML. The format is sniffed: input
// whose first non-space byte is '[' is JSON, anything else YAML.
func Read(r io.Reader) ([]domain.Task, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []domain.Task{}, nil
	}
	if trimmed[0] == '[' {
		return domain.DecodeTasks(string(trimmed))
	}

	var tasks []domain.Task
	if err := yaml.Unmarshal(trimmed, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedData, err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}
