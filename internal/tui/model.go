// Package tui is the interactive terminal front end for the task list.
// The model keeps only cursor and focus; every task operation goes through
// the widget, which persists it.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tasklist-app/tasklist/internal/app/tasklist"
	"github.com/tasklist-app/tasklist/internal/domain"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// Model is the Bubble Tea model.
type Model struct {
	widget *tasklist.Widget
	input  textinput.Model
	keys   keyMap
	focus  focusArea
	cursor int
	width  int
	status string
}

// New builds a model over w. w must already be loaded.
func New(w *tasklist.Widget) Model {
	ti := textinput.New()
	ti.Placeholder = "Add a new task..."
	ti.CharLimit = 500
	ti.SetValue(w.Input())
	ti.Focus()

	return Model{
		widget: w,
		input:  ti,
		keys:   defaultKeys(),
		focus:  focusInput,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(20, msg.Width-8)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.status = ""
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.widget.SetInput(m.input.Value())
		if _, ok := m.widget.SubmitInput(); ok {
			m.input.SetValue("")
			m.cursor = max(0, len(m.widget.VisibleTasks())-1)
		}
		return m, nil
	case key.Matches(msg, m.keys.Blur):
		m.focus = focusList
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.widget.SetInput(m.input.Value())
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.widget.VisibleTasks()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus):
		m.focus = focusInput
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if t, ok := at(visible, m.cursor); ok {
			m.widget.ToggleTask(t.ID)
		}
	case key.Matches(msg, m.keys.Delete):
		if t, ok := at(visible, m.cursor); ok {
			m.widget.DeleteTask(t.ID)
		}
	case key.Matches(msg, m.keys.All):
		m.widget.SetFilter(domain.FilterAll)
	case key.Matches(msg, m.keys.Active):
		m.widget.SetFilter(domain.FilterActive)
	case key.Matches(msg, m.keys.Completed):
		m.widget.SetFilter(domain.FilterCompleted)
	case key.Matches(msg, m.keys.Clear):
		if m.widget.HasCompleted() {
			n := m.widget.ClearCompleted()
			m.status = fmt.Sprintf("Cleared %d completed", n)
		}
	}

	m.cursor = clampCursor(m.cursor, len(m.widget.VisibleTasks()))
	return m, nil
}

func (m Model) View() string {
	snap := m.widget.Snapshot()
	var b strings.Builder

	b.WriteString(titleStyle.Render("Task Manager"))
	b.WriteString("\n")
	b.WriteString(inputBoxStyle.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(renderFilters(snap.Filter))
	b.WriteString("\n\n")

	if len(snap.Visible) == 0 {
		b.WriteString(emptyStyle.Render("No tasks found\n" + emptyHint(snap.Filter)))
		b.WriteString("\n")
	}
	for i, t := range snap.Visible {
		b.WriteString(m.renderRow(i, t))
		b.WriteString("\n")
	}

	footer := fmt.Sprintf("%d total tasks", snap.Stats.Total)
	if snap.Stats.Completed > 0 {
		footer += "   c: clear completed"
	}
	b.WriteString(footerStyle.Render(footer))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.helpLine()))
	return b.String()
}

func (m Model) renderRow(i int, t domain.Task) string {
	pointer := "  "
	if m.focus == focusList && i == m.cursor {
		pointer = cursorStyle.Render("> ")
	}
	check := "[ ]"
	text := t.Text
	if t.Completed {
		check = "[x]"
		text = doneTextStyle.Render(text)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		pointer, check, " ", text, "  ", timestampStyle.Render(t.Timestamp))
}

func renderFilters(active domain.Filter) string {
	parts := make([]string, 0, len(domain.Filters))
	for i, f := range domain.Filters {
		label := fmt.Sprintf("%d %s", i+1, f.Title())
		if f == active {
			parts = append(parts, filterActiveStyle.Render(label))
		} else {
			parts = append(parts, filterStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) helpLine() string {
	if m.focus == focusInput {
		return "enter add · tab list · ctrl+c quit"
	}
	return "↑/↓ move · space toggle · d delete · 1/2/3 filter · tab new task · q quit"
}

func emptyHint(f domain.Filter) string {
	if f == domain.FilterAll {
		return "Add a new task to get started!"
	}
	return fmt.Sprintf("No %s tasks", f)
}

func at(tasks []domain.Task, i int) (domain.Task, bool) {
	if i < 0 || i >= len(tasks) {
		return domain.Task{}, false
	}
	return tasks[i], true
}

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
