// Package tui renders the task list home page in the terminal.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todo-list.com/todo-list/internal/constants"
	"todo-list.com/todo-list/internal/tasklist"
	model "todo-list.com/todo-list/pkg/models"
)

const toastTTL = 4 * time.Second

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

// Model is the home page: header, add input, stats and filters, the task
// cards of the current page, pagination, date range and footer.
type Model struct {
	controller *tasklist.Controller
	projector  tasklist.Projector
	state      *tasklist.ViewState
	toasts     <-chan tasklist.Notification

	collection tasklist.Collection
	view       tasklist.View
	cursor     int
	// fetching counts list requests in flight
	fetching int

	mode      mode
	input     textinput.Model
	editingID string

	toast    *tasklist.Notification
	toastSeq int

	keys   keyMap
	help   help.Model
	width  int
	height int
}

// syncedMsg reports that a mutation finished; the controller already holds
// the resynced collection.
type syncedMsg struct{ err error }

// fetchedMsg reports that a list request finished, applied or not.
type fetchedMsg struct{ err error }

type toastMsg tasklist.Notification

type clearToastMsg struct{ seq int }

func NewModel(controller *tasklist.Controller, toasts <-chan tasklist.Notification, pageSize int) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 256

	m := Model{
		controller: controller,
		projector:  tasklist.NewProjector(pageSize),
		state:      tasklist.NewViewState(controller.DateQuery()),
		toasts:     toasts,
		collection: controller.Collection(),
		// Init issues the first fetch
		fetching:   1,
		input:      ti,
		keys:       newKeyMap(),
		help:       help.New(),
	}
	m.reproject()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(m.state.DateQuery), m.waitForToast())
}

func (m Model) fetch(query constants.DateQuery) tea.Cmd {
	c := m.controller
	return func() tea.Msg {
		_, err := c.FetchTasks(context.Background(), query)
		return fetchedMsg{err: err}
	}
}

func (m *Model) startFetch() tea.Cmd {
	m.fetching++
	return m.fetch(m.state.DateQuery)
}

func (m Model) createTask(title string) tea.Cmd {
	c := m.controller
	return func() tea.Msg {
		_, err := c.CreateTask(context.Background(), title)
		return syncedMsg{err: err}
	}
}

func (m Model) updateTitle(id, title string) tea.Cmd {
	c := m.controller
	return func() tea.Msg {
		return syncedMsg{err: c.UpdateTitle(context.Background(), id, title)}
	}
}

func (m Model) toggleStatus(task model.Task) tea.Cmd {
	c := m.controller
	return func() tea.Msg {
		return syncedMsg{err: c.ToggleStatus(context.Background(), task)}
	}
}

func (m Model) deleteTask(id string) tea.Cmd {
	c := m.controller
	return func() tea.Msg {
		return syncedMsg{err: c.DeleteTask(context.Background(), id)}
	}
}

func (m Model) waitForToast() tea.Cmd {
	if m.toasts == nil {
		return nil
	}
	ch := m.toasts
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return toastMsg(n)
	}
}

// reproject derives the visible page and keeps the cursor on it.
func (m *Model) reproject() {
	m.view = m.projector.ProjectState(m.collection.Tasks, m.state)
	m.state.Apply(m.view)

	if m.cursor >= len(m.view.Tasks) {
		m.cursor = len(m.view.Tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selected() (model.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Tasks) {
		return model.Task{}, false
	}
	return m.view.Tasks[m.cursor], true
}
