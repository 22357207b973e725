package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"todo-list.com/todo-list/internal/constants"
	"todo-list.com/todo-list/internal/tasklist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 12
		return m, nil

	case syncedMsg:
		m.collection = m.controller.Collection()
		m.reproject()
		return m, nil

	case fetchedMsg:
		if m.fetching > 0 {
			m.fetching--
		}
		m.collection = m.controller.Collection()
		// once nothing is in flight the label follows the range actually shown
		if m.fetching == 0 && m.state.DateQuery != m.collection.DateQuery {
			m.state.DateQuery = m.collection.DateQuery
		}
		m.reproject()
		return m, nil

	case toastMsg:
		n := tasklist.Notification(msg)
		m.toastSeq++
		seq := m.toastSeq
		m.toast = &n
		return m, tea.Batch(m.waitForToast(), tea.Tick(toastTTL, func(time.Time) tea.Msg {
			return clearToastMsg{seq: seq}
		}))

	case clearToastMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode != modeList {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.view.Tasks)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.PrevPage):
		m.state.Prev()
		m.cursor = 0
		m.reproject()

	case key.Matches(msg, m.keys.NextPage):
		m.state.Next(m.view.TotalPages)
		m.cursor = 0
		m.reproject()

	case key.Matches(msg, m.keys.FirstPage):
		m.state.GoTo(1, m.view.TotalPages)
		m.cursor = 0
		m.reproject()

	case key.Matches(msg, m.keys.LastPage):
		m.state.GoTo(m.view.TotalPages, m.view.TotalPages)
		m.cursor = 0
		m.reproject()

	case key.Matches(msg, m.keys.NextFilter):
		m.setFilter(m.state.Filter.Next())

	case key.Matches(msg, m.keys.FilterAll):
		m.setFilter(constants.FilterAll)

	case key.Matches(msg, m.keys.FilterAct):
		m.setFilter(constants.FilterActive)

	case key.Matches(msg, m.keys.FilterDone):
		m.setFilter(constants.FilterCompleted)

	case key.Matches(msg, m.keys.DateRange):
		if m.state.SetDateQuery(m.state.DateQuery.Next()) {
			m.cursor = 0
			m.reproject()
			return m, m.startFetch()
		}

	case key.Matches(msg, m.keys.Refresh):
		return m, m.startFetch()

	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Edit):
		task, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.mode = modeEdit
		m.editingID = task.ID
		m.input.SetValue(task.Title)
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Toggle):
		if task, ok := m.selected(); ok {
			return m, m.toggleStatus(task)
		}

	case key.Matches(msg, m.keys.Delete):
		if task, ok := m.selected(); ok {
			return m, m.deleteTask(task.ID)
		}
	}

	return m, nil
}

// updateInput drives the add and inline edit prompts. Escape abandons the
// draft; the card keeps showing the last server title.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		m.closeInput()
		return m, nil

	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		editing, id := m.mode == modeEdit, m.editingID
		m.closeInput()
		if editing {
			return m, m.updateTitle(id, value)
		}
		return m, m.createTask(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.mode = modeList
	m.editingID = ""
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) setFilter(filter constants.TaskFilter) {
	m.state.SetFilter(filter)
	m.cursor = 0
	m.reproject()
}
