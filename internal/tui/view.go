package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todo-list.com/todo-list/internal/constants"
	"todo-list.com/todo-list/internal/tasklist"
	model "todo-list.com/todo-list/pkg/models"
)

const timeLayout = "Jan 2 15:04"

func (m Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderInput(),
		m.renderStats(),
		m.renderTasks(),
		m.renderPagination(),
		m.renderFooter(),
		m.renderToast(),
		m.help.View(m.keys),
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderHeader() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("todo"),
		taglineStyle.Render("Stay on top of today."),
	)
}

func (m Model) renderInput() string {
	switch m.mode {
	case modeAdd:
		return inputBoxStyle.Render("Add  " + m.input.View())
	case modeEdit:
		return inputBoxStyle.Render("Edit " + m.input.View())
	}
	return subtleStyle.Render("press a to add a task")
}

func (m Model) renderStats() string {
	tabs := make([]string, 0, len(constants.TaskFilters))
	for i, filter := range constants.TaskFilters {
		label := fmt.Sprintf("%d %s", i+1, filter)
		if filter == m.state.Filter {
			tabs = append(tabs, activeTab.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}

	counts := fmt.Sprintf("%s active  %s completed",
		countStyle.Render(fmt.Sprint(m.collection.ActiveCount)),
		countStyle.Render(fmt.Sprint(m.collection.CompleteCount)),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		counts,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
	)
}

func (m Model) renderTasks() string {
	if m.fetching > 0 && len(m.collection.Tasks) == 0 {
		return subtleStyle.Render("Loading...")
	}
	if len(m.view.Tasks) == 0 {
		return subtleStyle.Render(emptyMessage(m.state.Filter))
	}

	width := m.width - 8
	if width < 30 {
		width = 30
	}

	cards := make([]string, len(m.view.Tasks))
	for i, task := range m.view.Tasks {
		cards[i] = renderCard(task, m.view.Offset+i+1, i == m.cursor, width)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func renderCard(task model.Task, index int, selected bool, width int) string {
	marker := "[ ]"
	title := task.Title
	if task.IsComplete() {
		marker = "[x]"
		title = doneTitle.Render(title)
	}

	meta := "created " + task.CreatedAt.Local().Format(timeLayout)
	if task.CompletedAt != nil {
		meta += "  completed " + task.CompletedAt.Local().Format(timeLayout)
	}

	body := fmt.Sprintf("%s %d. %s\n%s", marker, index, title, subtleStyle.Render(meta))

	style := cardStyle
	if selected {
		style = selectedCard
	}
	return style.Width(width).Render(body)
}

func emptyMessage(filter constants.TaskFilter) string {
	switch filter {
	case constants.FilterActive:
		return "No active tasks."
	case constants.FilterCompleted:
		return "No completed tasks yet."
	}
	return "No tasks yet. Add your first one."
}

func (m Model) renderPagination() string {
	pages := m.view.TotalPages
	if pages == 0 {
		pages = 1
	}
	return subtleStyle.Render(fmt.Sprintf("page %d of %d  |  %s", m.view.Page, pages, m.state.DateQuery.Label()))
}

func (m Model) renderFooter() string {
	return footerStyle.Render(footerText(m.collection))
}

func footerText(c tasklist.Collection) string {
	total := c.ActiveCount + c.CompleteCount
	switch {
	case total == 0:
		return "Nothing planned yet."
	case c.ActiveCount == 0:
		return fmt.Sprintf("All %d tasks done. Nice work!", total)
	case c.CompleteCount == 0:
		return fmt.Sprintf("%d tasks to go. Let's get started.", c.ActiveCount)
	}
	return fmt.Sprintf("%d completed, %d to go.", c.CompleteCount, c.ActiveCount)
}

func (m Model) renderToast() string {
	if m.toast == nil {
		return ""
	}
	if m.toast.Kind == tasklist.KindError {
		return errorStyle.Render("✗ " + m.toast.Message)
	}
	return successStyle.Render("✓ " + strings.TrimSpace(m.toast.Message))
}
