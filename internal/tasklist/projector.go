package tasklist

import (
	"todo-list.com/todo-list/internal/constants"
	model "todo-list.com/todo-list/pkg/models"
)

const DefaultPageSize = 5

// View is the rendered slice of the collection.
type View struct {
	Tasks      []model.Task
	Page       int
	TotalPages int
	// Matched is the number of tasks passing the filter across all pages.
	Matched int
	// Offset is the index of Tasks[0] within the filtered list.
	Offset int
}

// Projector derives the visible page from the authoritative task list.
// It holds no state besides the page capacity.
type Projector struct {
	PageSize int
}

func NewProjector(pageSize int) Projector {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Projector{PageSize: pageSize}
}

// Filter keeps the tasks matching filter, preserving source order.
// The result never aliases tasks.
func (p Projector) Filter(tasks []model.Task, filter constants.TaskFilter) []model.Task {
	filtered := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if filter.Matches(task.Status) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

func (p Projector) TotalPages(matched int) int {
	size := p.size()
	return (matched + size - 1) / size
}

// Project returns the page of tasks for filter and page. When the requested
// page is past the end it walks back until a page has content or page 1 is
// reached; an empty filtered list stays on page 1 with no pages.
func (p Projector) Project(tasks []model.Task, filter constants.TaskFilter, page int) View {
	filtered := p.Filter(tasks, filter)
	totalPages := p.TotalPages(len(filtered))

	if page < 1 {
		page = 1
	}
	// every page past totalPages+1 is empty too, so the walk can start there
	if page > totalPages+1 {
		page = totalPages + 1
	}

	visible, offset := p.slice(filtered, page)
	for len(visible) == 0 && page > 1 {
		page--
		visible, offset = p.slice(filtered, page)
	}

	return View{
		Tasks:      visible,
		Page:       page,
		TotalPages: totalPages,
		Matched:    len(filtered),
		Offset:     offset,
	}
}

// ProjectState is Project driven by a ViewState.
func (p Projector) ProjectState(tasks []model.Task, state *ViewState) View {
	return p.Project(tasks, state.Filter, state.Page)
}

func (p Projector) slice(filtered []model.Task, page int) ([]model.Task, int) {
	size := p.size()
	start := (page - 1) * size
	if start >= len(filtered) {
		return []model.Task{}, start
	}

	end := start + size
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end:end], start
}

func (p Projector) size() int {
	if p.PageSize <= 0 {
		return DefaultPageSize
	}
	return p.PageSize
}
