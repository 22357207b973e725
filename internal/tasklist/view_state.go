package tasklist

import "todo-list.com/todo-list/internal/constants"

// ViewState is the UI-local selection: status filter, date range and 1-based page.
// It is owned by the view and passed to the projector explicitly.
type ViewState struct {
	Filter    constants.TaskFilter
	DateQuery constants.DateQuery
	Page      int
}

func NewViewState(dateQuery constants.DateQuery) *ViewState {
	if !dateQuery.IsValid() {
		dateQuery = constants.DateToday
	}
	return &ViewState{
		Filter:    constants.FilterAll,
		DateQuery: dateQuery,
		Page:      1,
	}
}

// SetFilter changes the status filter and resets to the first page.
func (s *ViewState) SetFilter(filter constants.TaskFilter) {
	s.Filter = filter
	s.Page = 1
}

// SetDateQuery changes the date range and resets to the first page.
// It reports whether the query changed, which callers use to trigger a fetch.
func (s *ViewState) SetDateQuery(query constants.DateQuery) bool {
	changed := s.DateQuery != query
	s.DateQuery = query
	s.Page = 1
	return changed
}

func (s *ViewState) Next(totalPages int) {
	if s.Page >= totalPages {
		return
	}
	s.Page++
}

func (s *ViewState) Prev() {
	if s.Page <= 1 {
		return
	}
	s.Page--
}

// GoTo clamps n into [1, totalPages]. With no pages the cursor stays at 1.
func (s *ViewState) GoTo(n, totalPages int) {
	if n > totalPages {
		n = totalPages
	}
	if n < 1 {
		n = 1
	}
	s.Page = n
}

// Apply stores the page the projector settled on.
func (s *ViewState) Apply(v View) {
	s.Page = v.Page
}
