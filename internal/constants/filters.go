package constants

// TaskFilter selects which statuses are visible in the task list.
type TaskFilter string

const (
	FilterAll       TaskFilter = "all"
	FilterActive    TaskFilter = "active"
	FilterCompleted TaskFilter = "completed"
)

var TaskFilters = []TaskFilter{FilterAll, FilterActive, FilterCompleted}

func (f TaskFilter) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	}
	return false
}

// Matches reports whether a task with the given status passes the filter.
// Unknown filters behave like FilterAll.
func (f TaskFilter) Matches(status TaskStatus) bool {
	switch f {
	case FilterActive:
		return status == StatusActive
	case FilterCompleted:
		return status == StatusComplete
	default:
		return true
	}
}

// Next cycles all -> active -> completed -> all.
func (f TaskFilter) Next() TaskFilter {
	for i, candidate := range TaskFilters {
		if candidate == f {
			return TaskFilters[(i+1)%len(TaskFilters)]
		}
	}
	return FilterAll
}
