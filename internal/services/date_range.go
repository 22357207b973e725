package services

import (
	"time"

	"todo-list.com/todo-list/internal/constants"
	apperrors "todo-list.com/todo-list/internal/errors"
)

// RangeStart returns the inclusive lower creation-time bound for query,
// evaluated in now's location. DateAll yields the zero time (no bound).
func RangeStart(query constants.DateQuery, now time.Time) (time.Time, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch query {
	case constants.DateToday:
		return midnight, nil
	case constants.DateWeek:
		// weeks start on Monday
		offset := (int(midnight.Weekday()) + 6) % 7
		return midnight.AddDate(0, 0, -offset), nil
	case constants.DateMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	case constants.DateAll:
		return time.Time{}, nil
	}

	return time.Time{}, apperrors.ErrInvalidDateQuery
}
