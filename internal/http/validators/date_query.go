package validators

import (
	"todo-list.com/todo-list/internal/constants"
	apperrors "todo-list.com/todo-list/internal/errors"
)

func ValidateDateQuery(q constants.DateQuery) error {
	if !q.IsValid() {
		return apperrors.ErrInvalidDateQuery
	}
	return nil
}
