package validators

import (
	"strings"

	dto "todo-list.com/todo-list/internal/data_models"
	apperrors "todo-list.com/todo-list/internal/errors"
)

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if r.IsEmpty() {
		return apperrors.ErrEmptyUpdate
	}
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return apperrors.ErrTitleRequired
	}
	if r.Status != nil && !r.Status.IsValid() {
		return apperrors.ErrInvalidStatus
	}
	return nil
}
