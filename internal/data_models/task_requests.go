package data_models

import (
	"todo-list.com/todo-list/internal/constants"
	model "todo-list.com/todo-list/pkg/models"
)

type CreateTaskRequest struct {
	Title string `json:"title"`
}

// UpdateTaskRequest is a partial update; nil fields are left untouched.
type UpdateTaskRequest struct {
	Title       *string               `json:"title,omitempty"`
	Status      *constants.TaskStatus `json:"status,omitempty"`
	CompletedAt NullableTime          `json:"completedAt,omitzero"`
}

func (r UpdateTaskRequest) IsEmpty() bool {
	return r.Title == nil && r.Status == nil && !r.CompletedAt.Set
}

type ListTasksResponse struct {
	Tasks         []model.Task `json:"tasks"`
	ActiveCount   int64        `json:"activeCount"`
	CompleteCount int64        `json:"completeCount"`
}
