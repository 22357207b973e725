package model

import (
	"time"

	"todo-list.com/todo-list/internal/constants"
)

// Task is a single to-do item. CompletedAt is set iff Status is complete.
type Task struct {
	ID          string               `gorm:"primaryKey;size:36" json:"id"`
	Title       string               `gorm:"not null" json:"title"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt   time.Time            `gorm:"index" json:"createdAt"`
	CompletedAt *time.Time           `json:"completedAt"`
}

func (t Task) IsComplete() bool {
	return t.Status == constants.StatusComplete
}
