package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todo-list.com/todo-list/internal/constants"
	apperrors "todo-list.com/todo-list/internal/errors"
	model "todo-list.com/todo-list/pkg/models"
)

type TaskRepository struct {
	db *gorm.DB
}

// StatusCounts holds per-status totals for a date range.
type StatusCounts struct {
	Active   int64
	Complete int64
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(ctx context.Context, title string, createdAt time.Time) (*model.Task, error) {
	task := &model.Task{
		ID:        uuid.NewString(),
		Title:     title,
		Status:    constants.StatusActive,
		CreatedAt: createdAt.UTC(),
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// List returns tasks created at or after since, newest first.
// A zero since means no lower bound.
func (r *TaskRepository) List(ctx context.Context, since time.Time) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	err := r.scoped(ctx, since).Order("created_at desc").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) CountByStatus(ctx context.Context, since time.Time) (StatusCounts, error) {
	var rows []struct {
		Status constants.TaskStatus
		Total  int64
	}

	err := r.scoped(ctx, since).
		Model(&model.Task{}).
		Select("status, count(*) as total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return StatusCounts{}, err
	}

	var counts StatusCounts
	for _, row := range rows {
		switch row.Status {
		case constants.StatusActive:
			counts.Active = row.Total
		case constants.StatusComplete:
			counts.Complete = row.Total
		}
	}
	return counts, nil
}

// Update applies the given column values and returns the stored task.
func (r *TaskRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*model.Task, error) {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Updates(fields)

	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		return nil, apperrors.ErrTaskNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) scoped(ctx context.Context, since time.Time) *gorm.DB {
	query := r.db.WithContext(ctx)
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since.UTC())
	}
	return query
}
