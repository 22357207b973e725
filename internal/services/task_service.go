package services

import (
	"context"
	"strings"
	"time"

	"todo-list.com/todo-list/internal/constants"
	dto "todo-list.com/todo-list/internal/data_models"
	apperrors "todo-list.com/todo-list/internal/errors"
	repository "todo-list.com/todo-list/internal/repositories"
	model "todo-list.com/todo-list/pkg/models"
)

type TaskService struct {
	repo *repository.TaskRepository
	now  func() time.Time
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{
		repo: repo,
		now:  time.Now,
	}
}

// WithClock replaces the time source used for creation stamps and date ranges.
func (s *TaskService) WithClock(now func() time.Time) *TaskService {
	s.now = now
	return s
}

func (s *TaskService) ListTasks(ctx context.Context, query constants.DateQuery) (*dto.ListTasksResponse, error) {
	since, err := RangeStart(query, s.now())
	if err != nil {
		return nil, err
	}

	tasks, err := s.repo.List(ctx, since)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.CountByStatus(ctx, since)
	if err != nil {
		return nil, err
	}

	return &dto.ListTasksResponse{
		Tasks:         tasks,
		ActiveCount:   counts.Active,
		CompleteCount: counts.Complete,
	}, nil
}

func (s *TaskService) CreateTask(ctx context.Context, title string) (*model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.ErrTitleRequired
	}

	return s.repo.CreateTask(ctx, title, s.now())
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*model.Task, error) {
	if id == "" {
		return nil, apperrors.ErrTaskIDRequired
	}
	return s.repo.FindByID(ctx, id)
}

// UpdateTask applies a partial update. Keeping completedAt consistent with
// status is the caller's job; both are written as sent.
func (s *TaskService) UpdateTask(ctx context.Context, id string, req dto.UpdateTaskRequest) (*model.Task, error) {
	if id == "" {
		return nil, apperrors.ErrTaskIDRequired
	}

	fields, err := updateFields(req)
	if err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, fields)
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.ErrTaskIDRequired
	}
	return s.repo.Delete(ctx, id)
}

func updateFields(req dto.UpdateTaskRequest) (map[string]interface{}, error) {
	if req.IsEmpty() {
		return nil, apperrors.ErrEmptyUpdate
	}

	fields := make(map[string]interface{}, 3)

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.ErrTitleRequired
		}
		fields["title"] = title
	}

	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		fields["status"] = *req.Status
	}

	if req.CompletedAt.Set {
		if req.CompletedAt.Value == nil {
			fields["completed_at"] = nil
		} else {
			fields["completed_at"] = req.CompletedAt.Value.UTC()
		}
	}

	return fields, nil
}
