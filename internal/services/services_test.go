package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"todo-list.com/todo-list/internal/constants"
	dto "todo-list.com/todo-list/internal/data_models"
	apperrors "todo-list.com/todo-list/internal/errors"
	repository "todo-list.com/todo-list/internal/repositories"
	model "todo-list.com/todo-list/pkg/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(&model.Task{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// fixedClock returns Wednesday 2025-03-12 15:00 UTC.
func fixedClock() time.Time {
	return time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T) (*TaskService, *repository.TaskRepository) {
	repo := repository.NewTaskRepository(setupTestDB(t))
	return NewTaskService(repo).WithClock(fixedClock), repo
}

func TestTaskService_CreateAndGet(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	task, err := service.CreateTask(ctx, "  Buy milk  ")
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, constants.StatusActive, task.Status)
	assert.Nil(t, task.CompletedAt)
	assert.True(t, task.CreatedAt.Equal(fixedClock()))

	fetched, err := service.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, fetched.ID)
}

func TestTaskService_CreateRejectsBlankTitle(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.CreateTask(context.Background(), "   ")
	assert.ErrorIs(t, err, apperrors.ErrTitleRequired)
}

func TestTaskService_ListTasksByDateQuery(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()
	now := fixedClock()

	created := map[string]time.Time{
		"today":      now.Add(-time.Hour),
		"monday":     time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		"this-month": time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC),
		"last-year":  time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}
	for title, at := range created {
		_, err := repo.CreateTask(ctx, title, at)
		require.NoError(t, err)
	}

	cases := []struct {
		query constants.DateQuery
		want  []string
	}{
		{constants.DateToday, []string{"today"}},
		{constants.DateWeek, []string{"today", "monday"}},
		{constants.DateMonth, []string{"today", "monday", "this-month"}},
		{constants.DateAll, []string{"today", "monday", "this-month", "last-year"}},
	}

	for _, tc := range cases {
		t.Run(string(tc.query), func(t *testing.T) {
			res, err := service.ListTasks(ctx, tc.query)
			require.NoError(t, err)

			titles := make([]string, 0, len(res.Tasks))
			for _, task := range res.Tasks {
				titles = append(titles, task.Title)
			}
			assert.Equal(t, tc.want, titles, "newest first")
			assert.Equal(t, int64(len(tc.want)), res.ActiveCount)
			assert.Zero(t, res.CompleteCount)
		})
	}

	_, err := service.ListTasks(ctx, constants.DateQuery("yesterday"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidDateQuery)
}

func TestTaskService_CountsCoverWholeRange(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 7; i++ {
		task, err := service.CreateTask(ctx, fmt.Sprintf("task %d", i))
		require.NoError(t, err)
		ids = append(ids, task.ID)
	}

	complete := constants.StatusComplete
	for _, id := range ids[:3] {
		_, err := service.UpdateTask(ctx, id, dto.UpdateTaskRequest{
			Status:      &complete,
			CompletedAt: dto.TimeOf(fixedClock()),
		})
		require.NoError(t, err)
	}

	res, err := service.ListTasks(ctx, constants.DateToday)
	require.NoError(t, err)
	assert.Len(t, res.Tasks, 7)
	assert.Equal(t, int64(4), res.ActiveCount)
	assert.Equal(t, int64(3), res.CompleteCount)
}

func TestTaskService_UpdateTask(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	task, err := service.CreateTask(ctx, "Write report")
	require.NoError(t, err)

	title := "Write final report"
	updated, err := service.UpdateTask(ctx, task.ID, dto.UpdateTaskRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, constants.StatusActive, updated.Status, "status untouched by title update")

	complete := constants.StatusComplete
	updated, err = service.UpdateTask(ctx, task.ID, dto.UpdateTaskRequest{
		Status:      &complete,
		CompletedAt: dto.TimeOf(fixedClock()),
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusComplete, updated.Status)
	require.NotNil(t, updated.CompletedAt)
	assert.True(t, updated.CompletedAt.Equal(fixedClock()))

	active := constants.StatusActive
	updated, err = service.UpdateTask(ctx, task.ID, dto.UpdateTaskRequest{
		Status:      &active,
		CompletedAt: dto.NullTime(),
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusActive, updated.Status)
	assert.Nil(t, updated.CompletedAt)
	assert.Equal(t, title, updated.Title)
}

func TestTaskService_UpdateTaskErrors(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	task, err := service.CreateTask(ctx, "x")
	require.NoError(t, err)

	_, err = service.UpdateTask(ctx, task.ID, dto.UpdateTaskRequest{})
	assert.ErrorIs(t, err, apperrors.ErrEmptyUpdate)

	blank := " "
	_, err = service.UpdateTask(ctx, task.ID, dto.UpdateTaskRequest{Title: &blank})
	assert.ErrorIs(t, err, apperrors.ErrTitleRequired)

	bogus := constants.TaskStatus("archived")
	_, err = service.UpdateTask(ctx, task.ID, dto.UpdateTaskRequest{Status: &bogus})
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)

	title := "y"
	_, err = service.UpdateTask(ctx, "missing", dto.UpdateTaskRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)

	_, err = service.UpdateTask(ctx, "", dto.UpdateTaskRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrTaskIDRequired)
}

func TestTaskService_DeleteTask(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	task, err := service.CreateTask(ctx, "Throw away")
	require.NoError(t, err)

	require.NoError(t, service.DeleteTask(ctx, task.ID))

	_, err = service.GetTask(ctx, task.ID)
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)

	assert.ErrorIs(t, service.DeleteTask(ctx, task.ID), apperrors.ErrTaskNotFound)
}

func TestTaskService_ConcurrentCreates(t *testing.T) {
	service, _ := newTestService(t)

	const concurrentCount = 30
	var wg sync.WaitGroup
	wg.Add(concurrentCount)

	errs := make(chan error, concurrentCount)

	for i := 0; i < concurrentCount; i++ {
		go func(idx int) {
			defer wg.Done()
			if _, err := service.CreateTask(context.Background(), fmt.Sprintf("Title %d", idx)); err != nil {
				errs <- err
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent creation failed: %v", err)
	}

	res, err := service.ListTasks(context.Background(), constants.DateAll)
	require.NoError(t, err)
	assert.Len(t, res.Tasks, concurrentCount)
}
