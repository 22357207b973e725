// Package tasklist holds the client-side task list: the controller that owns
// the server-fetched collection and the projector that derives the visible page.
package tasklist

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"todo-list.com/todo-list/internal/constants"
	dto "todo-list.com/todo-list/internal/data_models"
	model "todo-list.com/todo-list/pkg/models"
)

// TaskAPI is the remote task service.
type TaskAPI interface {
	ListTasks(ctx context.Context, query constants.DateQuery) (*dto.ListTasksResponse, error)
	CreateTask(ctx context.Context, title string) (*model.Task, error)
	UpdateTask(ctx context.Context, id string, req dto.UpdateTaskRequest) (*model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// Collection is the last applied server response for one date range.
type Collection struct {
	Tasks         []model.Task
	ActiveCount   int64
	CompleteCount int64
	DateQuery     constants.DateQuery
}

// Controller is the only issuer of task mutations. Every successful mutation
// is followed by a full refetch of the current date range; nothing is patched
// locally.
type Controller struct {
	api      TaskAPI
	notifier Notifier
	logger   *log.Logger
	now      func() time.Time

	mu         sync.Mutex
	collection Collection
	issued     uint64
	applied    uint64
}

type Option func(*Controller)

func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func NewController(api TaskAPI, notifier Notifier, dateQuery constants.DateQuery, opts ...Option) *Controller {
	if notifier == nil {
		notifier = NotifierFunc(func(Kind, string) {})
	}
	if !dateQuery.IsValid() {
		dateQuery = constants.DateToday
	}

	c := &Controller{
		api:      api,
		notifier: notifier,
		logger:   log.Default(),
		now:      time.Now,
		collection: Collection{
			Tasks:     []model.Task{},
			DateQuery: dateQuery,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collection returns a copy of the current state.
func (c *Controller) Collection() Collection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// DateQuery is the range of the last applied fetch. Mutations resync it.
func (c *Controller) DateQuery() constants.DateQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.collection.DateQuery
}

// FetchTasks loads the collection for dateQuery. Once applied, dateQuery becomes
// the current range; a failed fetch leaves both the tasks and the range as they were.
// Responses that resolve after a newer fetch was applied are dropped, and their
// failures are not reported to the user.
func (c *Controller) FetchTasks(ctx context.Context, dateQuery constants.DateQuery) (Collection, error) {
	c.mu.Lock()
	c.issued++
	seq := c.issued
	c.mu.Unlock()

	res, err := c.api.ListTasks(ctx, dateQuery)

	c.mu.Lock()
	stale := seq < c.applied
	if err != nil || stale {
		snap := c.snapshot()
		c.mu.Unlock()

		if err == nil {
			c.logger.Debug("dropping stale task list", "seq", seq, "filter", dateQuery)
			return snap, nil
		}

		c.logger.Error("fetch tasks failed", "filter", dateQuery, "stale", stale, "err", err)
		if !stale {
			c.notifier.Notify(KindError, "Failed to fetch tasks.")
		}
		return snap, &OperationError{Kind: FetchFailed, Err: err}
	}

	tasks := make([]model.Task, len(res.Tasks))
	copy(tasks, res.Tasks)
	c.collection = Collection{
		Tasks:         tasks,
		ActiveCount:   res.ActiveCount,
		CompleteCount: res.CompleteCount,
		DateQuery:     dateQuery,
	}
	c.applied = seq
	snap := c.snapshot()
	c.mu.Unlock()

	return snap, nil
}

// Refresh refetches the current date range.
func (c *Controller) Refresh(ctx context.Context) (Collection, error) {
	return c.FetchTasks(ctx, c.DateQuery())
}

// CreateTask creates a task titled title. Blank titles are rejected without a request.
func (c *Controller) CreateTask(ctx context.Context, title string) (*model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		c.notifier.Notify(KindError, "Task title cannot be empty.")
		return nil, ErrTitleRequired
	}

	task, err := c.api.CreateTask(ctx, title)
	if err != nil {
		c.logger.Error("create task failed", "title", title, "err", err)
		c.notifier.Notify(KindError, "Failed to add task.")
		return nil, &OperationError{Kind: CreateFailed, Err: err}
	}

	c.notifier.Notify(KindSuccess, fmt.Sprintf("Task %q added.", task.Title))
	c.resync(ctx)

	return task, nil
}

// UpdateTitle renames a task. On failure the caller should show the last
// server value again.
func (c *Controller) UpdateTitle(ctx context.Context, taskID, newTitle string) error {
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		c.notifier.Notify(KindError, "Task title cannot be empty.")
		return ErrTitleRequired
	}

	if _, err := c.api.UpdateTask(ctx, taskID, dto.UpdateTaskRequest{Title: &newTitle}); err != nil {
		c.logger.Error("update task failed", "id", taskID, "err", err)
		c.notifier.Notify(KindError, "Failed to update task.")
		return &OperationError{Kind: UpdateFailed, Err: err}
	}

	c.notifier.Notify(KindSuccess, fmt.Sprintf("Task renamed to %q.", newTitle))
	c.resync(ctx)

	return nil
}

// ToggleStatus flips the task's observed status, sending status and
// completedAt together so the pair stays consistent.
func (c *Controller) ToggleStatus(ctx context.Context, task model.Task) error {
	req := ToggleRequest(task, c.now())

	if _, err := c.api.UpdateTask(ctx, task.ID, req); err != nil {
		c.logger.Error("toggle task status failed", "id", task.ID, "err", err)
		c.notifier.Notify(KindError, "Failed to update task status.")
		return &OperationError{Kind: UpdateFailed, Err: err}
	}

	if *req.Status == constants.StatusComplete {
		c.notifier.Notify(KindSuccess, fmt.Sprintf("Task %q completed.", task.Title))
	} else {
		c.notifier.Notify(KindSuccess, fmt.Sprintf("Task %q marked as not completed.", task.Title))
	}
	c.resync(ctx)

	return nil
}

func (c *Controller) DeleteTask(ctx context.Context, taskID string) error {
	if err := c.api.DeleteTask(ctx, taskID); err != nil {
		c.logger.Error("delete task failed", "id", taskID, "err", err)
		c.notifier.Notify(KindError, "Failed to delete task.")
		return &OperationError{Kind: DeleteFailed, Err: err}
	}

	c.notifier.Notify(KindSuccess, "Task deleted.")
	c.resync(ctx)

	return nil
}

// ToggleRequest builds the complementary status/completedAt pair for task.
func ToggleRequest(task model.Task, now time.Time) dto.UpdateTaskRequest {
	status := task.Status.Toggled()
	req := dto.UpdateTaskRequest{Status: &status}

	if status == constants.StatusComplete {
		req.CompletedAt = dto.TimeOf(now.UTC())
	} else {
		req.CompletedAt = dto.NullTime()
	}
	return req
}

// resync refetches after a successful mutation. Its failure is reported on
// its own and does not turn the mutation into a failure.
func (c *Controller) resync(ctx context.Context) {
	_, _ = c.Refresh(ctx)
}

func (c *Controller) snapshot() Collection {
	out := c.collection
	out.Tasks = make([]model.Task, len(c.collection.Tasks))
	copy(out.Tasks, c.collection.Tasks)
	return out
}
