package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"todo-list.com/todo-list/internal/constants"
	dto "todo-list.com/todo-list/internal/data_models"
	httpapi "todo-list.com/todo-list/internal/http"
	repository "todo-list.com/todo-list/internal/repositories"
	"todo-list.com/todo-list/internal/services"
	"todo-list.com/todo-list/internal/tasklist"
	model "todo-list.com/todo-list/pkg/models"
)

func setupTestAPI(t *testing.T) *Client {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Task{}))

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	e := echo.New()
	e.HideBanner = true
	httpapi.Register(e, httpapi.NewHandler(services.NewTaskService(repository.NewTaskRepository(db))), nil)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, 5*time.Second)
	require.NoError(t, err)
	return c.WithHTTPClient(srv.Client())
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	_, err := New("localhost:8080", time.Second)
	assert.Error(t, err)

	_, err = New("/tasks", time.Second)
	assert.Error(t, err)
}

func TestClient_CRUD(t *testing.T) {
	c := setupTestAPI(t)
	ctx := context.Background()

	task, err := c.CreateTask(ctx, "write report")
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, constants.StatusActive, task.Status)

	res, err := c.ListTasks(ctx, constants.DateAll)
	require.NoError(t, err)
	require.Len(t, res.Tasks, 1)
	assert.Equal(t, int64(1), res.ActiveCount)

	title := "write final report"
	updated, err := c.UpdateTask(ctx, task.ID, dto.UpdateTaskRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)

	require.NoError(t, c.DeleteTask(ctx, task.ID))

	res, err = c.ListTasks(ctx, constants.DateAll)
	require.NoError(t, err)
	assert.NotNil(t, res.Tasks)
	assert.Empty(t, res.Tasks)
}

func TestClient_APIErrors(t *testing.T) {
	c := setupTestAPI(t)
	ctx := context.Background()

	err := c.DeleteTask(ctx, "missing")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Message)

	_, err = c.ListTasks(ctx, constants.DateQuery("yesterday"))
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestClient_UsesInjectedHTTPClient(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.RequestURI())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tasks":null,"activeCount":0,"completeCount":0}`))
	}))
	t.Cleanup(srv.Close)

	c, err := New("http://tasks.invalid", time.Second)
	require.NoError(t, err)

	transport := srv.Client().Transport
	c.WithHTTPClient(&http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		r.URL.Scheme, r.URL.Host = "http", strings.TrimPrefix(srv.URL, "http://")
		return transport.RoundTrip(r)
	})})

	res, err := c.ListTasks(context.Background(), constants.DateWeek)
	require.NoError(t, err)
	assert.NotNil(t, res.Tasks)
	assert.Equal(t, []string{"GET /tasks?filter=week"}, seen)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New(url, time.Second)
	require.NoError(t, err)

	_, err = c.ListTasks(context.Background(), constants.DateToday)
	require.Error(t, err)
	var apiErr *APIError
	assert.NotErrorAs(t, err, &apiErr)
}

func TestClient_DrivesController(t *testing.T) {
	c := setupTestAPI(t)
	ctx := context.Background()
	rec := &tasklist.Recorder{}
	controller := tasklist.NewController(c, rec, constants.DateToday)
	projector := tasklist.NewProjector(5)

	for i := 1; i <= 6; i++ {
		_, err := controller.CreateTask(ctx, fmt.Sprintf("task %d", i))
		require.NoError(t, err)
	}
	col := controller.Collection()
	require.Len(t, col.Tasks, 6)
	assert.Equal(t, int64(6), col.ActiveCount)

	target := col.Tasks[0]
	require.NoError(t, controller.ToggleStatus(ctx, target))

	col = controller.Collection()
	assert.Equal(t, int64(5), col.ActiveCount)
	assert.Equal(t, int64(1), col.CompleteCount)

	completed := projector.Project(col.Tasks, constants.FilterCompleted, 1)
	require.Len(t, completed.Tasks, 1)
	assert.Equal(t, target.ID, completed.Tasks[0].ID)
	require.NotNil(t, completed.Tasks[0].CompletedAt)

	require.NoError(t, controller.ToggleStatus(ctx, completed.Tasks[0]))
	col = controller.Collection()
	assert.Equal(t, int64(0), col.CompleteCount)
	for _, task := range col.Tasks {
		assert.Nil(t, task.CompletedAt)
	}

	err := controller.UpdateTitle(ctx, "missing", "nope")
	assert.ErrorIs(t, err, tasklist.ErrUpdateFailed)

	notes := rec.All()
	last := notes[len(notes)-1]
	assert.Equal(t, tasklist.KindError, last.Kind)
}
