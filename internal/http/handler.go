package http

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"todo-list.com/todo-list/internal/constants"
	dto "todo-list.com/todo-list/internal/data_models"
	apperrors "todo-list.com/todo-list/internal/errors"
	"todo-list.com/todo-list/internal/http/validators"
	"todo-list.com/todo-list/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) ListTasks(c echo.Context) error {
	query := constants.DateQuery(c.QueryParam("filter"))
	if query == "" {
		query = constants.DateToday
	}
	if err := validators.ValidateDateQuery(query); err != nil {
		return toHTTPError(err)
	}

	res, err := h.taskService.ListTasks(c.Request().Context(), query)
	if err != nil {
		log.Error("list tasks failed", "filter", query, "err", err)
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, res)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return toHTTPError(apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return toHTTPError(err)
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req.Title)
	if err != nil {
		log.Error("create task failed", "err", err)
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	task, err := h.taskService.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id := c.Param("id")

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return toHTTPError(apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return toHTTPError(err)
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, req)
	if err != nil {
		if !errors.Is(err, apperrors.ErrTaskNotFound) {
			log.Error("update task failed", "id", id, "err", err)
		}
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id := c.Param("id")

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		if !errors.Is(err, apperrors.ErrTaskNotFound) {
			log.Error("delete task failed", "id", id, "err", err)
		}
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toHTTPError(err error) *echo.HTTPError {
	code := apperrors.StatusCode(err)
	if code == http.StatusInternalServerError {
		return echo.NewHTTPError(code, "internal server error")
	}
	return echo.NewHTTPError(code, err.Error())
}
