package http

import (
	"github.com/labstack/echo/v4"

	middleware "todo-list.com/todo-list/internal/http/middlewares"
	"todo-list.com/todo-list/internal/limiter"
)

func Register(e *echo.Echo, h *Handler, l limiter.Limiter) {
	if l != nil {
		e.Use(middleware.RateLimiter(l))
	}

	e.GET("/tasks", h.ListTasks)
	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks/:id", h.GetTask)
	e.PUT("/tasks/:id", h.UpdateTask)
	e.DELETE("/tasks/:id", h.DeleteTask)
}
