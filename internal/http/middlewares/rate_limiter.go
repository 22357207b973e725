package middleware

import (
	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	apperrors "todo-list.com/todo-list/internal/errors"
	"todo-list.com/todo-list/internal/limiter"
)

// RateLimiter rejects requests once the client IP exhausts its window.
// Limiter backend failures let the request through.
func RateLimiter(l limiter.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()

			ok, err := l.Allow(c.Request().Context(), key)
			if err != nil {
				log.Warn("rate limiter unavailable", "ip", key, "err", err)
				return next(c)
			}

			if !ok {
				return echo.NewHTTPError(apperrors.ErrRateLimited.StatusCode, apperrors.ErrRateLimited.Message)
			}

			return next(c)
		}
	}
}
