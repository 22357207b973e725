package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "todo-list.com/todo-list/internal/configs"
	httpapi "todo-list.com/todo-list/internal/http"
	"todo-list.com/todo-list/internal/limiter"
	repository "todo-list.com/todo-list/internal/repositories"
	"todo-list.com/todo-list/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task REST API backed by sqlite, with per-client rate limiting",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		config.NewLogger(os.Stderr, cfg.LogLevel)

		database := config.NewDatabaseClient(cfg.DatabaseDSN)
		taskRepo := repository.NewTaskRepository(database)
		taskService := services.NewTaskService(taskRepo)

		window := limiter.Window{Limit: cfg.RateLimit, Duration: time.Minute}
		var rateLimiter limiter.Limiter = limiter.NewMemoryLimiter(window)
		if cfg.RateLimitBackend == config.RateLimitBackendRedis {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			rateLimiter = limiter.NewRedisLimiter(redisClient, cfg.RedisKeyPrefix, window)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		e.HideBanner = true
		httpapi.Register(e, httpapi.NewHandler(taskService), rateLimiter)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("server stopped", "err", err)
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", "err", err)
		}

		log.Print("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
