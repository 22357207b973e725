package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/charmbracelet/log"

	"todo-list.com/todo-list/internal/constants"
)

const (
	RateLimitBackendMemory = "memory"
	RateLimitBackendRedis  = "redis"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RateLimit              int
	RateLimitBackend       string
	RedisAddr              string
	RedisKeyPrefix         string
	ShutdownTimeoutSeconds int

	APIURL             string
	PageSize           int
	HTTPTimeoutSeconds int
	DefaultDateQuery   constants.DateQuery

	LogLevel string
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "tasks.db"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120),
		RateLimitBackend:       getEnv("RATE_LIMIT_BACKEND", RateLimitBackendMemory),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisKeyPrefix:         getEnv("REDIS_KEY_PREFIX", "todo:ratelimit"),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
		APIURL:                 getEnv("API_URL", fmt.Sprintf("http://%s:%s", appHost, appPort)),
		PageSize:               getEnvAsInt("PAGE_SIZE", 5),
		HTTPTimeoutSeconds:     getEnvAsInt("HTTP_TIMEOUT_SECONDS", 10),
		DefaultDateQuery:       constants.DateQuery(getEnv("DEFAULT_DATE_QUERY", string(constants.DateToday))),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_HOST/APP_PORT must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.RateLimitBackend != RateLimitBackendMemory && cfg.RateLimitBackend != RateLimitBackendRedis {
		log.Fatalf("RATE_LIMIT_BACKEND must be %q or %q", RateLimitBackendMemory, RateLimitBackendRedis)
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		log.Fatal("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	if u, err := url.Parse(cfg.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		log.Fatal("API_URL must be an absolute URL (e.g. http://127.0.0.1:8080)")
	}
	if cfg.PageSize <= 0 {
		log.Fatal("PAGE_SIZE must be greater than 0")
	}
	if cfg.HTTPTimeoutSeconds <= 0 {
		log.Fatal("HTTP_TIMEOUT_SECONDS must be greater than 0")
	}
	if !cfg.DefaultDateQuery.IsValid() {
		log.Fatal("DEFAULT_DATE_QUERY must be one of: today, week, month, all")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}
