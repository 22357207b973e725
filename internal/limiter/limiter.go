package limiter

import (
	"context"
	"time"
)

// Limiter admits at most a fixed number of hits per key within a window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Window describes a fixed-window budget.
type Window struct {
	Limit    int
	Duration time.Duration
}
