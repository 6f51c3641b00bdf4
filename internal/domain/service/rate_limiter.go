package service

import (
	"context"
	"time"
)

// RateLimitStore keeps fixed-window hit counters keyed by arbitrary strings.
type RateLimitStore interface {
	// Increment adds one hit and returns the count in the current window and when it resets.
	Increment(ctx context.Context, key string, window time.Duration) (count int64, resetAt time.Time, err error)

	// Decrement removes one hit, used to forgive requests that ended up succeeding.
	// It is a no-op unless the window ending at resetAt is still the current one.
	Decrement(ctx context.Context, key string, resetAt time.Time) error
}
