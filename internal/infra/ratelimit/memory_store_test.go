package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func TestMemoryStore_FixedWindow(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := newMemoryStore(clock.Now)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		count, resetAt, err := store.Increment(ctx, "login:1.2.3.4", 10*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, count)
		assert.Equal(t, clock.now.Add(10*time.Minute), resetAt)
	}

	clock.Advance(10 * time.Minute)

	count, resetAt, err := store.Increment(ctx, "login:1.2.3.4", 10*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, clock.Now().Add(10*time.Minute), resetAt)
}

func TestMemoryStore_KeysAreIndependent(t *testing.T) {
	store := newMemoryStore(time.Now)
	ctx := context.Background()

	_, _, _ = store.Increment(ctx, "a", time.Minute)
	_, _, _ = store.Increment(ctx, "a", time.Minute)
	count, _, err := store.Increment(ctx, "b", time.Minute)

	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryStore_DecrementNeverGoesNegative(t *testing.T) {
	store := newMemoryStore(time.Now)
	ctx := context.Background()

	require.NoError(t, store.Decrement(ctx, "missing", time.Now().Add(time.Minute)))

	_, resetAt, _ := store.Increment(ctx, "k", time.Minute)
	require.NoError(t, store.Decrement(ctx, "k", resetAt))
	require.NoError(t, store.Decrement(ctx, "k", resetAt))

	count, _, err := store.Increment(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryStore_DecrementIgnoresLaterWindow(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := newMemoryStore(clock.Now)
	ctx := context.Background()

	// A slow request counted in the first window finishes after it elapsed.
	_, firstReset, err := store.Increment(ctx, "login:ada", time.Minute)
	require.NoError(t, err)
	clock.Advance(time.Minute)
	require.NoError(t, store.Decrement(ctx, "login:ada", firstReset))

	// The late forgiveness must not eat into the next window either.
	_, _, _ = store.Increment(ctx, "login:ada", time.Minute)
	require.NoError(t, store.Decrement(ctx, "login:ada", firstReset))

	count, _, err := store.Increment(ctx, "login:ada", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestMemoryStore_SweepDropsElapsedWindows(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := newMemoryStore(clock.Now)
	ctx := context.Background()

	for i := range memorySweepEvery - 1 {
		_, _, _ = store.Increment(ctx, fmt.Sprintf("ip-%d", i), time.Second)
	}
	clock.Advance(time.Second)
	_, _, _ = store.Increment(ctx, "fresh", time.Second)

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Len(t, store.windows, 1)
}

func TestMemoryStore_ConcurrentIncrements(t *testing.T) {
	store := newMemoryStore(time.Now)
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			_, _, _ = store.Increment(ctx, "shared", time.Minute)
		})
	}
	wg.Wait()

	count, _, err := store.Increment(ctx, "shared", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(51), count)
}
