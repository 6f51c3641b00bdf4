package ratelimit

import (
	"context"
	"strconv"
	"time"

	"budget/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "budget:ratelimit:"

// incrementScript bumps the counter and, on the first hit, stamps the window
// end and its expiry. ARGV: window ms, window end in unix ms.
var incrementScript = redis.NewScript(`
local count = redis.call('HINCRBY', KEYS[1], 'count', 1)
if count == 1 then
  redis.call('HSET', KEYS[1], 'reset', ARGV[2])
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return {count, tonumber(redis.call('HGET', KEYS[1], 'reset'))}
`)

// decrementScript forgives one hit only inside the window that counted it.
// ARGV: window end in unix ms.
var decrementScript = redis.NewScript(`
local reset = redis.call('HGET', KEYS[1], 'reset')
if not reset or reset ~= ARGV[1] then
  return 0
end
local count = tonumber(redis.call('HGET', KEYS[1], 'count') or '0')
if count > 0 then
  return redis.call('HINCRBY', KEYS[1], 'count', -1)
end
return 0
`)

// redisStore shares counters between API instances.
type redisStore struct {
	client redis.UniversalClient
	now    func() time.Time
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client redis.UniversalClient) service.RateLimitStore {
	return &redisStore{client: client, now: time.Now}
}

func (s *redisStore) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	res, err := incrementScript.Run(ctx, s.client, []string{keyPrefix + key},
		window.Milliseconds(), strconv.FormatInt(s.now().Add(window).UnixMilli(), 10)).Int64Slice()
	if err != nil {
		return 0, time.Time{}, errors.Wrap(err, "failed to increment rate limit counter")
	}
	if len(res) != 2 {
		return 0, time.Time{}, errors.Errorf("unexpected rate limit script reply: %v", res)
	}

	return res[0], time.UnixMilli(res[1]), nil
}

func (s *redisStore) Decrement(ctx context.Context, key string, resetAt time.Time) error {
	args := []any{strconv.FormatInt(resetAt.UnixMilli(), 10)}
	if err := decrementScript.Run(ctx, s.client, []string{keyPrefix + key}, args...).Err(); err != nil {
		return errors.Wrap(err, "failed to decrement rate limit counter")
	}

	return nil
}
