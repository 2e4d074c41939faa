package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	redis "github.com/go-redis/redis/v7"
)

type Redis struct {
	client redis.UniversalClient
	prefix string
	limit  int
	window time.Duration

	allowScript *redis.Script
}

func NewRedis(client redis.UniversalClient, prefix string, limit int, window time.Duration) *Redis {
	return &Redis{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
		allowScript: redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local windowMs = tonumber(ARGV[2])

local count = redis.call('INCR', key)
if count == 1 then
  redis.call('PEXPIRE', key, windowMs)
end
if count > limit then
  return 0
end
return 1
`),
	}
}

func (l *Redis) key(k string) string {
	base := "rl:" + k
	if l.prefix == "" {
		return base
	}
	return l.prefix + base
}

func (l *Redis) Allow(ctx context.Context, key string) (bool, error) {
	_ = ctx // go-redis/v7 is context-less
	res, err := l.allowScript.Run(l.client, []string{l.key(key)},
		l.limit, l.window.Milliseconds()).Result()
	if err != nil {
		return false, err
	}
	ok, valid := toInt64(res)
	if !valid {
		return false, fmt.Errorf("unexpected limiter response: %T", res)
	}
	return ok == 1, nil
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}
