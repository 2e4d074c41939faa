// Package ratelimit implements the fixed-window counter guarding the public
// submission endpoint. Counters are best-effort and non-durable; losing them
// on restart only resets the window.
package ratelimit

import "context"

type Limiter interface {
	// Allow reports whether one more request under key fits in the current
	// window.
	Allow(ctx context.Context, key string) (bool, error)
}
