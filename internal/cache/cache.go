// Package cache provides the small TTL cache used in front of hot-path
// lookups such as API key validation. Two implementations exist: an
// in-process map for single-instance deployments and a redis-backed one for
// multi-instance deployments. Both are best-effort and safe to lose.
package cache

import "time"

type Cache interface {
	Get(key string, dst any) (found bool, err error)
	Set(key string, value any, ttl time.Duration) error
	Delete(key string) error
}
