package ratelimit

import (
	"context"
	"sync"
	"time"
)

type Memory struct {
	mu      sync.Mutex
	now     func() time.Time
	limit   int
	window  time.Duration
	buckets map[string]*memWindow
}

type memWindow struct {
	count    int
	startsAt time.Time
}

func NewMemory(limit int, window time.Duration) *Memory {
	return &Memory{
		now:     time.Now,
		limit:   limit,
		window:  window,
		buckets: make(map[string]*memWindow),
	}
}

func (l *Memory) Allow(_ context.Context, key string) (bool, error) {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	// opportunistic cleanup of stale windows
	for k, w := range l.buckets {
		if now.Sub(w.startsAt) > l.window {
			delete(l.buckets, k)
		}
	}

	w := l.buckets[key]
	if w == nil || now.Sub(w.startsAt) > l.window {
		l.buckets[key] = &memWindow{count: 1, startsAt: now}
		return true, nil
	}

	if w.count >= l.limit {
		return false, nil
	}
	w.count++
	return true, nil
}
