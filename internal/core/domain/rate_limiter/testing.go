package ratelimiter

import (
	"context"
	"sync"
)

type FakeRateLimiter struct {
	Allow       bool
	CheckedKeys []string
	lock        sync.Mutex
}

func NewFakeRateLimiter(allow bool) *FakeRateLimiter {
	return &FakeRateLimiter{Allow: allow}
}

func (r *FakeRateLimiter) CheckLimit(ctx context.Context, key string, limit Limit) Result {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.CheckedKeys = append(r.CheckedKeys, key)
	if r.Allow {
		return Allowed()
	}
	return NotAllowed()
}
