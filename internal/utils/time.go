package util

import (
	"sync"
	"time"
)

// Clock hands out unix millisecond timestamps used as identity keys.
// Two calls never return the same value, even within the same millisecond.
type Clock struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

func (c *Clock) NextMillis() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	ms := c.now().UnixMilli()
	if ms <= c.last {
		ms = c.last + 1
	}
	c.last = ms
	return ms
}
