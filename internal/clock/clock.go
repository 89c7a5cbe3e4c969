// Package clock provides the time source used for expiring state.
package clock

import (
	"sync"
	"time"
)

// Func returns the current time.
type Func func() time.Time

// Manual is a clock that only moves when told to. The zero value starts at
// the zero time; use NewManual for a fixed reference instant.
type Manual struct {
	mu      sync.Mutex
	current time.Time
}

// NewManual returns a manual clock set to start.
func NewManual(start time.Time) *Manual {
	return &Manual{current: start}
}

// Now returns the clock's current instant.
func (c *Manual) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Advance moves the clock forward by d and returns the new time.
func (c *Manual) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
	return c.current
}
