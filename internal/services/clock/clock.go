// Package clock supplies "now" to the farm service.
//
// The planner core never reads the wall clock; it is handed a time by the
// service, which asks a Clock. System is used for live play, Simulated for
// time travel and tests.
package clock

import (
	"sync"
	"time"

	"github.com/Argeon482/Pet-Farm/internal/domain"
)

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// System reads the wall clock
type System struct{}

// Now returns time.Now()
func (System) Now() time.Time {
	return time.Now()
}

// Simulated is a manually driven clock. It is safe for concurrent use.
type Simulated struct {
	mu  sync.Mutex
	now time.Time
}

// NewSimulated starts a simulated clock at t
func NewSimulated(t time.Time) *Simulated {
	return &Simulated{now: t}
}

// Now returns the simulated time
func (c *Simulated) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set jumps to t
func (c *Simulated) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Advance moves the clock by d (negative goes back)
func (c *Simulated) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// AdvanceDays moves by n whole days
func (c *Simulated) AdvanceDays(n int) time.Time {
	return c.Advance(time.Duration(n) * 24 * time.Hour)
}

// AdvanceWeeks moves by n weeks
func (c *Simulated) AdvanceWeeks(n int) time.Time {
	return c.AdvanceDays(7 * n)
}

// SkipToCheckin jumps to the next (forward) or previous check-in among the
// instants from two days before to two days after today. It reports false and
// stays put when there is no candidate, which only happens for an empty schedule.
func (c *Simulated) SkipToCheckin(s domain.Schedule, forward bool) (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var (
		target time.Time
		found  bool
	)
	for _, t := range s.Instants(c.now, -2, 2) {
		if forward && t.After(c.now) && (!found || t.Before(target)) {
			target, found = t, true
		}
		if !forward && t.Before(c.now) && (!found || t.After(target)) {
			target, found = t, true
		}
	}
	if found {
		c.now = target
	}
	return c.now, found
}

var (
	_ Clock = System{}
	_ Clock = (*Simulated)(nil)
)
