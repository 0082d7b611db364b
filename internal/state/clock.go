package state

import "time"

// Clock counts down a fixed limit from the moment the round starts.
type Clock struct {
	Started time.Time
	Limit   time.Duration
}

func (c *Clock) Start(now time.Time) {
	c.Started = now
}

func (c Clock) Deadline() time.Time {
	return c.Started.Add(c.Limit)
}

// Remaining returns whole seconds left: the limit minus whole seconds elapsed,
// never below zero. It reaches zero exactly when the limit has elapsed.
func (c Clock) Remaining(now time.Time) int {
	elapsed := int(now.Sub(c.Started) / time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	left := int(c.Limit/time.Second) - elapsed
	if left < 0 {
		return 0
	}
	return left
}

func (c Clock) Expired(now time.Time) bool {
	return c.Remaining(now) == 0
}
