package clock

import "time"

// Clock supplies the current time so report timestamps can be fixed in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	FixedNow time.Time
}

func (c *FixedClock) Now() time.Time {
	return c.FixedNow
}

func (c *FixedClock) Set(now time.Time) {
	c.FixedNow = now
}
