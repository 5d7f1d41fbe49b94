package state

import "time"

// Clock hands out label ids derived from the creation time in milliseconds.
// Two labels created within the same millisecond get consecutive ids, so
// ids from one Clock never repeat.
type Clock struct {
	now  func() time.Time
	last int64
}

func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Next returns a new id. Called from the UI goroutine only.
func (c *Clock) Next() int64 {
	id := c.now().UnixMilli()
	if id <= c.last {
		id = c.last + 1
	}
	c.last = id
	return id
}
