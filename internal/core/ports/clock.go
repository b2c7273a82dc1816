package ports

import "time"

// Clock supplies the current wall-clock time to command handlers. The core
// never accepts caller-supplied time: deadlines and timestamps always come
// from the execution environment through this port, which also keeps
// deadline behavior testable.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}
