package clock

import "time"

// Clock abstracts time to keep the timer and the stores deterministic in tests.
type Clock interface {
	Now() time.Time
}

// System reads the local wall clock. Session dates are calendar days in local time.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}
