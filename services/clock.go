package services

import "time"

// Clock supplies the current time for createdAt stamps and urgency
// computation, so tests can pin it.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
