package domain

import "time"

// Clock supplies the current time to the aggregate constructors so that
// tests can pin CreatedAt instead of sampling the wall clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns a Clock backed by time.Now in UTC.
func SystemClock() Clock { return systemClock{} }
