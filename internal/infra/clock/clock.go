// Package clock provides the wall clock used for server-side timestamps.
package clock

import (
	"time"

	"patrol/internal/domain/service"
)

type systemClock struct{}

// NewSystemClock returns a Clock reading the system time in UTC.
func NewSystemClock() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
