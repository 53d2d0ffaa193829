package service

import "time"

// Clock supplies the current time so that server timestamps stay testable.
type Clock interface {
	// Now returns the current time in UTC.
	Now() time.Time
}
