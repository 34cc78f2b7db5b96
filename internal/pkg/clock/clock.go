// Package clock abstracts the wall clock so time-dependent rules, such as
// OTP expiry, can be tested against a fixed instant.
package clock

import "time"

type Clocker interface {
	Now() time.Time
}

// TimeClocker reads the system clock. Times are returned in UTC so values
// written to timestamptz columns and compared later share one location.
type TimeClocker struct{}

func New() *TimeClocker {
	return &TimeClocker{}
}

func (*TimeClocker) Now() time.Time {
	return time.Now().UTC()
}
