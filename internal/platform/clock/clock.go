package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports wall time in the local zone: history keys are local calendar days.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
