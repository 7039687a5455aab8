package search

import "time"

// Measure runs fn and returns its result together with the wall-clock time
// the call took.
func Measure[T any](fn func() (T, error)) (T, time.Duration, error) {
	start := time.Now()
	v, err := fn()
	return v, time.Since(start), err
}
