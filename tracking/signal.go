package tracking

import "time"

// Sample is the latest value of one attention signal and when it arrived
// A zero Sample has never been observed and is always stale
type Sample[T any] struct {
	Value T
	At    time.Time
	Seen  bool
}

// Observe records v as the latest value of a signal
func Observe[T any](v T, at time.Time) Sample[T] {
	return Sample[T]{Value: v, At: at, Seen: true}
}

// Read returns the value only while it is fresh, i.e. now-At <= timeout
func (s Sample[T]) Read(now time.Time, timeout time.Duration) (T, bool) {
	if !s.Seen || now.Sub(s.At) > timeout {
		var zero T
		return zero, false
	}
	return s.Value, true
}
