package delay

import (
	"math"
	"math/rand"
	"time"
)

// Jitter applies full random jitter to a duration: a fresh uniform
// fraction in [0,1) scales the whole-second and sub-second parts
// independently, each rounded up. The result is always within [0, d].
//
// Jitter composes with any strategy via Map or WithJitter and is the
// standard mitigation for synchronized retry storms across many callers
// sharing the same nominal schedule.
func Jitter(d time.Duration) time.Duration {
	return jitter(d, rand.Float64())
}

func jitter(d time.Duration, fraction float64) time.Duration {
	if d <= 0 {
		return 0
	}
	secs := math.Ceil(float64(d/time.Second) * fraction)
	nanos := math.Ceil(float64(d%time.Second) * fraction)
	return time.Duration(secs)*time.Second + time.Duration(nanos)
}

// WithJitter applies Jitter to every element of s.
func WithJitter(s Strategy) Strategy { return Map(s, Jitter) }
