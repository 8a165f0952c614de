// Package delay provides lazy sequences of wait durations used to pace
// retry attempts.
//
// A Strategy is pulled one element at a time and is not restartable;
// construct a fresh instance for every retry run. Pulling never blocks and
// never fails. Arithmetic that would overflow the maximum representable
// duration saturates instead of wrapping.
package delay

import (
	"math"
	"time"
)

// Strategy yields successive wait durations.
//
// A Strategy instance is stateful and must be owned by exactly one retry
// run at a time; pulling mutates internal counters and is not safe for
// concurrent use.
type Strategy interface {
	// Next returns the next delay. ok is false once the strategy is
	// exhausted, after which every further call reports exhaustion.
	Next() (d time.Duration, ok bool)
}

const (
	maxDuration = time.Duration(math.MaxInt64)

	// maxMillis is the largest millisecond count representable as a
	// time.Duration without overflow.
	maxMillis = uint64(math.MaxInt64 / int64(time.Millisecond))
)

// millisToDuration converts a millisecond count, clamping to the maximum
// representable duration.
func millisToDuration(ms uint64) time.Duration {
	if ms > maxMillis {
		return maxDuration
	}
	return time.Duration(ms) * time.Millisecond
}

func asMillis(d time.Duration) uint64 {
	if d < 0 {
		return 0
	}
	return uint64(d / time.Millisecond)
}

type noDelay struct{}

func (noDelay) Next() (time.Duration, bool) { return 0, true }

// None returns a strategy whose every pull yields a zero delay. Infinite.
func None() Strategy { return noDelay{} }

// Fixed yields the same delay on every pull. Infinite.
type Fixed struct {
	d time.Duration
}

// NewFixed creates a Fixed strategy from a duration.
func NewFixed(d time.Duration) *Fixed { return &Fixed{d: d} }

// NewFixedMillis creates a Fixed strategy from a millisecond count.
func NewFixedMillis(ms uint64) *Fixed { return &Fixed{d: millisToDuration(ms)} }

func (s *Fixed) Next() (time.Duration, bool) { return s.d, true }

// Exponential multiplies the delay by its base on every pull, so the nth
// pull (0-indexed) yields base^(n+1) milliseconds. The running value
// saturates on overflow. Infinite.
type Exponential struct {
	base    uint64 // milliseconds
	current uint64 // milliseconds
}

// NewExponential creates an Exponential strategy whose base is the given
// duration truncated to milliseconds.
func NewExponential(base time.Duration) *Exponential {
	return NewExponentialMillis(asMillis(base))
}

// NewExponentialMillis creates an Exponential strategy from a millisecond
// base.
func NewExponentialMillis(base uint64) *Exponential {
	return &Exponential{base: base, current: base}
}

func (s *Exponential) Next() (time.Duration, bool) {
	d := millisToDuration(s.current)

	if s.base != 0 && s.current > math.MaxUint64/s.base {
		s.current = math.MaxUint64
	} else {
		s.current *= s.base
	}

	return d, true
}

// Fibonacci yields delays where each element is the sum of the previous
// two, both seeded with the same value: seed, seed, 2*seed, 3*seed,
// 5*seed, ... The sum saturates on overflow. Infinite.
//
// Depending on the workload a fibonacci schedule can give better
// throughput than an exponential one, since it backs off less steeply.
type Fibonacci struct {
	curr uint64 // milliseconds
	next uint64 // milliseconds
}

// NewFibonacci creates a Fibonacci strategy whose seed is the given
// duration truncated to milliseconds.
func NewFibonacci(seed time.Duration) *Fibonacci {
	return NewFibonacciMillis(asMillis(seed))
}

// NewFibonacciMillis creates a Fibonacci strategy from a millisecond seed.
func NewFibonacciMillis(seed uint64) *Fibonacci {
	return &Fibonacci{curr: seed, next: seed}
}

func (s *Fibonacci) Next() (time.Duration, bool) {
	d := millisToDuration(s.curr)

	if s.curr > math.MaxUint64-s.next {
		s.curr, s.next = s.next, math.MaxUint64
	} else {
		s.curr, s.next = s.next, s.curr+s.next
	}

	return d, true
}

type slice struct {
	ds []time.Duration
}

// Of returns a finite strategy yielding exactly the given delays in order.
func Of(ds ...time.Duration) Strategy {
	out := make([]time.Duration, len(ds))
	copy(out, ds)
	return &slice{ds: out}
}

func (s *slice) Next() (time.Duration, bool) {
	if len(s.ds) == 0 {
		return 0, false
	}
	d := s.ds[0]
	s.ds = s.ds[1:]
	return d, true
}

type take struct {
	s Strategy
	n uint
}

// Take bounds s to at most n pulls, turning an infinite strategy into a
// finite one. This is how "retry at most n times" is expressed.
func Take(s Strategy, n uint) Strategy { return &take{s: s, n: n} }

func (t *take) Next() (time.Duration, bool) {
	if t.n == 0 || t.s == nil {
		return 0, false
	}
	t.n--
	return t.s.Next()
}

type mapped struct {
	s Strategy
	f func(time.Duration) time.Duration
}

// Map transforms each element of s with f. The underlying strategy's
// internal state is untouched.
func Map(s Strategy, f func(time.Duration) time.Duration) Strategy {
	if f == nil {
		return s
	}
	return &mapped{s: s, f: f}
}

func (m *mapped) Next() (time.Duration, bool) {
	if m.s == nil {
		return 0, false
	}
	d, ok := m.s.Next()
	if !ok {
		return 0, false
	}
	return m.f(d), true
}
