package delay

import (
	"errors"
	"math/rand"
	"time"
)

// ErrInvalidRange is returned when a Range is constructed with a minimum
// that is not strictly less than its maximum.
var ErrInvalidRange = errors.New("delay: range minimum must be less than maximum")

// Range yields delays drawn uniformly at random between a minimum and a
// maximum, either excluding or including the maximum. Infinite.
//
// Each instance owns its own random generator, so concurrent retry runs
// using separate Range instances never contend.
type Range struct {
	min       time.Duration
	max       time.Duration
	inclusive bool
	rng       *rand.Rand
}

// RangeOption configures a Range.
type RangeOption func(*Range)

// WithSource replaces the range's random source, typically with a fixed
// seed for deterministic tests.
func WithSource(src rand.Source) RangeOption {
	return func(r *Range) {
		if src != nil {
			r.rng = rand.New(src)
		}
	}
}

// NewRangeExclusive creates a Range drawing from [min, max).
func NewRangeExclusive(min, max time.Duration, opts ...RangeOption) (*Range, error) {
	return newRange(min, max, false, opts)
}

// NewRangeInclusive creates a Range drawing from [min, max].
func NewRangeInclusive(min, max time.Duration, opts ...RangeOption) (*Range, error) {
	return newRange(min, max, true, opts)
}

// NewRangeExclusiveMillis is NewRangeExclusive with millisecond bounds.
func NewRangeExclusiveMillis(minMS, maxMS uint64, opts ...RangeOption) (*Range, error) {
	return newRange(millisToDuration(minMS), millisToDuration(maxMS), false, opts)
}

// NewRangeInclusiveMillis is NewRangeInclusive with millisecond bounds.
func NewRangeInclusiveMillis(minMS, maxMS uint64, opts ...RangeOption) (*Range, error) {
	return newRange(millisToDuration(minMS), millisToDuration(maxMS), true, opts)
}

func newRange(min, max time.Duration, inclusive bool, opts []RangeOption) (*Range, error) {
	if min >= max {
		return nil, ErrInvalidRange
	}

	r := &Range{min: min, max: max, inclusive: inclusive}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return r, nil
}

func (r *Range) Next() (time.Duration, bool) {
	span := int64(r.max - r.min)
	if r.inclusive {
		span++
	}
	if span <= 0 {
		// max-min+1 overflowed; the span covers the whole non-negative range.
		return r.min + time.Duration(r.rng.Int63()), true
	}
	return r.min + time.Duration(r.rng.Int63n(span)), true
}
