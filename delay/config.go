package delay

import (
	"fmt"
	"time"
)

// Kind names a delay strategy in declarative configuration.
type Kind string

const (
	KindNone        Kind = "none"
	KindFixed       Kind = "fixed"
	KindExponential Kind = "exponential"
	KindFibonacci   Kind = "fibonacci"
	KindRange       Kind = "range"
)

// Config describes a strategy declaratively, for callers that build their
// retry pacing from external configuration.
type Config struct {
	// Kind selects the strategy. Empty defaults to KindNone.
	Kind Kind `json:"kind" yaml:"kind"`

	// Base is the fixed delay, the exponential base, or the fibonacci
	// seed, depending on Kind.
	Base time.Duration `json:"base" yaml:"base"`

	// Min and Max bound a range strategy. Min must be strictly less
	// than Max.
	Min time.Duration `json:"min" yaml:"min"`
	Max time.Duration `json:"max" yaml:"max"`

	// Inclusive includes Max in the range draw.
	Inclusive bool `json:"inclusive" yaml:"inclusive"`

	// Jitter applies full random jitter to every delay.
	Jitter bool `json:"jitter" yaml:"jitter"`

	// MaxDelays bounds the number of delays produced, i.e. the number
	// of retries after the first attempt. Zero means unbounded.
	MaxDelays uint `json:"max_delays" yaml:"max_delays"`
}

// New builds a Strategy from cfg. Invalid parameters are reported at
// construction time, never deferred into the retry run.
func New(cfg Config) (Strategy, error) {
	var s Strategy

	switch cfg.Kind {
	case KindNone, "":
		s = None()
	case KindFixed:
		if cfg.Base < 0 {
			return nil, fmt.Errorf("delay: fixed base must not be negative, got %s", cfg.Base)
		}
		s = NewFixed(cfg.Base)
	case KindExponential:
		if cfg.Base < time.Millisecond {
			return nil, fmt.Errorf("delay: exponential base must be at least 1ms, got %s", cfg.Base)
		}
		s = NewExponential(cfg.Base)
	case KindFibonacci:
		if cfg.Base < time.Millisecond {
			return nil, fmt.Errorf("delay: fibonacci seed must be at least 1ms, got %s", cfg.Base)
		}
		s = NewFibonacci(cfg.Base)
	case KindRange:
		var err error
		if cfg.Inclusive {
			s, err = NewRangeInclusive(cfg.Min, cfg.Max)
		} else {
			s, err = NewRangeExclusive(cfg.Min, cfg.Max)
		}
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("delay: unknown strategy kind %q", cfg.Kind)
	}

	if cfg.Jitter {
		s = WithJitter(s)
	}
	if cfg.MaxDelays > 0 {
		s = Take(s, cfg.MaxDelays)
	}
	return s, nil
}
