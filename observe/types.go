// Package observe defines optional instrumentation hooks for retry runs.
//
// The retry engine itself never logs or records metrics; callers opt in
// by passing an Observer.
package observe

import (
	"context"
	"time"
)

// Attempt describes one invocation of the operation.
type Attempt struct {
	// Number is the 1-based attempt count.
	Number uint

	// Err is the attempt's error, nil on success.
	Err error
}

// Summary describes a finished retry run.
type Summary struct {
	// Tries is the total number of attempts made.
	Tries uint

	// TotalDelay is the cumulative time spent waiting between attempts.
	TotalDelay time.Duration

	// Err is the terminal error, nil when the run succeeded.
	Err error
}

// Observer receives retry lifecycle events.
//
// An Observer shared across concurrent retry runs must be safe for
// concurrent use.
type Observer interface {
	// OnAttempt fires after every invocation of the operation.
	OnAttempt(ctx context.Context, a Attempt)

	// OnSleep fires before the engine waits out a delay.
	OnSleep(ctx context.Context, d time.Duration)

	// OnSuccess fires once when the run ends with a success.
	OnSuccess(ctx context.Context, s Summary)

	// OnFailure fires once when the run ends with a failure.
	OnFailure(ctx context.Context, s Summary)
}
