package retry

import (
	"context"
	"errors"
)

// Outcome is the engine's three-way classification of one attempt result.
type Outcome int

const (
	// OutcomeSuccess ends the run with the attempt's value.
	OutcomeSuccess Outcome = iota

	// OutcomeRetry schedules another attempt, delay strategy permitting.
	OutcomeRetry

	// OutcomeAbort ends the run immediately; the delay strategy is
	// never consulted.
	OutcomeAbort
)

// Classifier maps an attempt error to an Outcome. A nil error must map to
// OutcomeSuccess. The engine never inspects the error beyond this
// classification; its type and content stay the caller's domain.
type Classifier func(err error) Outcome

// DefaultClassifier treats every error as retryable, with two exceptions:
// errors marked with Unrecoverable and context cancellation abort the run.
// A deadline expiring on a single attempt stays retryable; the engine
// enforces the run-level context separately.
func DefaultClassifier(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case !IsRecoverable(err):
		return OutcomeAbort
	case errors.Is(err, context.Canceled):
		return OutcomeAbort
	default:
		return OutcomeRetry
	}
}
