// Package retry drives a fallible operation to completion against a lazy
// sequence of wait durations.
//
// The engine invokes the operation, classifies its result as success,
// retryable failure, or fatal failure, and on retryable failures pulls
// exactly one delay from the strategy and waits it out before the next
// attempt. Delays are pulled only when needed, so infinite strategies
// like delay.NewExponential stay usable. The run ends with the success
// value, or with an *Error carrying the last failure, the attempt count,
// and the cumulative delay actually waited.
package retry

import (
	"context"
	"time"

	"github.com/skellig-io/redelay/delay"
	"github.com/skellig-io/redelay/observe"
)

// Operation is a repeatedly callable unit of work.
type Operation[T any] func() (T, error)

// IndexedOperation additionally receives the 1-based attempt number.
type IndexedOperation[T any] func(attempt uint) (T, error)

// ContextOperation is an Operation that honors a context.
type ContextOperation[T any] func(ctx context.Context) (T, error)

// IndexedContextOperation is an IndexedOperation that honors a context.
type IndexedContextOperation[T any] func(ctx context.Context, attempt uint) (T, error)

// Do invokes op until it succeeds, a fatal error occurs, or s is
// exhausted, blocking the calling goroutine for each delay. On failure
// the returned error is an *Error.
func Do[T any](s delay.Strategy, op Operation[T], opts ...Option) (T, error) {
	return DoIndex(s, func(uint) (T, error) { return op() }, opts...)
}

// DoIndex is Do with the 1-based attempt number passed to each
// invocation.
func DoIndex[T any](s delay.Strategy, op IndexedOperation[T], opts ...Option) (T, error) {
	return DoIndexContext(context.Background(), s, func(_ context.Context, attempt uint) (T, error) {
		return op(attempt)
	}, opts...)
}

// DoContext is Do with cancellation: ctx is checked before every attempt
// and interrupts the wait step. Cancellation during a wait surfaces as an
// *Error wrapping the context's error.
func DoContext[T any](ctx context.Context, s delay.Strategy, op ContextOperation[T], opts ...Option) (T, error) {
	return DoIndexContext(ctx, s, func(c context.Context, _ uint) (T, error) {
		return op(c)
	}, opts...)
}

// DoIndexContext combines DoContext and DoIndex. All other entry points
// reduce to it.
func DoIndexContext[T any](ctx context.Context, s delay.Strategy, op IndexedContextOperation[T], opts ...Option) (T, error) {
	cfg := newConfig(opts)
	if ctx == nil {
		ctx = context.Background()
	}

	var zero T
	var totalDelay time.Duration

	for tries := uint(1); ; tries++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		val, err := op(ctx, tries)
		cfg.observer.OnAttempt(ctx, observe.Attempt{Number: tries, Err: err})

		switch cfg.classifier(err) {
		case OutcomeSuccess:
			cfg.observer.OnSuccess(ctx, observe.Summary{Tries: tries, TotalDelay: totalDelay})
			return val, nil

		case OutcomeRetry:
			d, ok := next(s)
			if !ok {
				return zero, fail(ctx, cfg, err, tries, totalDelay)
			}
			cfg.observer.OnSleep(ctx, d)
			if serr := cfg.sleep(ctx, d); serr != nil {
				// The wait was cut short, so it does not count
				// toward the total delay.
				return zero, fail(ctx, cfg, serr, tries, totalDelay)
			}
			totalDelay += d

		default:
			return zero, fail(ctx, cfg, err, tries, totalDelay)
		}
	}
}

func next(s delay.Strategy) (time.Duration, bool) {
	if s == nil {
		return 0, false
	}
	return s.Next()
}

func fail(ctx context.Context, cfg config, err error, tries uint, totalDelay time.Duration) error {
	cfg.observer.OnFailure(ctx, observe.Summary{Tries: tries, TotalDelay: totalDelay, Err: err})
	return &Error{Err: err, Tries: tries, TotalDelay: totalDelay}
}

// sleepContext waits for d or until ctx is cancelled, whichever comes
// first.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer func() {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
	}()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
