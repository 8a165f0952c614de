package retry

import (
	"errors"
	"fmt"
	"time"
)

// Error is the terminal failure of a retry run. It carries the error from
// the last failing attempt, whether the run ended because the operation
// declared the error fatal or because the delay strategy was exhausted.
type Error struct {
	// Err is the last failing attempt's error.
	Err error

	// Tries is the number of attempts made, counting from 1. It always
	// equals the number of delays consumed plus one.
	Tries uint

	// TotalDelay is the cumulative time actually spent waiting between
	// attempts. A delay that was pulled but not fully waited is never
	// counted.
	TotalDelay time.Duration
}

func (e *Error) Error() string {
	return fmt.Sprintf("redelay: operation failed after %d tries (waited %s): %v", e.Tries, e.TotalDelay, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

type unrecoverableError struct {
	err error
}

func (e *unrecoverableError) Error() string { return e.err.Error() }

func (e *unrecoverableError) Unwrap() error { return e.err }

// Unrecoverable marks err as fatal: the engine returns immediately instead
// of consulting the delay strategy. Unrecoverable(nil) is nil.
//
// The marker survives further wrapping; IsRecoverable and the default
// classifier find it anywhere in the error chain.
func Unrecoverable(err error) error {
	if err == nil {
		return nil
	}
	return &unrecoverableError{err: err}
}

// IsRecoverable reports whether err may still be retried, i.e. no error in
// its chain was marked with Unrecoverable.
func IsRecoverable(err error) bool {
	var u *unrecoverableError
	return !errors.As(err, &u)
}
