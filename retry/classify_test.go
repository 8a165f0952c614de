package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultClassifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want Outcome
	}{
		{"nil is success", nil, OutcomeSuccess},
		{"plain error retries", errors.New("x"), OutcomeRetry},
		{"unrecoverable aborts", Unrecoverable(errors.New("x")), OutcomeAbort},
		{"wrapped unrecoverable aborts", fmt.Errorf("op: %w", Unrecoverable(errors.New("x"))), OutcomeAbort},
		{"context canceled aborts", context.Canceled, OutcomeAbort},
		{"wrapped cancellation aborts", fmt.Errorf("op: %w", context.Canceled), OutcomeAbort},
		{"deadline exceeded retries", context.DeadlineExceeded, OutcomeRetry},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DefaultClassifier(tt.err))
		})
	}
}
