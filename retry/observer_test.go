package retry

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skellig-io/redelay/delay"
	"github.com/skellig-io/redelay/observe"
)

// recordingObserver flattens events into strings for order assertions.
type recordingObserver struct {
	events []string
}

func (r *recordingObserver) OnAttempt(_ context.Context, a observe.Attempt) {
	failed := a.Err != nil
	r.events = append(r.events, fmt.Sprintf("attempt %d failed=%v", a.Number, failed))
}

func (r *recordingObserver) OnSleep(_ context.Context, d time.Duration) {
	r.events = append(r.events, fmt.Sprintf("sleep %s", d))
}

func (r *recordingObserver) OnSuccess(_ context.Context, s observe.Summary) {
	r.events = append(r.events, fmt.Sprintf("success tries=%d total=%s", s.Tries, s.TotalDelay))
}

func (r *recordingObserver) OnFailure(_ context.Context, s observe.Summary) {
	r.events = append(r.events, fmt.Sprintf("failure tries=%d total=%s", s.Tries, s.TotalDelay))
}

func TestObserver_SuccessfulRun(t *testing.T) {
	t.Parallel()

	obs := &recordingObserver{}
	var slept []time.Duration

	calls := 0
	_, err := Do(delay.Of(10*time.Millisecond), func() (int, error) {
		calls++
		if calls < 2 {
			return 0, errTransient
		}
		return calls, nil
	}, WithObserver(obs), recordedSleep(&slept))

	require.NoError(t, err)
	assert.Equal(t, []string{
		"attempt 1 failed=true",
		"sleep 10ms",
		"attempt 2 failed=false",
		"success tries=2 total=10ms",
	}, obs.events)
}

func TestObserver_FailedRun(t *testing.T) {
	t.Parallel()

	obs := &recordingObserver{}
	var slept []time.Duration

	_, err := Do(delay.Of(10*time.Millisecond), func() (int, error) {
		return 0, errTransient
	}, WithObserver(obs), recordedSleep(&slept))

	require.Error(t, err)
	assert.Equal(t, []string{
		"attempt 1 failed=true",
		"sleep 10ms",
		"attempt 2 failed=true",
		"failure tries=2 total=10ms",
	}, obs.events)
}

func TestObserver_FatalRun(t *testing.T) {
	t.Parallel()

	obs := &recordingObserver{}

	_, err := Do(delay.NewFixedMillis(10), func() (int, error) {
		return 0, Unrecoverable(errTransient)
	}, WithObserver(obs))

	require.Error(t, err)
	assert.Equal(t, []string{
		"attempt 1 failed=true",
		"failure tries=1 total=0s",
	}, obs.events)
}
