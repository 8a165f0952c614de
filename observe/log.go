package observe

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LogObserver emits structured logs for retry lifecycle events.
//
// Individual attempts and sleeps log at debug level; a terminal failure
// logs at warn. The zero attempts of a healthy system stay out of the
// logs at production levels.
type LogObserver struct {
	log       *zap.Logger
	operation string
}

// NewLogObserver creates a LogObserver naming the retried operation.
// A nil logger is replaced with a no-op logger.
func NewLogObserver(log *zap.Logger, operation string) *LogObserver {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogObserver{log: log, operation: operation}
}

func (o *LogObserver) OnAttempt(_ context.Context, a Attempt) {
	if a.Err == nil {
		return
	}
	o.log.Debug("retry attempt failed",
		zap.String("operation", o.operation),
		zap.Uint("attempt", a.Number),
		zap.Error(a.Err),
	)
}

func (o *LogObserver) OnSleep(_ context.Context, d time.Duration) {
	o.log.Debug("backing off",
		zap.String("operation", o.operation),
		zap.Duration("delay", d),
	)
}

func (o *LogObserver) OnSuccess(_ context.Context, s Summary) {
	o.log.Debug("operation succeeded",
		zap.String("operation", o.operation),
		zap.Uint("tries", s.Tries),
		zap.Duration("total_delay", s.TotalDelay),
	)
}

func (o *LogObserver) OnFailure(_ context.Context, s Summary) {
	o.log.Warn("operation failed",
		zap.String("operation", o.operation),
		zap.Uint("tries", s.Tries),
		zap.Duration("total_delay", s.TotalDelay),
		zap.Error(s.Err),
	)
}
