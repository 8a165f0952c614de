package retry

import (
	"context"
	"time"

	"github.com/skellig-io/redelay/observe"
)

type config struct {
	classifier Classifier
	observer   observe.Observer
	sleep      func(context.Context, time.Duration) error
}

// Option configures a retry run.
type Option func(*config)

func newConfig(opts []Option) config {
	cfg := config{
		classifier: DefaultClassifier,
		observer:   observe.NoopObserver{},
		sleep:      sleepContext,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.classifier == nil {
		cfg.classifier = DefaultClassifier
	}
	if cfg.observer == nil {
		cfg.observer = observe.NoopObserver{}
	}
	if cfg.sleep == nil {
		cfg.sleep = sleepContext
	}
	return cfg
}

// WithClassifier replaces the default retryable-vs-fatal classification.
func WithClassifier(c Classifier) Option {
	return func(cfg *config) {
		cfg.classifier = c
	}
}

// WithObserver attaches lifecycle instrumentation to the run.
func WithObserver(o observe.Observer) Option {
	return func(cfg *config) {
		cfg.observer = o
	}
}

// WithSleep replaces the wait step, letting tests observe the exact
// delays the engine would sleep without waiting them out.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(cfg *config) {
		cfg.sleep = sleep
	}
}
