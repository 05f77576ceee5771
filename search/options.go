package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/poiesic/scout/core"
	"github.com/poiesic/scout/normalize"
)

// options holds the settings shared by the tender and doctor searchers.
type options struct {
	logger     *slog.Logger
	pool       *normalize.Pool
	generation *core.Generation
	now        func() time.Time
}

// Option configures a searcher.
type Option func(*options) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
		return nil
	}
}

// WithPool normalizes results on a shared worker pool. The caller owns the
// pool and releases it. Default is to normalize on the calling goroutine.
func WithPool(pool *normalize.Pool) Option {
	return func(o *options) error {
		o.pool = pool
		return nil
	}
}

// WithGeneration stamps results from a shared request counter, so several
// searchers can supersede each other. Default is a private counter.
func WithGeneration(gen *core.Generation) Option {
	return func(o *options) error {
		if gen == nil {
			gen = &core.Generation{}
		}
		o.generation = gen
		return nil
	}
}

// WithClock sets the time source used for result ids.
// Default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) error {
		if now == nil {
			now = time.Now
		}
		o.now = now
		return nil
	}
}

func newOptions(component string, opts []Option) (options, error) {
	o := options{
		logger:     slog.Default(),
		generation: &core.Generation{},
		now:        time.Now,
	}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return options{}, err
		}
	}
	o.logger = o.logger.With("component", component)
	return o, nil
}

// pause waits for d or until ctx is done. It never fails, so a cancelled
// caller still gets its fallback data.
func pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
