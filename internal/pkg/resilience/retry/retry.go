// Package retry wraps avast/retry-go behind a small interface so callers can
// run an operation under an exponential backoff policy and swap the policy
// for a mock in tests.
//
//	r := retry.New(
//	    retry.WithAttempts(5),
//	    retry.WithDelay(time.Second),
//	    retry.WithMaxDelay(30*time.Second),
//	)
//	err := r.Execute(ctx, func() error { return dial(ctx) })
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry runs operations under a retry policy.
type Retry interface {
	// Execute calls operation until it returns nil, the attempts are
	// exhausted, or ctx is done. Errors wrapped with Unrecoverable stop the
	// loop immediately.
	Execute(ctx context.Context, operation func() error) error
}

// OnRetryFunc is called after a failed attempt. attempt is zero based.
type OnRetryFunc func(attempt uint, err error)

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint          // total attempts, 0 means retry until ctx is done
	delay       time.Duration // base delay between attempts
	maxDelay    time.Duration // upper bound for the backoff delay
	lastErrOnly bool          // return only the last error instead of all of them
	onRetry     OnRetryFunc
}

// Option configures New.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry using exponential backoff.
//
// Defaults: 3 attempts, 1s base delay, 5s max delay, only the last error is
// returned.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}

	if r.cfg.onRetry != nil {
		options = append(options, retry.OnRetry(retry.OnRetryFunc(r.cfg.onRetry)))
	}

	return retry.Do(operation, options...)
}

// Unrecoverable marks err so Execute returns it without further attempts.
func Unrecoverable(err error) error {
	return retry.Unrecoverable(err)
}

// WithAttempts sets the total number of attempts, including the first one.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay used by the exponential backoff.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between attempts.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly sets whether only the error of the final attempt is
// returned. When false every attempt's error is combined.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithOnRetry registers fn to be called after each failed attempt.
func WithOnRetry(fn OnRetryFunc) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}
