package service

import (
	"context"
	"errors"
	"time"

	"estate-transfer/config"
	"estate-transfer/pkg/apperror"

	"github.com/cenkalti/backoff/v4"
)

// Retrier re-runs store and directory operations that fail with a
// downstream error. Every attempt gets its own timeout.
type Retrier struct {
	maxAttempts uint64
	initial     time.Duration
	max         time.Duration
	timeout     time.Duration
}

// NewRetrier creates a Retrier. callTimeout <= 0 disables the per-attempt timeout.
func NewRetrier(cfg config.RetryConfig, callTimeout time.Duration) *Retrier {
	attempts := cfg.MaxAttempts
	if attempts == 0 {
		attempts = 1
	}
	return &Retrier{
		maxAttempts: attempts,
		initial:     cfg.InitialInterval,
		max:         cfg.MaxInterval,
		timeout:     callTimeout,
	}
}

// Do runs op until it succeeds, fails with a non-retryable error, or the
// attempt budget is spent. Plain errors returned by op are treated as
// downstream failures.
func (r *Retrier) Do(ctx context.Context, op func(ctx context.Context) error) error {
	b := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(r.initial),
		backoff.WithMaxInterval(r.max),
		backoff.WithMaxElapsedTime(0),
	)

	return backoff.Retry(func() error {
		err := r.attempt(ctx, op)
		if err == nil {
			return nil
		}
		if !apperror.IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(b, r.maxAttempts-1), ctx))
}

func (r *Retrier) attempt(ctx context.Context, op func(ctx context.Context) error) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return downstream(op(ctx))
}

// downstream classifies err: application errors pass through, anything
// else is a store or directory failure.
func downstream(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.ErrDownstream(err)
}
