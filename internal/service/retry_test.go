package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"estate-transfer/config"
	"estate-transfer/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestRetrier_RetriesDownstreamFailures(t *testing.T) {
	r := newTestRetrier()
	calls := 0

	err := r.Do(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetrier_GivesUpAsDownstream(t *testing.T) {
	r := newTestRetrier()
	calls := 0

	err := r.Do(context.Background(), func(context.Context) error {
		calls++
		return errors.New("connection refused")
	})
	assert.True(t, apperror.IsRetryable(err))
	assert.Equal(t, 3, calls)
}

func TestRetrier_DoesNotRetryApplicationErrors(t *testing.T) {
	r := newTestRetrier()
	calls := 0

	err := r.Do(context.Background(), func(context.Context) error {
		calls++
		return apperror.ErrInvalidCode()
	})
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidCode))
	assert.Equal(t, 1, calls)
}

func TestRetrier_PerAttemptTimeout(t *testing.T) {
	r := NewRetrier(config.RetryConfig{MaxAttempts: 1}, 10*time.Millisecond)

	err := r.Do(context.Background(), func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	assert.True(t, apperror.IsRetryable(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
