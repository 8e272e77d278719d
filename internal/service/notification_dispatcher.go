package service

import (
	"context"
	"sync"
	"time"

	"estate-transfer/config"
	"estate-transfer/internal/core/domain"
	"estate-transfer/internal/core/ports"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

const mailAttemptTimeout = 30 * time.Second

type mailJob struct {
	n   domain.Notification
	msg ports.Message
}

// NotificationDispatcher implements ports.Notifier on a bounded worker pool.
// Codes that cannot be mailed are written to the operator log.
type NotificationDispatcher struct {
	mailer   ports.Mailer
	retry    config.RetryConfig
	validFor time.Duration
	log      zerolog.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan mailJob
	wg     sync.WaitGroup
}

// NewNotificationDispatcher starts cfg.Workers delivery goroutines.
// A nil mailer makes every Send fall back to the operator log.
func NewNotificationDispatcher(mailer ports.Mailer, cfg config.NotifyConfig, retry config.RetryConfig, validFor time.Duration, log zerolog.Logger) *NotificationDispatcher {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	size := cfg.QueueSize
	if size < 0 {
		size = 0
	}

	d := &NotificationDispatcher{
		mailer:   mailer,
		retry:    retry,
		validFor: validFor,
		log:      log,
		queue:    make(chan mailJob, size),
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.work()
	}
	return d
}

// Send queues n for mail delivery and returns immediately. True means
// the message was accepted onto the queue, not that it was delivered;
// false means the code went to the operator log.
func (d *NotificationDispatcher) Send(_ context.Context, n domain.Notification) bool {
	if d.mailer == nil {
		d.fallback(n, "mailer not configured")
		return false
	}

	msg, err := RenderCodeMessage(n, d.validFor)
	if err != nil {
		d.log.Error().Err(err).Str("transaction_id", n.TransferID.String()).Msg("rendering code email")
		d.fallback(n, "render failed")
		return false
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.fallback(n, "dispatcher closed")
		return false
	}

	select {
	case d.queue <- mailJob{n: n, msg: msg}:
		return true
	default:
		d.fallback(n, "dispatch queue full")
		return false
	}
}

// Close stops accepting notifications and waits for queued ones to drain.
func (d *NotificationDispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *NotificationDispatcher) work() {
	defer d.wg.Done()
	for job := range d.queue {
		d.deliver(job)
	}
}

func (d *NotificationDispatcher) deliver(job mailJob) {
	attempts := d.retry.MaxAttempts
	if attempts == 0 {
		attempts = 1
	}
	b := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(d.retry.InitialInterval),
		backoff.WithMaxInterval(d.retry.MaxInterval),
		backoff.WithMaxElapsedTime(0),
	)

	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		ctx, cancel := context.WithTimeout(context.Background(), mailAttemptTimeout)
		defer cancel()
		return d.mailer.Send(ctx, job.msg)
	}, backoff.WithMaxRetries(b, attempts-1))

	if err != nil {
		d.log.Warn().Err(err).
			Str("transaction_id", job.n.TransferID.String()).
			Int("attempts", attempt).
			Msg("code email delivery failed")
		d.fallback(job.n, "delivery failed")
		return
	}

	d.log.Info().
		Str("transaction_id", job.n.TransferID.String()).
		Str("role", string(job.n.Role)).
		Int("attempts", attempt).
		Msg("code email delivered")
}

// fallback writes the code where an operator can relay it.
func (d *NotificationDispatcher) fallback(n domain.Notification, reason string) {
	d.log.Warn().
		Str("channel", "operator").
		Str("transaction_id", n.TransferID.String()).
		Str("property_id", n.PropertyID).
		Str("role", string(n.Role)).
		Str("to", n.To).
		Str("code", n.Code).
		Str("reason", reason).
		Msg("one-time code not mailed")
}
