package messaging

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryConfig bounds publish retries. Zero values fall back to 3 retries
// starting at 100ms and capped at 2s.
type RetryConfig struct {
	MaxRetries  uint64
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
}

type retrying struct {
	Messaging
	cfg RetryConfig
}

// WithRetry wraps m so Publish retries transient failures with a capped
// fibonacci backoff. Consume and Close are passed through.
func WithRetry(m Messaging, cfg RetryConfig) Messaging {
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = 100 * time.Millisecond
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = 2 * time.Second
	}

	return &retrying{Messaging: m, cfg: cfg}
}

func (r *retrying) Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error) {
	b := retry.NewFibonacci(r.cfg.BaseBackoff)
	b = retry.WithCappedDuration(r.cfg.MaxBackoff, b)
	b = retry.WithMaxRetries(r.cfg.MaxRetries, b)

	var (
		result  PublishResult
		attempt int
	)
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++

		res, err := r.Messaging.Publish(ctx, destination, msg)
		if err == nil {
			result = res
			return nil
		}
		if permanent(err) {
			return err
		}

		slog.WarnContext(ctx, "publish failed, retrying", "destination", destination, "attempt", attempt, "error", err)
		return retry.RetryableError(err)
	})

	return result, err
}

func permanent(err error) bool {
	return errors.Is(err, ErrClosed) ||
		errors.Is(err, ErrNATSSubjectRequired) ||
		errors.Is(err, ErrKafkaTopicRequired) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
