package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyMessaging struct {
	Messaging
	failures int
	err      error
	calls    int
}

func (f *flakyMessaging) Publish(_ context.Context, destination string, _ OutgoingMessage) (PublishResult, error) {
	f.calls++
	if f.calls <= f.failures {
		return PublishResult{}, f.err
	}
	return PublishResult{Topic: destination, Offset: int64(f.calls)}, nil
}

func TestWithRetry_Publish(t *testing.T) {
	cfg := RetryConfig{MaxRetries: 3, BaseBackoff: time.Millisecond, MaxBackoff: 2 * time.Millisecond}

	t.Run("recovers after transient failures", func(t *testing.T) {
		inner := &flakyMessaging{failures: 2, err: errors.New("connection refused")}

		res, err := WithRetry(inner, cfg).Publish(context.Background(), "restaurant_registered", OutgoingMessage{})
		require.NoError(t, err)
		assert.Equal(t, 3, inner.calls)
		assert.Equal(t, "restaurant_registered", res.Topic)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		inner := &flakyMessaging{failures: 10, err: errors.New("connection refused")}

		_, err := WithRetry(inner, cfg).Publish(context.Background(), "restaurant_registered", OutgoingMessage{})
		assert.EqualError(t, err, "connection refused")
		assert.Equal(t, 4, inner.calls)
	})

	t.Run("permanent error is not retried", func(t *testing.T) {
		inner := &flakyMessaging{failures: 10, err: ErrClosed}

		_, err := WithRetry(inner, cfg).Publish(context.Background(), "restaurant_registered", OutgoingMessage{})
		assert.ErrorIs(t, err, ErrClosed)
		assert.Equal(t, 1, inner.calls)
	})
}

func TestWithRetry_Defaults(t *testing.T) {
	r, ok := WithRetry(&flakyMessaging{}, RetryConfig{}).(*retrying)
	require.True(t, ok)
	assert.Equal(t, uint64(3), r.cfg.MaxRetries)
	assert.Equal(t, 100*time.Millisecond, r.cfg.BaseBackoff)
	assert.Equal(t, 2*time.Second, r.cfg.MaxBackoff)
}
