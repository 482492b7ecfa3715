package idempotency

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func newRedis(t *testing.T) *redis.Client {
	t.Helper()

	if os.Getenv("GOFOOD_INTEGRATION") != "true" {
		t.Skip("set GOFOOD_INTEGRATION=true to run redis integration tests")
	}

	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	opt, err := redis.ParseURL(uri)
	require.NoError(t, err)

	client := redis.NewClient(opt)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestStateTracker_Exec(t *testing.T) {
	tracker := New(newRedis(t))
	ctx := context.Background()

	calls := 0
	fn := func(context.Context) error {
		calls++
		return nil
	}

	require.NoError(t, tracker.Exec(ctx, "restaurant:key-1", fn))
	assert.ErrorIs(t, tracker.Exec(ctx, "restaurant:key-1", fn), ErrAlreadyCompleted)
	assert.Equal(t, 1, calls)

	require.NoError(t, tracker.Exec(ctx, "restaurant:key-2", fn))
	assert.Equal(t, 2, calls)
}

func TestStateTracker_ExecFailure(t *testing.T) {
	tracker := New(newRedis(t))
	ctx := context.Background()
	errInsert := errors.New("insert failed")

	err := tracker.Exec(ctx, "rider:key", func(context.Context) error { return errInsert })
	require.ErrorIs(t, err, errInsert)

	err = tracker.Exec(ctx, "rider:key", func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrAlreadyFailed)
}

func TestStateTracker_InProgress(t *testing.T) {
	tracker := New(newRedis(t))
	ctx := context.Background()

	state, err := tracker.Acquire(ctx, "held", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, StateNone, state)

	err = tracker.Exec(ctx, "held", func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrAlreadyInProgress)
}
