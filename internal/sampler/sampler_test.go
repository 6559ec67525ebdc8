package sampler

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyluth/drey/internal/seedtest"
	"github.com/dyluth/drey/pkg/seed"
)

func TestRun(t *testing.T) {
	t.Run("counts every attempt exactly once", func(t *testing.T) {
		src := seedtest.Always(7)
		sum, err := Run(context.Background(), src, Options{Attempts: 100, Workers: 4})
		require.NoError(t, err)

		assert.Equal(t, "always", sum.Source)
		assert.Equal(t, 100, sum.Attempts)
		assert.Equal(t, 100, sum.Successes)
		assert.Equal(t, 0, sum.Failures)
		assert.Len(t, sum.Latencies, 100)
		assert.Equal(t, 100, src.Calls())
	})

	t.Run("tallies failures", func(t *testing.T) {
		sum, err := Run(context.Background(), seedtest.Never(), Options{Attempts: 50, Workers: 1})
		require.NoError(t, err)

		assert.Equal(t, 50, sum.Attempts)
		assert.Equal(t, 0, sum.Successes)
		assert.Equal(t, 50, sum.Failures)
	})

	t.Run("mixed outcomes split the tallies", func(t *testing.T) {
		src := seedtest.New("flaky",
			seedtest.Outcome{V: 1, OK: true},
			seedtest.Outcome{},
			seedtest.Outcome{},
			seedtest.Outcome{V: 2, OK: true},
		)
		sum, err := Run(context.Background(), src, Options{Attempts: 4, Workers: 1})
		require.NoError(t, err)

		assert.Equal(t, 2, sum.Successes)
		assert.Equal(t, 2, sum.Failures)
	})

	t.Run("zero attempts completes immediately", func(t *testing.T) {
		src := seedtest.Always(1)
		sum, err := Run(context.Background(), src, Options{Attempts: 0, Workers: 4})
		require.NoError(t, err)

		assert.Equal(t, 0, sum.Attempts)
		assert.Empty(t, sum.Latencies)
		assert.Equal(t, 0, src.Calls())
	})

	t.Run("rejects negative attempts", func(t *testing.T) {
		_, err := Run(context.Background(), seedtest.Always(1), Options{Attempts: -1, Workers: 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "attempts must be >= 0")
	})

	t.Run("rejects a workerless pool", func(t *testing.T) {
		_, err := Run(context.Background(), seedtest.Always(1), Options{Attempts: 10, Workers: 0})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "workers must be >= 1")
	})

	t.Run("already-cancelled context makes no attempts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		src := seedtest.Always(1)
		sum, err := Run(ctx, src, Options{Attempts: 1000, Workers: 4})
		require.ErrorIs(t, err, context.Canceled)
		require.NotNil(t, sum)

		assert.Equal(t, 0, sum.Attempts)
		assert.Equal(t, 0, src.Calls())
	})

	t.Run("system source end to end", func(t *testing.T) {
		sum, err := Run(context.Background(), seed.NewSystem(), Options{Attempts: 200, Workers: 4})
		require.NoError(t, err)

		assert.Equal(t, seed.NameSystem, sum.Source)
		assert.Equal(t, 200, sum.Attempts)
		assert.Greater(t, sum.Successes, 100)
	})

	t.Run("cancellation mid-run returns a partial summary", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		src := &cancellingSource{cancel: cancel, after: 5}
		sum, err := Run(ctx, src, Options{Attempts: 10000, Workers: 1})
		require.ErrorIs(t, err, context.Canceled)
		require.NotNil(t, sum)

		assert.Equal(t, 5, sum.Attempts)
		assert.Equal(t, 5, sum.Successes)
		assert.Len(t, sum.Latencies, 5)
	})
}

// cancellingSource succeeds on every attempt and cancels its context after
// a fixed number of calls.
type cancellingSource struct {
	calls  atomic.Int64
	cancel context.CancelFunc
	after  int64
}

func (c *cancellingSource) Name() string { return "cancelling" }

func (c *cancellingSource) TrySeed() (uint64, bool) {
	if c.calls.Add(1) == c.after {
		c.cancel()
	}
	return 1, true
}
