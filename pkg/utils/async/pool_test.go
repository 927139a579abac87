package async_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/namedseq/pkg/utils/async"
)

// safeBuffer is a thread-safe buffer for concurrent logging
type safeBuffer struct {
	b bytes.Buffer
	m sync.Mutex
}

func (sb *safeBuffer) Write(p []byte) (int, error) {
	sb.m.Lock()
	defer sb.m.Unlock()
	return sb.b.Write(p)
}

func (sb *safeBuffer) String() string {
	sb.m.Lock()
	defer sb.m.Unlock()
	return sb.b.String()
}

func TestPool(t *testing.T) {
	t.Run("runs all submitted tasks", func(t *testing.T) {
		pool := async.NewPool(context.Background(), 4)

		var count atomic.Int64
		for i := 0; i < 100; i++ {
			gt.NoError(t, pool.Submit(func(ctx context.Context) error {
				count.Add(1)
				return nil
			}))
		}

		gt.NoError(t, pool.Wait())
		gt.Equal(t, count.Load(), int64(100))
	})

	t.Run("collects task errors", func(t *testing.T) {
		pool := async.NewPool(context.Background(), 2)

		gt.NoError(t, pool.Submit(func(ctx context.Context) error {
			return errors.New("first failure")
		}))
		gt.NoError(t, pool.Submit(func(ctx context.Context) error {
			return nil
		}))
		gt.NoError(t, pool.Submit(func(ctx context.Context) error {
			return errors.New("second failure")
		}))

		err := pool.Wait()
		gt.Error(t, err)
		gt.String(t, err.Error()).Contains("first failure")
		gt.String(t, err.Error()).Contains("second failure")
	})

	t.Run("rejects submission after cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		pool := async.NewPool(ctx, 1)

		cancel()
		// Workers may still drain the channel after cancellation, so
		// keep submitting until the closed context wins the select.
		var err error
		for i := 0; i < 1000; i++ {
			if err = pool.Submit(func(ctx context.Context) error { return nil }); err != nil {
				break
			}
		}
		gt.Error(t, err)

		gt.NoError(t, pool.Wait())
	})

	t.Run("recovers from panic", func(t *testing.T) {
		logBuf := &safeBuffer{}
		logger := slog.New(slog.NewTextHandler(logBuf, &slog.HandlerOptions{
			Level: slog.LevelError,
		}))
		ctx := ctxlog.With(context.Background(), logger)

		pool := async.NewPool(ctx, 1)
		gt.NoError(t, pool.Submit(func(ctx context.Context) error {
			panic("boom in task")
		}))
		gt.NoError(t, pool.Submit(func(ctx context.Context) error {
			return nil
		}))

		err := pool.Wait()
		gt.Error(t, err)
		gt.String(t, err.Error()).Contains("panic in pool task")

		logOutput := logBuf.String()
		gt.True(t, strings.Contains(logOutput, "boom in task"))
		gt.True(t, strings.Contains(logOutput, "goroutine"))
	})

	t.Run("tasks receive the pool context", func(t *testing.T) {
		logger := slog.Default()
		ctx := ctxlog.With(context.Background(), logger)

		pool := async.NewPool(ctx, 1)
		gt.NoError(t, pool.Submit(func(ctx context.Context) error {
			gt.NotNil(t, ctxlog.From(ctx))
			return nil
		}))
		gt.NoError(t, pool.Wait())
	})
}
