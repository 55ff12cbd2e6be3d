package giga_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/giga"
	"github.com/fwojciec/giga/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWorker(t *testing.T, w *giga.DiffWorker) <-chan error {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return done
}

func receiveResult(t *testing.T, w *giga.DiffWorker) giga.DiffResult {
	t.Helper()
	select {
	case res := <-w.Results():
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("no diff result")
		return giga.DiffResult{}
	}
}

func TestDiffWorker(t *testing.T) {
	t.Parallel()

	t.Run("computes only the latest of a burst", func(t *testing.T) {
		t.Parallel()
		var mu sync.Mutex
		var seen []string
		engine := &mock.DiffEngine{
			DiffFn: func(_ context.Context, _ string, content []byte) (giga.Diff, error) {
				mu.Lock()
				seen = append(seen, string(content))
				mu.Unlock()
				return giga.Diff{{Kind: giga.PatchAdded, Start: 0, Count: len(content)}}, nil
			},
		}
		w := giga.NewDiffWorker(engine, giga.WithDebounce(100*time.Millisecond))
		startWorker(t, w)

		for i, content := range []string{"a", "ab", "abc", "abcd"} {
			w.Request(giga.DiffRequest{Generation: uint64(i + 1), Path: "/f", Content: []byte(content)})
		}
		res := receiveResult(t, w)

		assert.Equal(t, uint64(4), res.Generation)
		require.NoError(t, res.Err)
		assert.Equal(t, giga.Diff{{Kind: giga.PatchAdded, Start: 0, Count: 4}}, res.Diff)
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, []string{"abcd"}, seen)
	})

	t.Run("serves requests that arrive during a computation", func(t *testing.T) {
		t.Parallel()
		release := make(chan struct{})
		started := make(chan struct{}, 2)
		engine := &mock.DiffEngine{
			DiffFn: func(_ context.Context, _ string, content []byte) (giga.Diff, error) {
				started <- struct{}{}
				if string(content) == "first" {
					<-release
				}
				return nil, nil
			},
		}
		w := giga.NewDiffWorker(engine, giga.WithDebounce(0))
		startWorker(t, w)

		w.Request(giga.DiffRequest{Generation: 1, Content: []byte("first")})
		<-started
		w.Request(giga.DiffRequest{Generation: 2, Content: []byte("second")})
		close(release)

		assert.Equal(t, uint64(1), receiveResult(t, w).Generation)
		assert.Equal(t, uint64(2), receiveResult(t, w).Generation)
	})

	t.Run("reports engine errors", func(t *testing.T) {
		t.Parallel()
		engine := &mock.DiffEngine{
			DiffFn: func(context.Context, string, []byte) (giga.Diff, error) {
				return nil, errors.New("diff: parse error")
			},
		}
		w := giga.NewDiffWorker(engine, giga.WithDebounce(0))
		startWorker(t, w)

		w.Request(giga.DiffRequest{Generation: 3})
		res := receiveResult(t, w)

		assert.Equal(t, uint64(3), res.Generation)
		require.Error(t, res.Err)
	})

	t.Run("bounds computations by the timeout", func(t *testing.T) {
		t.Parallel()
		engine := &mock.DiffEngine{
			DiffFn: func(ctx context.Context, _ string, _ []byte) (giga.Diff, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
		}
		w := giga.NewDiffWorker(engine, giga.WithDebounce(0), giga.WithTimeout(20*time.Millisecond))
		startWorker(t, w)

		w.Request(giga.DiffRequest{Generation: 1})
		res := receiveResult(t, w)

		require.ErrorIs(t, res.Err, context.DeadlineExceeded)
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		t.Parallel()
		w := giga.NewDiffWorker(&mock.DiffEngine{})
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- w.Run(ctx) }()

		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(3 * time.Second):
			t.Fatal("worker did not stop")
		}
	})

	t.Run("request never blocks", func(t *testing.T) {
		t.Parallel()
		w := giga.NewDiffWorker(&mock.DiffEngine{})

		for i := range 100 {
			w.Request(giga.DiffRequest{Generation: uint64(i)})
		}
	})
}
