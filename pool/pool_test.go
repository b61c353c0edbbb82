package pool_test

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperlayout/pool"
)

func TestNew_DefaultWorkers(t *testing.T) {
	require.Equal(t, runtime.NumCPU(), pool.New(0).Workers())
	require.Equal(t, runtime.NumCPU(), pool.New(-3).Workers())
	require.Equal(t, 4, pool.New(4).Workers())
	require.Panics(t, func() { pool.WithLogger(nil) })
}

func TestRun_EveryIndexOnce(t *testing.T) {
	p := pool.New(8)
	const n = 1000
	hits := make([]int32, n)

	err := p.Run(context.Background(), n, func(_ context.Context, i int) error {
		atomic.AddInt32(&hits[i], 1)
		return nil
	})
	require.NoError(t, err)
	for i, h := range hits {
		require.EqualValues(t, 1, h, "index %d", i)
	}
	require.EqualValues(t, 0, p.Inflight())
	require.EqualValues(t, 1, p.Batches())
}

func TestRun_RespectsBound(t *testing.T) {
	const workers = 3
	p := pool.New(workers)
	var cur, peak int64

	err := p.Run(context.Background(), 50, func(_ context.Context, _ int) error {
		c := atomic.AddInt64(&cur, 1)
		for {
			old := atomic.LoadInt64(&peak)
			if c <= old || atomic.CompareAndSwapInt64(&peak, old, c) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		atomic.AddInt64(&cur, -1)
		return nil
	})
	require.NoError(t, err)
	require.LessOrEqual(t, peak, int64(workers))
	require.GreaterOrEqual(t, peak, int64(1))
}

func TestRun_BarrierBeforeReturn(t *testing.T) {
	p := pool.New(4)
	var done int64

	err := p.Run(context.Background(), 20, func(_ context.Context, _ int) error {
		time.Sleep(2 * time.Millisecond)
		atomic.AddInt64(&done, 1)
		return nil
	})
	require.NoError(t, err)
	require.EqualValues(t, 20, atomic.LoadInt64(&done), "Run must not return before every task finished")
}

func TestRun_FirstErrorWins(t *testing.T) {
	p := pool.New(2)
	boom := errors.New("boom")

	err := p.Run(context.Background(), 10, func(_ context.Context, i int) error {
		if i == 3 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	require.EqualValues(t, 0, p.Inflight())
}

func TestRun_Degenerate(t *testing.T) {
	p := pool.New(2)
	require.ErrorIs(t, p.Run(context.Background(), 3, nil), pool.ErrNilTask)
	require.NoError(t, p.Run(context.Background(), 0, func(context.Context, int) error {
		t.Fatal("no task expected")
		return nil
	}))
}

func TestRun_ConcurrentBatches(t *testing.T) {
	p := pool.New(4)
	var wg sync.WaitGroup
	var total int64
	wg.Add(5)
	for b := 0; b < 5; b++ {
		go func() {
			defer wg.Done()
			require.NoError(t, p.Run(context.Background(), 100, func(context.Context, int) error {
				atomic.AddInt64(&total, 1)
				return nil
			}))
		}()
	}
	wg.Wait()
	require.EqualValues(t, 500, total)
	require.EqualValues(t, 5, p.Batches())
}
