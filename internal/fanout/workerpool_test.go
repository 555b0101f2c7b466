package fanout

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPoolRunsAllJobs(t *testing.T) {
	pool := NewWorkerPool(4, 0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.Start(ctx)

	var count int64
	const jobs = 50
	var wg sync.WaitGroup
	wg.Add(jobs)
	for i := 0; i < jobs; i++ {
		if err := pool.Submit(func(ctx context.Context) error {
			defer wg.Done()
			atomic.AddInt64(&count, 1)
			return nil
		}); err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
	}
	wg.Wait()
	pool.Close()

	if got := atomic.LoadInt64(&count); got != jobs {
		t.Errorf("count = %d, want %d", got, jobs)
	}
}

func TestWorkerPoolSubmitAfterCloseFails(t *testing.T) {
	pool := NewWorkerPool(2, 0)
	ctx := context.Background()
	pool.Start(ctx)
	pool.Close()

	if err := pool.Submit(func(ctx context.Context) error { return nil }); err != ErrPoolClosed {
		t.Errorf("Submit() after Close() = %v, want ErrPoolClosed", err)
	}
}

func TestWorkerPoolDefaultsInvalidSizes(t *testing.T) {
	pool := NewWorkerPool(0, -1)
	if pool.workers != 1 {
		t.Errorf("workers = %d, want 1", pool.workers)
	}
	if cap(pool.jobs) != 2 {
		t.Errorf("queue capacity = %d, want 2", cap(pool.jobs))
	}
}

func TestWorkerPoolStopsOnContextCancel(t *testing.T) {
	pool := NewWorkerPool(1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)

	started := make(chan struct{})
	block := make(chan struct{})
	if err := pool.Submit(func(ctx context.Context) error {
		close(started)
		<-block
		return nil
	}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	<-started
	cancel()
	close(block)

	done := make(chan struct{})
	go func() {
		pool.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close() did not return after context cancellation")
	}
}
