package slotlock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoExclusiveSerializesSameKey(t *testing.T) {
	lock := New()

	const goroutines = 20
	var (
		wg      sync.WaitGroup
		counter int
		active  int
		maxSeen int
		mu      sync.Mutex
	)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := lock.DoExclusive(context.Background(), "2026-03-14 10:00", func(ctx context.Context) error {
				mu.Lock()
				active++
				if active > maxSeen {
					maxSeen = active
				}
				mu.Unlock()

				counter++

				mu.Lock()
				active--
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, counter)
	assert.Equal(t, 1, maxSeen, "critical sections for one key must not overlap")
}

func TestDoExclusiveDifferentKeysRunConcurrently(t *testing.T) {
	lock := New()

	first := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_ = lock.DoExclusive(context.Background(), "2026-03-14 10:00", func(ctx context.Context) error {
			close(first)
			<-release
			return nil
		})
	}()

	<-first

	// A different key must not wait for the first one.
	done := make(chan struct{})
	go func() {
		_ = lock.DoExclusive(context.Background(), "2026-03-14 10:30", func(ctx context.Context) error {
			return nil
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("different key blocked behind an unrelated lock")
	}
	close(release)
}

func TestDoExclusiveCancelledContext(t *testing.T) {
	lock := New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	err := lock.DoExclusive(ctx, "key", func(ctx context.Context) error {
		ran = true
		return nil
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran, "fn must not run after cancellation")
}

func TestEntriesAreReleased(t *testing.T) {
	lock := New()

	require.NoError(t, lock.DoExclusive(context.Background(), "a", func(ctx context.Context) error { return nil }))
	require.NoError(t, lock.DoExclusive(context.Background(), "b", func(ctx context.Context) error { return nil }))

	lock.mu.Lock()
	defer lock.mu.Unlock()
	assert.Empty(t, lock.locks, "released keys must not accumulate")
}
