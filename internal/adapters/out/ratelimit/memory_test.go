package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return zerowrap.WithCtx(context.Background(), zerowrap.Default())
}

func TestMemoryStore_Allow_WithinLimit(t *testing.T) {
	store := NewMemoryStore(10, 10) // 10 RPS, burst 10
	ctx := testContext()

	for i := 0; i < 10; i++ {
		assert.True(t, store.Allow(ctx, "test"), "request %d should be allowed", i+1)
	}
}

func TestMemoryStore_Allow_ExceedsLimit(t *testing.T) {
	store := NewMemoryStore(1, 1)
	ctx := testContext()

	assert.True(t, store.Allow(ctx, "test"), "first request should be allowed")
	assert.False(t, store.Allow(ctx, "test"), "second request should be rate limited")
}

func TestMemoryStore_Allow_Replenishes(t *testing.T) {
	store := NewMemoryStore(10, 5)
	ctx := testContext()

	for i := 0; i < 5; i++ {
		assert.True(t, store.Allow(ctx, "test"), "burst request %d should be allowed", i+1)
	}
	assert.False(t, store.Allow(ctx, "test"), "request exceeding burst should be rate limited")

	time.Sleep(200 * time.Millisecond)

	assert.True(t, store.Allow(ctx, "test"), "request after waiting should be allowed")
}

func TestMemoryStore_Allow_IndependentKeys(t *testing.T) {
	store := NewMemoryStore(1, 1)
	ctx := testContext()

	assert.True(t, store.Allow(ctx, "ip:192.168.1.1"))
	assert.False(t, store.Allow(ctx, "ip:192.168.1.1"))
	assert.True(t, store.Allow(ctx, "ip:192.168.1.2"))
}

func TestMemoryStore_ZeroBurstStillAllowsOne(t *testing.T) {
	store := NewMemoryStore(1, 0)

	assert.True(t, store.Allow(testContext(), "test"))
}

func TestMemoryStore_Sweep(t *testing.T) {
	store := NewMemoryStore(1, 1)
	now := time.Now()
	store.now = func() time.Time { return now }
	ctx := testContext()

	store.Allow(ctx, "old")
	now = now.Add(DefaultIdleTTL + time.Second)
	store.Allow(ctx, "fresh")

	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Len())

	// An evicted key starts with a full bucket again.
	assert.True(t, store.Allow(ctx, "old"))
}

func TestMemoryStore_Run_StopsOnCancel(t *testing.T) {
	store := NewMemoryStore(1, 1)
	ctx, cancel := context.WithCancel(testContext())

	done := make(chan struct{})
	go func() {
		store.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestMemoryStore_Allow_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore(1000, 100)
	ctx := testContext()

	var wg sync.WaitGroup
	results := make(chan bool, 200)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				results <- store.Allow(ctx, "concurrent")
			}
		}()
	}

	wg.Wait()
	close(results)

	allowed := 0
	for result := range results {
		if result {
			allowed++
		}
	}

	require.GreaterOrEqual(t, allowed, 100, "at least burst number of requests should be allowed")
	require.LessOrEqual(t, allowed, 200, "should not exceed total requests")
}
