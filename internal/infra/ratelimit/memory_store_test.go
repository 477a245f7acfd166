package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestMemoryStore(rps float64, burst int, opts ...MemoryOption) (*MemoryStore, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := NewMemoryStore(rps, burst, opts...)
	store.now = clock.Now

	return store, clock
}

func TestMemoryStore_BurstThenDeny(t *testing.T) {
	store, clock := newTestMemoryStore(1, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		d, err := store.Allow(ctx, "client-a")
		require.NoError(t, err)
		assert.True(t, d.Allowed, "request %d within burst", i)
	}

	d, err := store.Allow(ctx, "client-a")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, time.Second, d.RetryAfter)

	clock.Advance(time.Second)
	d, err = store.Allow(ctx, "client-a")
	require.NoError(t, err)
	assert.True(t, d.Allowed, "token refilled after one second")
}

func TestMemoryStore_KeysAreIndependent(t *testing.T) {
	store, _ := newTestMemoryStore(1, 1)
	ctx := context.Background()

	d, _ := store.Allow(ctx, "client-a")
	assert.True(t, d.Allowed)
	d, _ = store.Allow(ctx, "client-a")
	assert.False(t, d.Allowed)

	d, _ = store.Allow(ctx, "client-b")
	assert.True(t, d.Allowed)
	assert.Equal(t, 2, store.Len())
}

func TestMemoryStore_DeniedRequestDoesNotConsume(t *testing.T) {
	store, clock := newTestMemoryStore(2, 1)
	ctx := context.Background()

	d, _ := store.Allow(ctx, "k")
	require.True(t, d.Allowed)

	for i := 0; i < 5; i++ {
		d, _ = store.Allow(ctx, "k")
		assert.False(t, d.Allowed)
	}

	clock.Advance(500 * time.Millisecond)
	d, _ = store.Allow(ctx, "k")
	assert.True(t, d.Allowed)
}

func TestMemoryStore_Cleanup(t *testing.T) {
	store, clock := newTestMemoryStore(1, 1, WithIdleTTL(time.Minute))
	ctx := context.Background()

	_, _ = store.Allow(ctx, "old")
	clock.Advance(2 * time.Minute)
	_, _ = store.Allow(ctx, "fresh")

	store.Cleanup()
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_JanitorStopsWithContext(t *testing.T) {
	store := NewMemoryStore(1, 1, WithIdleTTL(time.Millisecond), WithCleanupEvery(5*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, _ = store.Allow(ctx, "k")
	store.StartJanitor(ctx)

	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)
}
