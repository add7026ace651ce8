package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryIdempotencyStore_Reserve(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer store.Close()

	ctx := context.Background()

	t.Run("claims a new key", func(t *testing.T) {
		claimed, err := store.Reserve(ctx, "profile-1", time.Hour)
		require.NoError(t, err)
		assert.True(t, claimed, "new key should be claimable")
	})

	t.Run("rejects an already claimed key", func(t *testing.T) {
		claimed, err := store.Reserve(ctx, "profile-2", time.Hour)
		require.NoError(t, err)
		assert.True(t, claimed)

		claimed, err = store.Reserve(ctx, "profile-2", time.Hour)
		require.NoError(t, err)
		assert.False(t, claimed, "active reservation should block a second claim")
	})

	t.Run("allows reclaiming after expiration", func(t *testing.T) {
		claimed, err := store.Reserve(ctx, "profile-3", 10*time.Millisecond)
		require.NoError(t, err)
		assert.True(t, claimed)

		time.Sleep(20 * time.Millisecond)

		claimed, err = store.Reserve(ctx, "profile-3", time.Hour)
		require.NoError(t, err)
		assert.True(t, claimed, "expired reservation should be reclaimable")
	})
}

func TestInMemoryIdempotencyStore_Release(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer store.Close()

	ctx := context.Background()

	claimed, err := store.Reserve(ctx, "profile-1", time.Hour)
	require.NoError(t, err)
	require.True(t, claimed)

	require.NoError(t, store.Release(ctx, "profile-1"))

	claimed, err = store.Reserve(ctx, "profile-1", time.Hour)
	require.NoError(t, err)
	assert.True(t, claimed, "released key should be claimable again")
}

func TestInMemoryIdempotencyStore_ReleaseUnknownKey(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer store.Close()

	assert.NoError(t, store.Release(context.Background(), "never-claimed"))
}

func TestInMemoryIdempotencyStore_ConcurrentReserve(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer store.Close()

	ctx := context.Background()
	const goroutines = 32

	var wg sync.WaitGroup
	var mu sync.Mutex
	claims := 0

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			claimed, err := store.Reserve(ctx, "contested", time.Hour)
			require.NoError(t, err)
			if claimed {
				mu.Lock()
				claims++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, claims, "exactly one goroutine should win the reservation")
}

func TestInMemoryIdempotencyStore_CloseIsIdempotent(t *testing.T) {
	store := NewInMemoryIdempotencyStore()

	require.NoError(t, store.Close())
	require.NoError(t, store.Close())
}

func TestInMemoryIdempotencyStore_Cleanup(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer store.Close()

	ctx := context.Background()

	_, err := store.Reserve(ctx, "short-lived", 5*time.Millisecond)
	require.NoError(t, err)
	_, err = store.Reserve(ctx, "long-lived", time.Hour)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	store.cleanup()

	assert.Equal(t, 1, store.Size())
}
