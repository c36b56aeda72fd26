// Package storagetest runs the token store contract against any backend.
package storagetest

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/authkeeper/internal/model"
)

// Harness is a fresh store plus a way to move its notion of time forward.
type Harness struct {
	Store   model.TokenStore
	Advance func(d time.Duration)
}

// Factory builds a Harness. It is called once per subtest.
type Factory func(t *testing.T) Harness

// Clock is a goroutine-safe manual clock for backends that take a time source.
type Clock struct {
	mu sync.Mutex
	t  time.Time
}

// NewClock returns a Clock set to the current time.
func NewClock() *Clock {
	return &Clock{t: time.Now()}
}

// Now returns the clock's current time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

// Advance moves the clock forward.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// Run executes the contract suite.
func Run(t *testing.T, newHarness Factory) {
	ctx := context.Background()
	const ttl = 10 * time.Minute

	t.Run("store then validate", func(t *testing.T) {
		h := newHarness(t)
		u := uuid.New()

		require.NoError(t, h.Store.Store(ctx, u, "secret-a", ttl))

		ok, err := h.Store.Validate(ctx, u, "secret-a")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = h.Store.Validate(ctx, u, "secret-b")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("invalidate then validate", func(t *testing.T) {
		h := newHarness(t)
		u := uuid.New()

		require.NoError(t, h.Store.Store(ctx, u, "secret-a", ttl))
		require.NoError(t, h.Store.Invalidate(ctx, u, "secret-a"))

		ok, err := h.Store.Validate(ctx, u, "secret-a")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("invalidate is idempotent", func(t *testing.T) {
		h := newHarness(t)
		u := uuid.New()

		require.NoError(t, h.Store.Invalidate(ctx, u, "never-stored"))
		require.NoError(t, h.Store.InvalidateAll(ctx, u))
		require.NoError(t, h.Store.InvalidateAll(ctx, u))
	})

	t.Run("secrets are scoped to user", func(t *testing.T) {
		h := newHarness(t)
		u1, u2 := uuid.New(), uuid.New()

		require.NoError(t, h.Store.Store(ctx, u1, "shared", ttl))

		ok, err := h.Store.Validate(ctx, u2, "shared")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("expired record stays invalid", func(t *testing.T) {
		h := newHarness(t)
		u := uuid.New()

		require.NoError(t, h.Store.Store(ctx, u, "secret-a", time.Minute))
		h.Advance(time.Minute + time.Second)

		for i := 0; i < 2; i++ {
			ok, err := h.Store.Validate(ctx, u, "secret-a")
			require.NoError(t, err)
			assert.False(t, ok)
		}

		require.NoError(t, h.Store.Store(ctx, u, "secret-a", time.Minute))
		ok, err := h.Store.Validate(ctx, u, "secret-a")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("second store extends expiry", func(t *testing.T) {
		h := newHarness(t)
		u := uuid.New()

		require.NoError(t, h.Store.Store(ctx, u, "secret-a", time.Minute))
		h.Advance(30 * time.Second)
		require.NoError(t, h.Store.Store(ctx, u, "secret-a", time.Minute))
		h.Advance(45 * time.Second)

		ok, err := h.Store.Validate(ctx, u, "secret-a")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("consume is single use", func(t *testing.T) {
		h := newHarness(t)
		u := uuid.New()

		require.NoError(t, h.Store.Store(ctx, u, "secret-a", ttl))

		ok, err := h.Store.Consume(ctx, u, "secret-a")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = h.Store.Consume(ctx, u, "secret-a")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = h.Store.Validate(ctx, u, "secret-a")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("consume rejects expired", func(t *testing.T) {
		h := newHarness(t)
		u := uuid.New()

		require.NoError(t, h.Store.Store(ctx, u, "secret-a", time.Minute))
		h.Advance(2 * time.Minute)

		ok, err := h.Store.Consume(ctx, u, "secret-a")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("invalidate all keeps other users", func(t *testing.T) {
		h := newHarness(t)
		u1, u2 := uuid.New(), uuid.New()

		require.NoError(t, h.Store.Store(ctx, u1, "a1", ttl))
		require.NoError(t, h.Store.Store(ctx, u1, "a2", ttl))
		require.NoError(t, h.Store.Store(ctx, u2, "b1", ttl))

		require.NoError(t, h.Store.InvalidateAll(ctx, u1))

		for _, s := range []string{"a1", "a2"} {
			ok, err := h.Store.Validate(ctx, u1, s)
			require.NoError(t, err)
			assert.False(t, ok, s)
		}
		ok, err := h.Store.Validate(ctx, u2, "b1")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("concurrent consume has one winner", func(t *testing.T) {
		h := newHarness(t)
		u := uuid.New()
		require.NoError(t, h.Store.Store(ctx, u, "contested", ttl))

		const workers = 16
		var (
			wg      sync.WaitGroup
			winners atomic.Int32
			start   = make(chan struct{})
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				ok, err := h.Store.Consume(ctx, u, "contested")
				if err == nil && ok {
					winners.Add(1)
				}
			}()
		}
		close(start)
		wg.Wait()

		assert.Equal(t, int32(1), winners.Load())
	})
}
