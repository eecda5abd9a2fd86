package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/player-manager/internal/domain"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestStore(ttl time.Duration) (*Store, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 4, 8, 12, 0, 0, 0, time.UTC)}
	store := NewStore(ttl)
	store.now = clock.Now
	return store, clock
}

func TestStore_CreateGet(t *testing.T) {
	store, _ := newTestStore(time.Hour)

	sess := store.Create()
	require.NotEmpty(t, sess.ID)

	got, ok := store.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)

	_, ok = store.Get("unknown")
	assert.False(t, ok)

	store.Delete(sess.ID)
	_, ok = store.Get(sess.ID)
	assert.False(t, ok)
}

func TestStore_IdleExpiry(t *testing.T) {
	store, clock := newTestStore(time.Hour)

	active := store.Create()
	idle := store.Create()
	require.Equal(t, 2, store.Len())

	clock.Advance(40 * time.Minute)
	_, ok := store.Get(active.ID)
	require.True(t, ok)

	clock.Advance(40 * time.Minute)
	assert.Equal(t, 1, store.Expire())
	assert.Equal(t, 1, store.Len())

	_, ok = store.Get(idle.ID)
	assert.False(t, ok)
	_, ok = store.Get(active.ID)
	assert.True(t, ok)
}

func TestStore_GetDropsExpired(t *testing.T) {
	store, clock := newTestStore(time.Minute)
	sess := store.Create()

	clock.Advance(2 * time.Minute)
	_, ok := store.Get(sess.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestStore_RunStopsOnCancel(t *testing.T) {
	store, clock := newTestStore(time.Minute)
	store.Create()
	clock.Advance(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	removed := make(chan int, 1)
	done := make(chan struct{})
	go func() {
		store.Run(ctx, 5*time.Millisecond, func(n int) { removed <- n })
		close(done)
	}()

	select {
	case n := <-removed:
		assert.Equal(t, 1, n)
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not run")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestSession_DoAndFlash(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	sess := store.Create()

	sess.Do(func(state *domain.FormState) {
		state.Selected = "Babe Ruth"
	})
	sess.Do(func(state *domain.FormState) {
		assert.Equal(t, "Babe Ruth", state.Selected)
	})

	assert.Nil(t, sess.PopFlash())
	sess.SetFlash(FlashError, "boom")
	assert.Equal(t, &Flash{Kind: FlashError, Message: "boom"}, sess.PopFlash())
	assert.Nil(t, sess.PopFlash())
}
