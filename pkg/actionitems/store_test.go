package actionitems

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coralcrm/copilot/pkg/skills"
)

// fakeClock lets tests advance time manually.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time {
	return c.current
}

func (c *fakeClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{current: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	return NewStore(ttl, WithClock(clock.now)), clock
}

func TestAddAndGet(t *testing.T) {
	store, clock := newTestStore(t, time.Hour)

	entity := &skills.EntityReference{Type: skills.EntityDeal, ID: "d1", Name: "Acme renewal"}
	item := store.Add("Send the proposal", "proposal", entity)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, StatusPending, item.Status)
	assert.Equal(t, clock.current, item.CreatedAt)
	assert.Equal(t, clock.current.Add(time.Hour), item.ExpiresAt)

	got, ok := store.Get(item.ID)
	require.True(t, ok)
	assert.Equal(t, "Send the proposal", got.Title)
	assert.Equal(t, "proposal", got.Command)
	require.NotNil(t, got.Entity)
	assert.Equal(t, "d1", got.Entity.ID)
}

func TestApproveAndDismiss(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	t.Run("approve a pending item", func(t *testing.T) {
		item := store.Add("Follow up with Jo", "followup", nil)
		require.NoError(t, store.Approve(item.ID))

		got, ok := store.Get(item.ID)
		require.True(t, ok)
		assert.Equal(t, StatusApproved, got.Status)
	})

	t.Run("dismiss a pending item", func(t *testing.T) {
		item := store.Add("Chase the renewal", "chase", nil)
		require.NoError(t, store.Dismiss(item.ID))

		got, ok := store.Get(item.ID)
		require.True(t, ok)
		assert.Equal(t, StatusDismissed, got.Status)
	})

	t.Run("double decision is rejected", func(t *testing.T) {
		item := store.Add("Prep the agenda", "agenda", nil)
		require.NoError(t, store.Approve(item.ID))
		assert.Error(t, store.Dismiss(item.ID))
	})

	t.Run("unknown id", func(t *testing.T) {
		assert.Error(t, store.Approve("nope"))
	})
}

func TestExpiry(t *testing.T) {
	store, clock := newTestStore(t, 30*time.Minute)

	item := store.Add("Send the proposal", "proposal", nil)

	t.Run("visible just before expiry", func(t *testing.T) {
		clock.advance(30*time.Minute - time.Second)
		_, ok := store.Get(item.ID)
		assert.True(t, ok)
	})

	t.Run("gone at expiry", func(t *testing.T) {
		clock.advance(time.Second)
		_, ok := store.Get(item.ID)
		assert.False(t, ok)
		assert.Error(t, store.Approve(item.ID))
	})
}

func TestPending(t *testing.T) {
	store, clock := newTestStore(t, time.Hour)

	first := store.Add("First", "proposal", nil)
	clock.advance(time.Minute)
	second := store.Add("Second", "chase", nil)
	clock.advance(time.Minute)
	third := store.Add("Third", "agenda", nil)

	require.NoError(t, store.Approve(second.ID))

	pending := store.Pending()
	require.Len(t, pending, 2)
	assert.Equal(t, first.ID, pending[0].ID)
	assert.Equal(t, third.ID, pending[1].ID)

	t.Run("expired items drop out", func(t *testing.T) {
		clock.advance(time.Hour)
		assert.Empty(t, store.Pending())
	})
}
