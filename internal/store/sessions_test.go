package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericogr/guessdex/internal/engine"
	"github.com/ericogr/guessdex/internal/game"
)

func newTestEngine() *engine.Session {
	return engine.NewSession([]game.Entity{{CatalogID: 1, Name: "Solo"}})
}

func TestCreateAndGet(t *testing.T) {
	s := NewSessionStore()
	ls := s.Create(newTestEngine())
	require.NotEmpty(t, ls.Token)

	got, ok := s.Get(ls.Token)
	require.True(t, ok)
	assert.Same(t, ls, got)

	_, ok = s.Get("missing-token")
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	s := NewSessionStore()
	ls := s.Create(newTestEngine())
	s.Delete(ls.Token)
	_, ok := s.Get(ls.Token)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestExpireIdle(t *testing.T) {
	s := NewSessionStore()
	current := time.Unix(1000, 0)
	s.now = func() time.Time { return current }

	stale := s.Create(newTestEngine())
	current = current.Add(20 * time.Minute)
	fresh := s.Create(newTestEngine())

	dropped := s.ExpireIdle(10 * time.Minute)
	assert.Equal(t, 1, dropped)

	_, ok := s.Get(stale.Token)
	assert.False(t, ok, "stale session should be gone")
	_, ok = s.Get(fresh.Token)
	assert.True(t, ok, "fresh session should survive")
}

func TestGetRefreshesActivity(t *testing.T) {
	s := NewSessionStore()
	current := time.Unix(1000, 0)
	s.now = func() time.Time { return current }

	ls := s.Create(newTestEngine())
	current = current.Add(9 * time.Minute)
	_, ok := s.Get(ls.Token)
	require.True(t, ok)

	// The Get above refreshed LastSeen, so another 9 minutes of idling
	// stays under a 10 minute budget.
	current = current.Add(9 * time.Minute)
	assert.Equal(t, 0, s.ExpireIdle(10*time.Minute))
	_, ok = s.Get(ls.Token)
	assert.True(t, ok)
}
