package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"racing-league/database"
	"racing-league/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu   sync.Mutex
	puts map[string]any
	n    int
	err  error
}

func (s *fakeStore) PutJSON(_ context.Context, key string, v any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	if s.puts == nil {
		s.puts = map[string]any{}
	}
	s.puts[key] = v
	s.n++
	return "https://cdn.example/" + key, nil
}

func (s *fakeStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.n
}

func newTestPlayers(t *testing.T) *services.PlayerService {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return services.NewPlayerService(db, services.MustDefaultCatalog())
}

func TestPublishOnce(t *testing.T) {
	players := newTestPlayers(t)
	for _, id := range []string{"a", "b", "c"} {
		_, err := players.Register(context.Background(), id, id)
		require.NoError(t, err)
	}
	store := &fakeStore{}
	publisher := NewLeaderboardPublisher(players, store, 2)

	url, err := publisher.PublishOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/"+DefaultLeaderboardKey, url)

	snapshot, ok := store.puts[DefaultLeaderboardKey].(LeaderboardSnapshot)
	require.True(t, ok)
	assert.Len(t, snapshot.Entries, 2)
	assert.Equal(t, 1, snapshot.Entries[0].Position)
	assert.False(t, snapshot.GeneratedAt.IsZero())
}

func TestPublishOnceStoreError(t *testing.T) {
	publisher := NewLeaderboardPublisher(newTestPlayers(t), &fakeStore{err: errors.New("bucket gone")}, 10)

	_, err := publisher.PublishOnce(context.Background())
	assert.ErrorContains(t, err, "bucket gone")
}

func TestPollLeaderboard(t *testing.T) {
	store := &fakeStore{}
	publisher := NewLeaderboardPublisher(newTestPlayers(t), store, 10)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		PollLeaderboard(ctx, publisher, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return store.count() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher did not stop after cancel")
	}
}
