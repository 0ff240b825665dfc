package workers

import (
	"context"
	"fmt"
	"time"

	"racing-league/services"

	"github.com/rs/zerolog/log"
)

// DefaultLeaderboardKey is the object key the snapshot is written to.
const DefaultLeaderboardKey = "leaderboard/latest.json"

// SnapshotStore persists a JSON document and returns where it can be fetched.
type SnapshotStore interface {
	PutJSON(ctx context.Context, key string, v any) (string, error)
}

// LeaderboardSnapshot is the published document.
type LeaderboardSnapshot struct {
	GeneratedAt time.Time                   `json:"generated_at"`
	Entries     []services.LeaderboardEntry `json:"entries"`
}

// LeaderboardPublisher pushes the current standings to object storage.
type LeaderboardPublisher struct {
	Players *services.PlayerService
	Store   SnapshotStore
	Size    int
	Key     string
}

func NewLeaderboardPublisher(players *services.PlayerService, store SnapshotStore, size int) *LeaderboardPublisher {
	return &LeaderboardPublisher{
		Players: players,
		Store:   store,
		Size:    size,
		Key:     DefaultLeaderboardKey,
	}
}

// PublishOnce builds and uploads one snapshot.
func (p *LeaderboardPublisher) PublishOnce(ctx context.Context) (string, error) {
	entries, err := p.Players.LeaderboardEntries(ctx, p.Size)
	if err != nil {
		return "", err
	}
	url, err := p.Store.PutJSON(ctx, p.Key, LeaderboardSnapshot{
		GeneratedAt: time.Now().UTC(),
		Entries:     entries,
	})
	if err != nil {
		return "", fmt.Errorf("publish leaderboard: %w", err)
	}
	return url, nil
}

// PollLeaderboard publishes a snapshot every interval until ctx is done.
// Failures are logged and retried on the next tick.
func PollLeaderboard(ctx context.Context, publisher *LeaderboardPublisher, interval time.Duration) {
	log.Info().Dur("interval", interval).Msg("Starting leaderboard publisher...")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Leaderboard publisher stopped.")
			return
		case <-ticker.C:
			url, err := publisher.PublishOnce(ctx)
			if err != nil {
				log.Error().Err(err).Msg("❌ Error publishing leaderboard")
				continue
			}
			log.Debug().Str("url", url).Msg("✅ Leaderboard snapshot published")
		}
	}
}
