// services/scheduler.go
package services

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

// StartChallengeSweeper schedules the expiry sweep: first run after delay,
// then every interval. The caller owns the returned scheduler and shuts it down.
func StartChallengeSweeper(registry *ChallengeRegistry, metrics *Metrics, interval, delay time.Duration) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	startAt := gocron.WithStartImmediately()
	if delay > 0 {
		startAt = gocron.WithStartDateTime(time.Now().Add(delay))
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			SweepChallenges(context.Background(), registry, metrics, time.Now())
		}),
		gocron.WithStartAt(startAt),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, err
	}

	sched.Start()
	log.Info().Dur("interval", interval).Dur("first_run_in", delay).Msg("⏱️ [Scheduler] challenge sweeper started")
	return sched, nil
}

// SweepChallenges runs one expiry pass.
func SweepChallenges(ctx context.Context, registry *ChallengeRegistry, metrics *Metrics, now time.Time) int {
	removed := registry.SweepExpired(now)
	if removed > 0 {
		log.Info().Int("removed", removed).Msg("🧹 [Scheduler] expired challenges swept")
		metrics.ChallengesExpired(ctx, removed)
	}
	return removed
}
