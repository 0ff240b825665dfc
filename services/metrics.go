package services

import (
	"context"
	"fmt"

	"racing-league/models"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "racing-league/services"

// Metrics holds the engine counters. They come from the global OTel meter,
// which is a no-op until a provider is installed.
type Metrics struct {
	racesSettled      metric.Int64Counter
	challengesCreated metric.Int64Counter
	challengesTaken   metric.Int64Counter
	challengesExpired metric.Int64Counter
}

func NewMetrics() (*Metrics, error) {
	m := otel.Meter(instrumentationName)
	out := &Metrics{}

	var err error
	out.racesSettled, err = m.Int64Counter(
		"racing.races.settled",
		metric.WithDescription("Races resolved and paid out, per participant"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating races counter: %w", err)
	}

	out.challengesCreated, err = m.Int64Counter(
		"racing.challenges.created",
		metric.WithDescription("PvP challenges opened"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating challenges created counter: %w", err)
	}

	out.challengesTaken, err = m.Int64Counter(
		"racing.challenges.accepted",
		metric.WithDescription("PvP challenges accepted"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating challenges accepted counter: %w", err)
	}

	out.challengesExpired, err = m.Int64Counter(
		"racing.challenges.expired",
		metric.WithDescription("PvP challenges removed by the expiry sweep"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating challenges expired counter: %w", err)
	}

	return out, nil
}

func (m *Metrics) RaceSettled(ctx context.Context, kind models.RaceKind, result models.RaceResult) {
	if m == nil {
		return
	}
	m.racesSettled.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", string(kind)),
		attribute.String("result", string(result)),
	))
}

func (m *Metrics) ChallengeCreated(ctx context.Context) {
	if m == nil {
		return
	}
	m.challengesCreated.Add(ctx, 1)
}

func (m *Metrics) ChallengeAccepted(ctx context.Context) {
	if m == nil {
		return
	}
	m.challengesTaken.Add(ctx, 1)
}

func (m *Metrics) ChallengesExpired(ctx context.Context, n int) {
	if m == nil || n == 0 {
		return
	}
	m.challengesExpired.Add(ctx, int64(n))
}
