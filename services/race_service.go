package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"racing-league/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RaceService resolves PvE races and PvP challenges and settles their rewards.
type RaceService struct {
	Players    *PlayerService
	Catalog    *Catalog
	Challenges *ChallengeRegistry
	Metrics    *Metrics
	Dice       Dice
}

func NewRaceService(players *PlayerService, challenges *ChallengeRegistry, metrics *Metrics) *RaceService {
	return &RaceService{
		Players:    players,
		Catalog:    players.Catalog,
		Challenges: challenges,
		Metrics:    metrics,
		Dice:       DefaultDice,
	}
}

// PvEOutcome is everything the chat layer shows after a race against the computer.
type PvEOutcome struct {
	Vehicle         models.Vehicle    `json:"vehicle"`
	OpponentVehicle models.Vehicle    `json:"opponent_vehicle"`
	Power           models.Power      `json:"power"`
	OpponentPower   models.Power      `json:"opponent_power"`
	Result          models.RaceResult `json:"result"`
	Reward          models.Reward     `json:"reward"`
	LeveledUp       bool              `json:"leveled_up"`
	Player          *models.Player    `json:"player,omitempty"`
}

// PvPSide is one participant's view of a PvP race.
type PvPSide struct {
	UserID    string            `json:"user_id"`
	Name      string            `json:"name"`
	Vehicle   models.Vehicle    `json:"vehicle"`
	Power     models.Power      `json:"power"`
	Result    models.RaceResult `json:"result"`
	Reward    models.Reward     `json:"reward"`
	LeveledUp bool              `json:"leveled_up"`
}

// PvPOutcome is the resolved result of an accepted challenge.
type PvPOutcome struct {
	ChallengeID string          `json:"challenge_id"`
	Location    models.Location `json:"location"`
	Challenger  PvPSide         `json:"challenger"`
	Accepter    PvPSide         `json:"accepter"`
	WinnerID    string          `json:"winner_id,omitempty"` // empty on a draw
}

// ChallengeTicket is what a challenger gets back for display.
type ChallengeTicket struct {
	Challenge models.Challenge `json:"challenge"`
	Vehicle   models.Vehicle   `json:"vehicle"`
	Level     int              `json:"level"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// RacePvE races the player against a computer opponent whose vehicle is drawn
// uniformly from the whole catalog.
func (s *RaceService) RacePvE(ctx context.Context, userID string) (*PvEOutcome, error) {
	player, err := s.Players.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	vehicle := s.Catalog.LookupOrDefault(player.VehicleID)
	opponent := s.Catalog.Random(s.Dice)
	power := RollPower(vehicle, PvESpread, s.Dice)
	opponentPower := RollPower(opponent, PvESpread, s.Dice)

	result := Compare(power, opponentPower)
	reward := RewardFor(models.RaceKindPvE, result)

	leveledUp, err := s.Players.ApplyRaceResult(ctx, userID, reward.Earnings, reward.Experience, result == models.RaceResultWin, false)
	if err != nil {
		return nil, err
	}
	s.Metrics.RaceSettled(ctx, models.RaceKindPvE, result)

	s.recordRaces(ctx, models.Race{
		Kind:              models.RaceKindPvE,
		ExternalUserID:    userID,
		VehicleID:         vehicle.ID,
		OpponentVehicleID: opponent.ID,
		Power:             power,
		OpponentPower:     opponentPower,
		Result:            result,
		Earnings:          reward.Earnings,
		ExperienceGained:  reward.Experience,
		LeveledUp:         leveledUp,
	})

	log.Info().
		Str("user_id", userID).
		Str("vehicle", vehicle.Name).
		Str("opponent", opponent.Name).
		Stringer("power", power).
		Stringer("opponent_power", opponentPower).
		Str("result", string(result)).
		Bool("level_up", leveledUp).
		Msg("🏎️ [Race] PvE race settled")

	out := &PvEOutcome{
		Vehicle:         vehicle,
		OpponentVehicle: opponent,
		Power:           power,
		OpponentPower:   opponentPower,
		Result:          result,
		Reward:          reward,
		LeveledUp:       leveledUp,
	}
	if updated, err := s.Players.Get(ctx, userID); err == nil {
		out.Player = updated
	} else {
		log.Warn().Err(err).Str("user_id", userID).Msg("[Race] could not reload player after settlement")
	}
	return out, nil
}

// CreateChallenge opens a PvP challenge for a registered player, snapshotting
// their current vehicle. name overrides the stored username when set.
func (s *RaceService) CreateChallenge(ctx context.Context, userID, name string, loc models.Location) (*ChallengeTicket, error) {
	player, err := s.Players.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = player.Username
	}

	vehicle := s.Catalog.LookupOrDefault(player.VehicleID)
	ch := s.Challenges.Create(player.ExternalUserID, name, vehicle.ID, loc)
	s.Metrics.ChallengeCreated(ctx)

	log.Info().Str("challenge_id", ch.ID).Str("challenger", userID).Int64("chat_id", loc.ChatID).Msg("⚔️ [Challenge] created")
	return &ChallengeTicket{
		Challenge: ch,
		Vehicle:   vehicle,
		Level:     player.Level,
		ExpiresAt: ch.ExpiresAt(s.Challenges.TTL()),
	}, nil
}

// AcceptChallenge consumes the challenge for the accepter, races both
// vehicles with the PvP luck band, and pays out both sides. The accepter must
// be registered before the challenge is consumed.
func (s *RaceService) AcceptChallenge(ctx context.Context, challengeID, accepterID, accepterName string) (*PvPOutcome, error) {
	accepter, err := s.Players.Get(ctx, accepterID)
	if err != nil {
		return nil, err
	}
	if accepterName == "" {
		accepterName = accepter.Username
	}

	ch, err := s.Challenges.Accept(challengeID, accepterID)
	if err != nil {
		return nil, err
	}
	s.Metrics.ChallengeAccepted(ctx)

	challenger := PvPSide{
		UserID:  ch.ChallengerID,
		Name:    ch.ChallengerName,
		Vehicle: s.Catalog.LookupOrDefault(ch.ChallengerVehicleID),
	}
	acc := PvPSide{
		UserID:  accepter.ExternalUserID,
		Name:    accepterName,
		Vehicle: s.Catalog.LookupOrDefault(accepter.VehicleID),
	}
	challenger.Power = RollPower(challenger.Vehicle, PvPSpread, s.Dice)
	acc.Power = RollPower(acc.Vehicle, PvPSpread, s.Dice)

	challenger.Result = Compare(challenger.Power, acc.Power)
	acc.Result = Opposite(challenger.Result)
	challenger.Reward = RewardFor(models.RaceKindPvP, challenger.Result)
	acc.Reward = RewardFor(models.RaceKindPvP, acc.Result)

	var errs []error
	for _, side := range []*PvPSide{&challenger, &acc} {
		up, err := s.Players.ApplyRaceResult(ctx, side.UserID, side.Reward.Earnings, side.Reward.Experience, side.Result == models.RaceResultWin, true)
		if err != nil {
			errs = append(errs, fmt.Errorf("settle %s: %w", side.UserID, err))
			continue
		}
		side.LeveledUp = up
		s.Metrics.RaceSettled(ctx, models.RaceKindPvP, side.Result)
	}
	if len(errs) > 0 {
		log.Error().Err(errors.Join(errs...)).Str("challenge_id", ch.ID).Msg("[Challenge] PvP settlement incomplete")
		return nil, errors.Join(errs...)
	}

	s.recordRaces(ctx, pvpRecord(challenger, acc), pvpRecord(acc, challenger))

	out := &PvPOutcome{
		ChallengeID: ch.ID,
		Location:    ch.Location,
		Challenger:  challenger,
		Accepter:    acc,
	}
	switch challenger.Result {
	case models.RaceResultWin:
		out.WinnerID = challenger.UserID
	case models.RaceResultLoss:
		out.WinnerID = acc.UserID
	}

	log.Info().
		Str("challenge_id", ch.ID).
		Str("challenger", challenger.UserID).
		Str("accepter", acc.UserID).
		Stringer("challenger_power", challenger.Power).
		Stringer("accepter_power", acc.Power).
		Str("winner", out.WinnerID).
		Msg("🏆 [Challenge] PvP race settled")
	return out, nil
}

// RecentRaces returns a player's race history for the last N days, newest first.
func (s *RaceService) RecentRaces(ctx context.Context, userID string, days int) ([]models.Race, error) {
	if days < 1 {
		days = 7
	}
	var races []models.Race
	since := time.Now().AddDate(0, 0, -days)
	err := s.Players.DB.WithContext(ctx).
		Where("external_user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").
		Find(&races).Error
	if err != nil {
		return nil, fmt.Errorf("load races for %s: %w", userID, err)
	}
	return races, nil
}

func pvpRecord(own, other PvPSide) models.Race {
	opponentID := other.UserID
	return models.Race{
		Kind:              models.RaceKindPvP,
		ExternalUserID:    own.UserID,
		OpponentUserID:    &opponentID,
		VehicleID:         own.Vehicle.ID,
		OpponentVehicleID: other.Vehicle.ID,
		Power:             own.Power,
		OpponentPower:     other.Power,
		Result:            own.Result,
		Earnings:          own.Reward.Earnings,
		ExperienceGained:  own.Reward.Experience,
		LeveledUp:         own.LeveledUp,
	}
}

// recordRaces appends history rows. Settlement already happened, so a failure
// here is only logged.
func (s *RaceService) recordRaces(ctx context.Context, races ...models.Race) {
	for i := range races {
		races[i].ID = uuid.NewString()
	}
	if err := s.Players.DB.WithContext(ctx).Create(&races).Error; err != nil {
		log.Error().Err(err).Int("rows", len(races)).Msg("[Race] failed to record race history")
	}
}
