package services

import (
	"context"
	"errors"
	"fmt"

	"racing-league/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlayerService struct {
	DB      *gorm.DB
	Catalog *Catalog
}

func NewPlayerService(db *gorm.DB, catalog *Catalog) *PlayerService {
	return &PlayerService{DB: db, Catalog: catalog}
}

// Register creates the default record on first call and is a no-op afterwards.
func (s *PlayerService) Register(ctx context.Context, externalUserID, username string) (*models.Player, error) {
	res := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(models.NewPlayer(externalUserID, username))
	if res.Error != nil {
		log.Error().Err(res.Error).Str("user_id", externalUserID).Msg("[Player] register failed")
		return nil, fmt.Errorf("register player %s: %w", externalUserID, res.Error)
	}
	if res.RowsAffected > 0 {
		log.Info().Str("user_id", externalUserID).Str("username", username).Msg("🏁 [Player] registered")
	}
	return s.Get(ctx, externalUserID)
}

// Get returns the player record or ErrNotRegistered.
func (s *PlayerService) Get(ctx context.Context, externalUserID string) (*models.Player, error) {
	var p models.Player
	err := s.DB.WithContext(ctx).Where("external_user_id = ?", externalUserID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotRegistered
	}
	if err != nil {
		return nil, fmt.Errorf("load player %s: %w", externalUserID, err)
	}
	return &p, nil
}

// AdjustBalance adds delta (possibly negative) to the balance in one statement.
func (s *PlayerService) AdjustBalance(ctx context.Context, externalUserID string, delta int64) error {
	res := s.DB.WithContext(ctx).
		Model(&models.Player{}).
		Where("external_user_id = ?", externalUserID).
		Update("balance", gorm.Expr("balance + ?", delta))
	if res.Error != nil {
		return fmt.Errorf("adjust balance for %s: %w", externalUserID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotRegistered
	}
	return nil
}

// PurchaseVehicle debits the price and switches the owned vehicle, only when
// the balance covers it. Buying the vehicle already owned succeeds without a debit.
func (s *PlayerService) PurchaseVehicle(ctx context.Context, externalUserID string, vehicleID int) (*models.Player, error) {
	vehicle, err := s.Catalog.Lookup(vehicleID)
	if err != nil {
		return nil, err
	}

	var updated models.Player
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Player{}).
			Where("external_user_id = ? AND vehicle_id <> ? AND balance >= ?", externalUserID, vehicle.ID, vehicle.Price).
			Updates(map[string]any{
				"balance":    gorm.Expr("balance - ?", vehicle.Price),
				"vehicle_id": vehicle.ID,
			})
		if res.Error != nil {
			return res.Error
		}

		if err := tx.Where("external_user_id = ?", externalUserID).First(&updated).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotRegistered
			}
			return err
		}
		if res.RowsAffected == 0 && updated.VehicleID != vehicle.ID {
			return ErrInsufficientFunds
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotRegistered) || errors.Is(err, ErrInsufficientFunds) {
			return nil, err
		}
		log.Error().Err(err).Str("user_id", externalUserID).Int("vehicle_id", vehicleID).Msg("[Garage] purchase failed")
		return nil, fmt.Errorf("purchase vehicle %d for %s: %w", vehicleID, externalUserID, err)
	}

	log.Info().Str("user_id", externalUserID).Str("vehicle", vehicle.Name).Int64("balance", updated.Balance).Msg("🛒 [Garage] vehicle purchased")
	return &updated, nil
}

// ApplyRaceResult settles one participant's side of a race: adds earnings and
// experience, bumps the PvE or PvP counters, and recomputes the level, all in
// one transaction on the player's row. It reports whether the level went up.
func (s *PlayerService) ApplyRaceResult(ctx context.Context, externalUserID string, earnings, expGain int64, isWin, isPvP bool) (bool, error) {
	leveledUp := false
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Where("external_user_id = ?", externalUserID)
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var p models.Player
		if err := q.First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotRegistered
			}
			return err
		}

		p.Balance += earnings
		p.Experience += expGain
		if isPvP {
			p.PvPRaces++
			if isWin {
				p.PvPWins++
			}
		} else {
			p.PvERaces++
			if isWin {
				p.PvEWins++
			}
		}
		if LeveledUp(p.Level, p.Experience) {
			p.Level = LevelForExperience(p.Experience)
			leveledUp = true
		}

		return tx.Model(&models.Player{}).
			Where("external_user_id = ?", externalUserID).
			Updates(map[string]any{
				"balance":    p.Balance,
				"experience": p.Experience,
				"level":      p.Level,
				"pve_wins":   p.PvEWins,
				"pve_races":  p.PvERaces,
				"pvp_wins":   p.PvPWins,
				"pvp_races":  p.PvPRaces,
			}).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotRegistered) {
			return false, err
		}
		log.Error().Err(err).Str("user_id", externalUserID).Msg("[Race] failed to apply race result")
		return false, fmt.Errorf("apply race result for %s: %w", externalUserID, err)
	}
	return leveledUp, nil
}

// Leaderboard returns the top players by PvE wins + 2×PvP wins, ties broken by level.
func (s *PlayerService) Leaderboard(ctx context.Context, limit int) ([]models.Player, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}
	var players []models.Player
	err := s.DB.WithContext(ctx).
		Order("(pve_wins + pvp_wins * 2) DESC").
		Order("level DESC").
		Order("external_user_id ASC").
		Limit(limit).
		Find(&players).Error
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	return players, nil
}

// Count returns the number of registered players.
func (s *PlayerService) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.DB.WithContext(ctx).Model(&models.Player{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
