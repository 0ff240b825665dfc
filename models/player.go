package models

import (
	"time"
)

// Starting values for a freshly registered player.
const (
	StartingBalance  int64 = 1000
	StarterVehicleID       = 1
	StartingLevel          = 1
)

// Player is the durable per-player record. Rows are never deleted.
type Player struct {
	ExternalUserID string `gorm:"primaryKey;type:varchar(64)" json:"external_user_id"` // chat identity
	Username       string `gorm:"not null;default:''" json:"username"`

	Balance    int64 `json:"balance" gorm:"not null;default:1000"`
	VehicleID  int   `json:"vehicle_id" gorm:"not null;default:1"`
	Experience int64 `json:"experience" gorm:"not null;default:0"`
	Level      int   `json:"level" gorm:"not null;default:1"`

	// Race counters
	PvEWins  int64 `json:"pve_wins" gorm:"column:pve_wins;not null;default:0"`
	PvERaces int64 `json:"pve_races" gorm:"column:pve_races;not null;default:0"`
	PvPWins  int64 `json:"pvp_wins" gorm:"column:pvp_wins;not null;default:0"`
	PvPRaces int64 `json:"pvp_races" gorm:"column:pvp_races;not null;default:0"`

	Timestamps
}

// NewPlayer builds the default record for a first registration.
func NewPlayer(externalUserID, username string) *Player {
	return &Player{
		ExternalUserID: externalUserID,
		Username:       username,
		Balance:        StartingBalance,
		VehicleID:      StarterVehicleID,
		Level:          StartingLevel,
	}
}

// TotalWins counts PvE and PvP wins together.
func (p *Player) TotalWins() int64 {
	return p.PvEWins + p.PvPWins
}

// TotalRaces counts PvE and PvP races together.
func (p *Player) TotalRaces() int64 {
	return p.PvERaces + p.PvPRaces
}

// WinRate is the share of won races in percent, 0 when no race was run.
func (p *Player) WinRate() float64 {
	races := p.TotalRaces()
	if races == 0 {
		return 0
	}
	return float64(p.TotalWins()) / float64(races) * 100
}

// LeaderboardScore ranks players: PvP wins weigh double.
func (p *Player) LeaderboardScore() int64 {
	return p.PvEWins + 2*p.PvPWins
}

// Timestamps adds GORM auto-times
type Timestamps struct {
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
