package models

import (
	"fmt"
	"strconv"
	"time"
)

type RaceKind string

const (
	RaceKindPvE RaceKind = "pve"
	RaceKindPvP RaceKind = "pvp"
)

type RaceResult string

const (
	RaceResultWin  RaceResult = "win"
	RaceResultLoss RaceResult = "loss"
	RaceResultDraw RaceResult = "draw"
)

// Power is a race power score in tenths of a point, so that ties are exact.
type Power int64

// PowerFromTenths wraps a raw tenths value.
func PowerFromTenths(tenths int64) Power {
	return Power(tenths)
}

func (p Power) Float64() float64 {
	return float64(p) / 10
}

func (p Power) String() string {
	return fmt.Sprintf("%.1f", p.Float64())
}

// MarshalJSON renders the score as a decimal number (e.g. 24.6).
func (p Power) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(p.Float64(), 'f', 1, 64)), nil
}

// Reward is the currency and experience granted for one side of a race.
type Reward struct {
	Earnings   int64 `json:"earnings"`
	Experience int64 `json:"experience"`
}

// Race records a settled race from one participant's point of view.
type Race struct {
	ID                string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Kind              RaceKind   `gorm:"type:varchar(8);index;not null" json:"kind"`
	ExternalUserID    string     `gorm:"index;not null" json:"external_user_id"`
	OpponentUserID    *string    `gorm:"index" json:"opponent_user_id,omitempty"` // nil = computer opponent
	VehicleID         int        `json:"vehicle_id"`
	OpponentVehicleID int        `json:"opponent_vehicle_id"`
	Power             Power      `json:"power"`
	OpponentPower     Power      `json:"opponent_power"`
	Result            RaceResult `gorm:"type:varchar(8);not null" json:"result"`
	Earnings          int64      `json:"earnings"`
	ExperienceGained  int64      `json:"experience_gained"`
	LeveledUp         bool       `json:"leveled_up"`
	CreatedAt         time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}
