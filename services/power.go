package services

import (
	"math/rand/v2"

	"racing-league/models"
)

// Luck bands for the random part of a power score.
const (
	PvESpread = 10
	PvPSpread = 15
)

// Dice is the random source for races. IntN returns a value in [0, n).
// *rand.Rand satisfies it.
type Dice interface {
	IntN(n int) int
}

type globalDice struct{}

func (globalDice) IntN(n int) int { return rand.IntN(n) }

// DefaultDice draws from the goroutine-safe global generator.
var DefaultDice Dice = globalDice{}

// Roll draws an integer in [1, spread], both ends included.
func Roll(d Dice, spread int) int {
	return d.IntN(spread) + 1
}

// BasePower is the deterministic part of the score:
// speed*2 + acceleration*1.5 + handling*1.2, kept in tenths.
func BasePower(v models.Vehicle) models.Power {
	return models.PowerFromTenths(int64(v.Speed)*20 + int64(v.Acceleration)*15 + int64(v.Handling)*12)
}

// RollPower computes one side's power for a single race.
func RollPower(v models.Vehicle, spread int, d Dice) models.Power {
	return BasePower(v) + models.PowerFromTenths(int64(Roll(d, spread))*10)
}
