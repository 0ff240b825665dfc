package services

import "racing-league/models"

// Reward tables per race kind and result.
var (
	PvERewards = map[models.RaceResult]models.Reward{
		models.RaceResultWin:  {Earnings: 500, Experience: 25},
		models.RaceResultLoss: {Earnings: 100, Experience: 10},
		models.RaceResultDraw: {Earnings: 250, Experience: 15},
	}
	PvPRewards = map[models.RaceResult]models.Reward{
		models.RaceResultWin:  {Earnings: 1000, Experience: 50},
		models.RaceResultLoss: {Earnings: 200, Experience: 20},
		models.RaceResultDraw: {Earnings: 500, Experience: 30},
	}
)

// Compare decides a result from the first side's perspective.
func Compare(own, other models.Power) models.RaceResult {
	switch {
	case own > other:
		return models.RaceResultWin
	case own < other:
		return models.RaceResultLoss
	default:
		return models.RaceResultDraw
	}
}

// Opposite flips a result to the other side's perspective.
func Opposite(r models.RaceResult) models.RaceResult {
	switch r {
	case models.RaceResultWin:
		return models.RaceResultLoss
	case models.RaceResultLoss:
		return models.RaceResultWin
	default:
		return models.RaceResultDraw
	}
}

// RewardFor looks up the reward for a result in the table of the given race kind.
func RewardFor(kind models.RaceKind, r models.RaceResult) models.Reward {
	if kind == models.RaceKindPvP {
		return PvPRewards[r]
	}
	return PvERewards[r]
}
