package services

import (
	"testing"

	"racing-league/models"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	assert.Equal(t, models.RaceResultWin, Compare(200, 199))
	assert.Equal(t, models.RaceResultLoss, Compare(199, 200))
	assert.Equal(t, models.RaceResultDraw, Compare(200, 200))
}

func TestOpposite(t *testing.T) {
	assert.Equal(t, models.RaceResultLoss, Opposite(models.RaceResultWin))
	assert.Equal(t, models.RaceResultWin, Opposite(models.RaceResultLoss))
	assert.Equal(t, models.RaceResultDraw, Opposite(models.RaceResultDraw))
}

func TestRewardFor(t *testing.T) {
	tests := []struct {
		kind   models.RaceKind
		result models.RaceResult
		want   models.Reward
	}{
		{models.RaceKindPvE, models.RaceResultWin, models.Reward{Earnings: 500, Experience: 25}},
		{models.RaceKindPvE, models.RaceResultLoss, models.Reward{Earnings: 100, Experience: 10}},
		{models.RaceKindPvE, models.RaceResultDraw, models.Reward{Earnings: 250, Experience: 15}},
		{models.RaceKindPvP, models.RaceResultWin, models.Reward{Earnings: 1000, Experience: 50}},
		{models.RaceKindPvP, models.RaceResultLoss, models.Reward{Earnings: 200, Experience: 20}},
		{models.RaceKindPvP, models.RaceResultDraw, models.Reward{Earnings: 500, Experience: 30}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RewardFor(tt.kind, tt.result), "%s/%s", tt.kind, tt.result)
	}
}
