package services

import (
	"encoding/json"
	"testing"

	"racing-league/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasePower(t *testing.T) {
	c := MustDefaultCatalog()

	tests := []struct {
		id   int
		want float64
	}{
		{1, 12.6}, // 3*2 + 2*1.5 + 3*1.2
		{2, 25.0}, // 5*2 + 6*1.5 + 5*1.2
		{5, 45.8}, // 10*2 + 10*1.5 + 9*1.2
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, BasePower(c.LookupOrDefault(tt.id)).Float64(), 1e-9, "vehicle %d", tt.id)
	}
}

func TestRollPower_AddsInclusiveRoll(t *testing.T) {
	starter := MustDefaultCatalog().LookupOrDefault(1)

	low := RollPower(starter, PvESpread, newSeqDice(t, 0))
	high := RollPower(starter, PvESpread, newSeqDice(t, 9))
	assert.Equal(t, "13.6", low.String())
	assert.Equal(t, "22.6", high.String())

	pvpHigh := RollPower(starter, PvPSpread, newSeqDice(t, 14))
	assert.Equal(t, "27.6", pvpHigh.String())
}

func TestRoll_StaysWithinBand(t *testing.T) {
	for _, spread := range []int{PvESpread, PvPSpread} {
		seen := map[int]bool{}
		for i := 0; i < 5000; i++ {
			r := Roll(DefaultDice, spread)
			require.GreaterOrEqual(t, r, 1)
			require.LessOrEqual(t, r, spread)
			seen[r] = true
		}
		assert.Len(t, seen, spread, "every value in [1,%d] should come up", spread)
	}
}

func TestPower_JSON(t *testing.T) {
	b, err := json.Marshal(struct {
		P models.Power `json:"p"`
	}{models.PowerFromTenths(246)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"p": 24.6}`, string(b))
}
